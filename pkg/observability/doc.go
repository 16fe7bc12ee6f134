/*
Package observability provides tools for monitoring the winnow engine.

It turns the engine's lifecycle hooks into Prometheus metrics and structured
audit logs. Both are plain domain.LifecycleHooks values and can be combined
with LifecycleHooks.Merge.
*/
package observability
