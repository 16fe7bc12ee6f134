/*
Package ports defines the driven ports (interfaces) for the winnow engine.

These interfaces decouple the core logic from external implementations, so a
script can come from a file, memory or a shared Redis instance.

# Key Interfaces

  - ScriptLoader: Responsible for fetching the raw text of a script.
  - Engine: The stateless Render / Navigate surface driven by the runner.
*/
package ports
