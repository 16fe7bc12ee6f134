/*
Package env implements the variable store used by a dialog session.

Answers captured by the engine are bound to upper-case variable names and
substituted into later prompts with a simple `$NAME` template syntax:

	e := env.New()
	e.Set("NAME", "Arthur")
	e.Resolve("$NAME, what is your quest?") // "Arthur, what is your quest?"
	e.Resolve("Seen $COLOR?")               // "Seen COLOR?" (unbound names resolve to themselves)
*/
package env
