/*
Package runner implements the execution loop and I/O orchestration for the winnow engine.

It acts as the bridge between the core state machine (Engine) and the outside world.
The runner renders the current node, reads one line when the node asks for it and
navigates, until the session reaches the terminal sentinel.

# Key Components

  - Runner: The loop driving any ports.Engine.
  - IOHandler: Decouples how content is shown and lines are read (text, JSON).
  - TextHandler: The interactive implementation, with cancellable reads.
  - JSONHandler: A JSON-Lines implementation for programmatic hosts.

# Usage

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	final, err := r.Run(ctx, engine, nil)
*/
package runner
