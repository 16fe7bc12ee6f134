/*
Package winnow is an interpreter for line-oriented dialog scripts.

A script is a flat text file describing numbered nodes: questions that bind a
typed answer to a variable, menus that bind the chosen option, and farewells
that end the session. Prompts may reference captured answers as $NAME.

# Script Format

Each record starts with a tag line: 1 for a question, 2 for a menu, 3 for a
farewell. Nodes are numbered by their position, starting at 0.

	1
	1
	2
	NAME
	What is your name?
	Please tell me your name

	3
	Goodbye $NAME
	3
	No name given

A question lists the node reached when answered, the node reached when every
prompt got a blank line, the variable and its prompts. A menu lists its
variable, the question and "text:destination" options. A farewell holds a
single message. Prompt and option lists end at a blank line, at the next tag
line or at the end of the text.

# Usage

The engine keeps no session state. The host renders the current state, reads a
line when asked and navigates; runner.Runner implements that loop.

	eng, err := winnow.New(ctx, "input.txt")
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)))
	if _, err := r.Run(ctx, eng, nil); err != nil {
		log.Fatal(err)
	}
*/
package winnow
