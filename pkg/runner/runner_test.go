package runner_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/winnow/internal/runtime"
	"github.com/aretw0/winnow/internal/testutils"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nameScript = `1
1
3
NAME
What is your name?
Please tell me your name
You better tell me your name
3
Goodbye $NAME
3
unused
3
No name given
`

const colorScript = `2
COLOR
Pick a color
Red:4
Blue:5
3
a
3
b
3
c
3
You picked $COLOR
3
You picked $COLOR too
`

func newTextRunner(t *testing.T, input string) (*runner.Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	handler := runner.NewTextHandler(strings.NewReader(input), out, runner.WithTextHandlerErrWriter(errOut))
	return runner.NewRunner(runner.WithInputHandler(handler)), out, errOut
}

func TestRunner_Run_Answered(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustParse(t, nameScript))
	r, out, _ := newTextRunner(t, "Alice\nok\n")

	final, err := r.Run(context.Background(), engine, nil)
	require.NoError(t, err)

	assert.True(t, final.Terminated())
	assert.Equal(t, "Alice", final.Env.Get("NAME"))
	assert.Equal(t,
		"What is your name?\nEnter string> \n"+
			"Goodbye Alice\nGoodbye (enter anything to exit)> \n",
		out.String())
}

func TestRunner_Run_PromptsExhausted(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustParse(t, nameScript))
	r, out, _ := newTextRunner(t, "\n\n\n")

	final, err := r.Run(context.Background(), engine, nil)
	require.NoError(t, err)

	assert.True(t, final.Terminated(), "EOF at the farewell acknowledges it")
	assert.Equal(t, []domain.NodeID{0, 3, domain.TerminalNodeID}, final.History)
	assert.False(t, final.Env.Has("NAME"))

	text := out.String()
	assert.Contains(t, text, "Please tell me your name\nEnter string> ")
	assert.Contains(t, text, "You better tell me your name\nEnter string> ")
	assert.Contains(t, text, "No name given\n")
}

func TestRunner_Run_ControlLineIsNotABlankAttempt(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustParse(t, nameScript))
	r, _, errOut := newTextRunner(t, "\x1b\n\n\nAlice\nok\n")

	final, err := r.Run(context.Background(), engine, nil)
	require.NoError(t, err)

	assert.Equal(t, []domain.NodeID{0, 1, domain.TerminalNodeID}, final.History,
		"only the two blank lines count as attempts")
	assert.Equal(t, "Alice", final.Env.Get("NAME"))
	assert.Contains(t, errOut.String(), "input contains control characters")
}

func TestRunner_Run_EOFMidDialog(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustParse(t, nameScript))
	r, _, _ := newTextRunner(t, "")

	final, err := r.Run(context.Background(), engine, nil)
	require.NoError(t, err)
	assert.False(t, final.Terminated())
	assert.Equal(t, domain.NodeID(0), final.CurrentNodeID)
}

func TestRunner_Run_InvalidChoices(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustParse(t, colorScript))
	r, out, errOut := newTextRunner(t, "9\nblue\n\n1\n\n")

	final, err := r.Run(context.Background(), engine, nil)
	require.NoError(t, err)

	assert.True(t, final.Terminated())
	assert.Equal(t, "Red", final.Env.Get("COLOR"))
	assert.Equal(t, []domain.NodeID{0, 4, domain.TerminalNodeID}, final.History)
	assert.Equal(t,
		runner.MsgInvalidOption+"\n"+
			"Unrecognized input: blue\n"+
			runner.MsgEmptyChoice+"\n",
		errOut.String())

	menu := "Pick a color\n1. Red\n2. Blue\n\nEnter choice> "
	assert.Equal(t, 4, strings.Count(out.String(), menu), "the menu is shown again after every rejection")
	assert.Contains(t, out.String(), "You picked Red\n")
}

func TestRunner_Run_HolyGrail(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustParse(t, testutils.HolyGrail))
	r, out, _ := newTextRunner(t, "Arthur\r\n1\r\n1\r\n\r\n")

	final, err := r.Run(context.Background(), engine, nil)
	require.NoError(t, err)

	assert.True(t, final.Terminated())
	assert.Equal(t, "Arthur", final.Env.Get("NAME"), "CRLF is stripped")
	assert.Contains(t, out.String(),
		"You may pass, Arthur who loves Red, on your noble quest for the The Holy Grail.")
}

func TestRunner_Run_ContextCancelled(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustParse(t, nameScript))

	pr, pw := io.Pipe()
	defer pw.Close()
	handler := runner.NewTextHandler(pr, io.Discard)
	r := runner.NewRunner(runner.WithInputHandler(handler))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	final, err := r.Run(ctx, engine, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, final)
	assert.Equal(t, domain.NodeID(0), final.CurrentNodeID)
}

func TestRunner_Run_InitialState(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustParse(t, nameScript))
	r, out, _ := newTextRunner(t, "bye\n")

	state := engine.Start(context.Background(), "resume")
	state.TransitionTo(3)

	final, err := r.Run(context.Background(), engine, state)
	require.NoError(t, err)
	assert.True(t, final.Terminated())
	assert.Equal(t, "resume", final.SessionID)
	assert.True(t, strings.HasPrefix(out.String(), "No name given\n"))
}

func TestRunner_Run_JSON(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustParse(t, colorScript))
	out := &bytes.Buffer{}
	handler := runner.NewJSONHandler(strings.NewReader("\"7\"\n2\n\"\"\n"), out)
	r := runner.NewRunner(runner.WithInputHandler(handler), runner.WithSessionID("json"))

	final, err := r.Run(context.Background(), engine, nil)
	require.NoError(t, err)
	assert.True(t, final.Terminated())
	assert.Equal(t, "json", final.SessionID)
	assert.Equal(t, "Blue", final.Env.Get("COLOR"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], domain.ActionSystemMessage)
	assert.Contains(t, lines[3], "You picked Blue too")
}
