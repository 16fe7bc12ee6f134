package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/winnow/internal/runtime"
	"github.com/aretw0/winnow/internal/testutils"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentOf(t *testing.T, actions []domain.ActionRequest) string {
	t.Helper()
	for _, act := range actions {
		if act.Type == domain.ActionRenderContent {
			msg, ok := act.Payload.(string)
			require.True(t, ok, "render payload should be a string")
			return msg
		}
	}
	t.Fatalf("no %s action in %v", domain.ActionRenderContent, actions)
	return ""
}

func inputOf(t *testing.T, actions []domain.ActionRequest) domain.InputRequest {
	t.Helper()
	for _, act := range actions {
		if act.Type == domain.ActionRequestInput {
			req, ok := act.Payload.(domain.InputRequest)
			require.True(t, ok, "input payload should be an InputRequest")
			return req
		}
	}
	t.Fatalf("no %s action in %v", domain.ActionRequestInput, actions)
	return domain.InputRequest{}
}

// scenarioA: Question (success=1, fail=3), Terminating "Goodbye $NAME" at 1,
// filler at 2, Terminating "No name given" at 3.
func scenarioA(t *testing.T) *runtime.Engine {
	return runtime.NewEngine(testutils.MustNodeList(t,
		&domain.Question{
			Success:  1,
			Fail:     3,
			Variable: "NAME",
			Prompts:  []string{"What is your name?", "Please tell me your name", "You better tell me your name"},
		},
		&domain.Terminating{Message: "Goodbye $NAME"},
		&domain.Terminating{Message: "unused"},
		&domain.Terminating{Message: "No name given"},
	))
}

func TestEngine_Start(t *testing.T) {
	engine := scenarioA(t)
	state := engine.Start(context.Background(), "s1")

	assert.Equal(t, "s1", state.SessionID)
	assert.Equal(t, domain.NodeID(0), state.CurrentNodeID)
	assert.Equal(t, 0, state.Attempt)
	assert.Equal(t, domain.StatusActive, state.Status)
	assert.Equal(t, 0, state.Env.Len())
}

func TestEngine_Start_EmptyScript(t *testing.T) {
	engine := runtime.NewEngine(testutils.MustNodeList(t))
	state := engine.Start(context.Background(), "empty")

	assert.True(t, state.Terminated())
	_, _, err := engine.Render(context.Background(), state)
	assert.ErrorIs(t, err, domain.ErrSessionTerminated)
}

func TestEngine_ScenarioA_Answered(t *testing.T) {
	ctx := context.Background()
	engine := scenarioA(t)
	state := engine.Start(ctx, "a")

	actions, needsInput, err := engine.Render(ctx, state)
	require.NoError(t, err)
	assert.True(t, needsInput)
	assert.Equal(t, "What is your name?", contentOf(t, actions))
	assert.Equal(t, domain.CueText, inputOf(t, actions).Cue)

	state, err = engine.Navigate(ctx, state, "Alice\n")
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(1), state.CurrentNodeID)
	assert.Equal(t, "Alice", state.Env.Get("NAME"), "line ending is stripped before binding")

	actions, needsInput, err = engine.Render(ctx, state)
	require.NoError(t, err)
	assert.True(t, needsInput)
	assert.Contains(t, contentOf(t, actions), "Goodbye Alice")
	assert.Equal(t, domain.InputAcknowledge, inputOf(t, actions).Type)

	state, err = engine.Navigate(ctx, state, "whatever")
	require.NoError(t, err)
	assert.True(t, state.Terminated())
	assert.Equal(t, domain.TerminalNodeID, state.CurrentNodeID)
	assert.Equal(t, []domain.NodeID{0, 1, domain.TerminalNodeID}, state.History)
}

func TestEngine_ScenarioA_Exhausted(t *testing.T) {
	ctx := context.Background()
	engine := scenarioA(t)
	state := engine.Start(ctx, "a")

	prompts := []string{"What is your name?", "Please tell me your name", "You better tell me your name"}
	for i, prompt := range prompts {
		actions, needsInput, err := engine.Render(ctx, state)
		require.NoError(t, err)
		require.True(t, needsInput)
		assert.Equal(t, prompt, contentOf(t, actions))

		state, err = engine.Navigate(ctx, state, "")
		require.NoError(t, err)

		if i < len(prompts)-1 {
			assert.Equal(t, domain.NodeID(0), state.CurrentNodeID, "still on the question after %d blanks", i+1)
			assert.Equal(t, i+1, state.Attempt)
		}
	}

	assert.Equal(t, domain.NodeID(3), state.CurrentNodeID, "exactly k blanks reach the fail node")
	assert.Equal(t, 0, state.Attempt, "attempt counter resets on transition")
	assert.False(t, state.Env.Has("NAME"))

	actions, _, err := engine.Render(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "No name given", contentOf(t, actions))
}

func TestEngine_QuestionAnsweredAfterBlank(t *testing.T) {
	ctx := context.Background()
	engine := scenarioA(t)
	state := engine.Start(ctx, "a")

	state, err := engine.Navigate(ctx, state, "")
	require.NoError(t, err)
	actions, _, err := engine.Render(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "Please tell me your name", contentOf(t, actions))

	state, err = engine.Navigate(ctx, state, "Bob")
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(1), state.CurrentNodeID)
	assert.Equal(t, 0, state.Attempt)
}

func TestEngine_StoresRawInput(t *testing.T) {
	ctx := context.Background()
	engine := scenarioA(t)
	state := engine.Start(ctx, "a")

	state, err := engine.Navigate(ctx, state, "  $COLOR friend ")
	require.NoError(t, err)
	assert.Equal(t, "  $COLOR friend ", state.Env.Get("NAME"), "no substitution or trimming on stored input")
}

func TestEngine_QuestionWithoutPrompts(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(testutils.MustNodeList(t,
		&domain.Question{Success: 1, Fail: 2, Variable: "X"},
		&domain.Terminating{Message: "success"},
		&domain.Terminating{Message: "fail"},
	))
	state := engine.Start(ctx, "p")

	actions, needsInput, err := engine.Render(ctx, state)
	require.NoError(t, err)
	assert.False(t, needsInput, "no line is read for an exhausted question")
	assert.Empty(t, actions)

	state, err = engine.Navigate(ctx, state, "ignored")
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(2), state.CurrentNodeID)
	assert.False(t, state.Env.Has("X"))
}

func scenarioB(t *testing.T) *runtime.Engine {
	nodes := []domain.Node{
		&domain.Branching{
			Variable: "COLOR",
			Text:     "$NAME, what is your favorite color?",
			Options:  []domain.Option{{Text: "Red", Destination: 4}, {Text: "Blue", Destination: 5}},
		},
	}
	for i := 1; i <= 5; i++ {
		nodes = append(nodes, &domain.Terminating{Message: "end"})
	}
	return runtime.NewEngine(testutils.MustNodeList(t, nodes...))
}

func TestEngine_ScenarioB(t *testing.T) {
	ctx := context.Background()
	engine := scenarioB(t)

	t.Run("Render", func(t *testing.T) {
		state := engine.Start(ctx, "b")
		actions, needsInput, err := engine.Render(ctx, state)
		require.NoError(t, err)
		assert.True(t, needsInput)
		assert.Equal(t, "NAME, what is your favorite color?\n1. Red\n2. Blue\n", contentOf(t, actions))

		req := inputOf(t, actions)
		assert.Equal(t, domain.InputChoice, req.Type)
		assert.Equal(t, domain.CueChoice, req.Cue)
		assert.Equal(t, []string{"Red", "Blue"}, req.Options)
	})

	t.Run("Valid Choice", func(t *testing.T) {
		state := engine.Start(ctx, "b")
		next, err := engine.Navigate(ctx, state, "1")
		require.NoError(t, err)
		assert.Equal(t, domain.NodeID(4), next.CurrentNodeID)
		assert.Equal(t, "Red", next.Env.Get("COLOR"))

		assert.Equal(t, domain.NodeID(0), state.CurrentNodeID, "input state is not mutated")
		assert.False(t, state.Env.Has("COLOR"))
	})

	invalid := []struct {
		name   string
		input  string
		reason string
	}{
		{"Out Of Range", "9", runtime.ReasonOutOfRange},
		{"Zero", "0", runtime.ReasonOutOfRange},
		{"Negative", "-1", runtime.ReasonOutOfRange},
		{"Non Numeric", "blue", runtime.ReasonNotNumeric},
		{"Padded Number", " 1", runtime.ReasonNotNumeric},
		{"Empty", "", runtime.ReasonEmpty},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			state := engine.Start(ctx, "b")
			next, err := engine.Navigate(ctx, state, tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidChoice)

			var choiceErr *runtime.InvalidChoiceError
			require.ErrorAs(t, err, &choiceErr)
			assert.Equal(t, tt.reason, choiceErr.Reason)

			require.NotNil(t, next)
			assert.Equal(t, domain.NodeID(0), next.CurrentNodeID)
			assert.Equal(t, 0, next.Env.Len(), "environment untouched")
			assert.Equal(t, state.History, next.History)
		})
	}
}

func TestEngine_ChoiceNumberForms(t *testing.T) {
	ctx := context.Background()
	engine := scenarioB(t)

	for _, input := range []string{"+1", "01", "001"} {
		next, err := engine.Navigate(ctx, engine.Start(ctx, "b"), input)
		require.NoError(t, err, input)
		assert.Equal(t, domain.NodeID(4), next.CurrentNodeID, input)
		assert.Equal(t, "Red", next.Env.Get("COLOR"), input)
	}

	next, err := engine.Navigate(ctx, engine.Start(ctx, "b"), "+02")
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(5), next.CurrentNodeID)
}

func TestEngine_ManyOptions(t *testing.T) {
	ctx := context.Background()
	list := testutils.MustParse(t, "2\nPICK\nPick one\nA:1\nB:1\nC:2\n3\nfirst\n3\nsecond $PICK\n")
	engine := runtime.NewEngine(list)

	state, err := engine.Navigate(ctx, engine.Start(ctx, "m"), "3")
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(2), state.CurrentNodeID)

	actions, _, err := engine.Render(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "second C", contentOf(t, actions))
}

func TestEngine_TerminatedState(t *testing.T) {
	ctx := context.Background()
	engine := scenarioA(t)
	state := domain.NewState("done")
	state.TransitionTo(domain.TerminalNodeID)

	_, _, err := engine.Render(ctx, state)
	assert.ErrorIs(t, err, domain.ErrSessionTerminated)

	_, err = engine.Navigate(ctx, state, "x")
	assert.ErrorIs(t, err, domain.ErrSessionTerminated)
}

func TestEngine_HolyGrailWalk(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(testutils.MustParse(t, testutils.HolyGrail))
	state := engine.Start(ctx, "grail")

	for _, input := range []string{"Arthur", "1", "2"} {
		var err error
		state, err = engine.Navigate(ctx, state, input)
		require.NoError(t, err)
	}

	assert.Equal(t, domain.NodeID(5), state.CurrentNodeID)
	assert.Equal(t, map[string]string{
		"NAME":  "Arthur",
		"QUEST": "The Holy Grail",
		"COLOR": "I mean blue",
	}, state.Env.Snapshot())

	actions, _, err := engine.Render(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "AAAARRRRGGGGGHHHHH", contentOf(t, actions))
}
