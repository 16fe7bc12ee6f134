package winnow_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/internal/compiler"
	"github.com/aretw0/winnow/internal/testutils"
	"github.com/aretw0/winnow/pkg/adapters/memory"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/ports"
	"github.com/aretw0/winnow/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Engine = (*winnow.Engine)(nil)

func run(t *testing.T, eng *winnow.Engine, input string) (*domain.State, string, string) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	handler := runner.NewTextHandler(strings.NewReader(input), out, runner.WithTextHandlerErrWriter(errOut))

	final, err := runner.NewRunner(runner.WithInputHandler(handler)).Run(context.Background(), eng, nil)
	require.NoError(t, err)
	return final, out.String(), errOut.String()
}

func TestNew_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grail.txt")
	require.NoError(t, os.WriteFile(path, []byte(testutils.HolyGrail), 0o644))

	eng, err := winnow.New(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "grail.txt", eng.Name)
	assert.Equal(t, 6, eng.Nodes().Len())
	assert.Len(t, eng.Inspect(), 6)
	assert.Equal(t, path, eng.Loader().Source())
}

func TestNew_MissingFile(t *testing.T) {
	_, err := winnow.New(context.Background(), filepath.Join(t.TempDir(), "input.txt"))
	assert.ErrorIs(t, err, domain.ErrScriptNotFound)
}

func TestNew_ParseError(t *testing.T) {
	_, err := winnow.New(context.Background(), "", winnow.WithLoader(memory.FromText("1\nx\n")))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.ErrorIs(t, err, compiler.ErrInvalidInteger)
}

func TestEndToEnd_NameQuestion(t *testing.T) {
	script := "1\n1\n3\nNAME\nWhat is your name?\nPlease tell me your name\nYou better tell me your name\n" +
		"3\nGoodbye $NAME\n3\nunused\n3\nNo name given\n"
	eng, err := winnow.New(context.Background(), "", winnow.WithLoader(memory.FromText(script)))
	require.NoError(t, err)

	t.Run("Answered", func(t *testing.T) {
		final, out, _ := run(t, eng, "Alice\n\n")
		assert.Equal(t, "Alice", final.Env.Get("NAME"))
		assert.Contains(t, out, "Goodbye Alice")
		assert.True(t, final.Terminated())
	})

	t.Run("Three Blanks", func(t *testing.T) {
		final, out, _ := run(t, eng, "\n\n\n\n")
		assert.Contains(t, out, "No name given")
		assert.False(t, final.Env.Has("NAME"))
		assert.True(t, final.Terminated())
	})
}

func TestEndToEnd_Menu(t *testing.T) {
	script := "2\nCOLOR\n$NAME, what is your favorite color?\nRed:4\nBlue:5\n" +
		"3\n-\n3\n-\n3\n-\n3\nred end\n3\nblue end\n"
	eng, err := winnow.New(context.Background(), "", winnow.WithLoader(memory.FromText(script)))
	require.NoError(t, err)

	final, out, errOut := run(t, eng, "3\nred\n1\n\n")
	assert.Equal(t, "Red", final.Env.Get("COLOR"))
	assert.Contains(t, out, "NAME, what is your favorite color?\n1. Red\n2. Blue\n")
	assert.Contains(t, out, "red end")
	assert.Equal(t, "Not a valid option!\nUnrecognized input: red\n", errOut)
}

func TestEndToEnd_Hooks(t *testing.T) {
	var entered []domain.NodeID
	hooks := domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			entered = append(entered, e.NodeID)
		},
	}

	eng, err := winnow.New(context.Background(), "grail",
		winnow.WithLoader(memory.FromText(testutils.HolyGrail)),
		winnow.WithLifecycleHooks(hooks),
	)
	require.NoError(t, err)
	assert.Equal(t, "grail", eng.Name)

	final, _, _ := run(t, eng, "Robin\n2\nok\n")
	assert.Equal(t, "Run and Hide", final.Env.Get("QUEST"))
	assert.Equal(t, []domain.NodeID{0, 1, 3}, entered)
}
