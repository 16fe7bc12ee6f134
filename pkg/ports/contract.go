package ports

import (
	"context"
	"testing"

	"github.com/aretw0/winnow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunScriptLoaderContract runs a suite of tests to verify that a ScriptLoader
// implementation adheres to the defined interface contract.
// present must hold want; missing must point at a source that does not exist.
func RunScriptLoaderContract(t *testing.T, present ScriptLoader, want string, missing ScriptLoader) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		text, err := present.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, want, text)
	})

	t.Run("Load Twice", func(t *testing.T) {
		first, err := present.Load(ctx)
		require.NoError(t, err)
		second, err := present.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second, "loading must not consume the source")
	})

	t.Run("Load Missing", func(t *testing.T) {
		_, err := missing.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrScriptNotFound)
	})

	t.Run("Source", func(t *testing.T) {
		assert.NotEmpty(t, present.Source())
	})
}
