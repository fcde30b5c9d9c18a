package api_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylehaus/storefront-client/internal/api"
)

func TestFileTokenStore(t *testing.T) {
	t.Run("round trip survives a process restart", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "tokens.json")

		store, err := api.NewFileTokenStore(path)
		require.NoError(t, err)

		// Act
		require.NoError(t, store.Set("access-1", "refresh-1"))

		reopened, err := api.NewFileTokenStore(path)
		require.NoError(t, err)

		// Assert
		assert.Equal(t, "access-1", reopened.Access())
		assert.Equal(t, "refresh-1", reopened.Refresh())
	})

	t.Run("token file is private to the user", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "tokens.json")
		store, err := api.NewFileTokenStore(path)
		require.NoError(t, err)

		// Act
		require.NoError(t, store.Set("a", "r"))

		// Assert
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("clear removes the persisted pair", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "tokens.json")
		store, err := api.NewFileTokenStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set("a", "r"))

		// Act
		require.NoError(t, store.Clear())

		// Assert
		assert.Empty(t, store.Access())
		assert.NoFileExists(t, path)
		assert.NoError(t, store.Clear(), "clearing twice is fine")
	})

	t.Run("corrupt token file starts an anonymous session", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "tokens.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		// Act
		store, err := api.NewFileTokenStore(path)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, store.Access())
		assert.Empty(t, store.Refresh())
	})

	t.Run("missing parent directories are created on write", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "nested", "dir", "tokens.json")
		store, err := api.NewFileTokenStore(path)
		require.NoError(t, err)

		// Act + Assert
		require.NoError(t, store.Set("a", "r"))
		assert.FileExists(t, path)
	})
}
