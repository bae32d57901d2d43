package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "cart.json"))
	require.NoError(t, err)

	_, ok, err := s.Get(context.Background(), "cartItems")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_SetPersistsAcrossOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cart.json")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "cartItems", `[{"domain":"foo","tld":"com","price":"12.50"}]`))

	reopened, err := Open(path)
	require.NoError(t, err)
	got, ok, err := reopened.Get(ctx, "cartItems")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"domain":"foo","tld":"com","price":"12.50"}]`, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files should be cleaned up")
}

func TestOpen_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path)
	require.Error(t, err)
}

func TestStore_SetFailureKeepsPreviousValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(filepath.Join(dir, "cart.json"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "cartItems", "before"))

	// A directory at the target path makes the rename fail.
	s.path = dir
	require.Error(t, s.Set(ctx, "cartItems", "after"))

	got, _, err := s.Get(ctx, "cartItems")
	require.NoError(t, err)
	require.Equal(t, "before", got)
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "cart.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Set(ctx, "k", "v"), context.Canceled)
}
