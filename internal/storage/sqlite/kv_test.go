package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-calculator/internal/storage"
	"time-calculator/internal/storage/sqlite"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "timecalc.db")

	s, err := sqlite.New(ctx, path)
	require.NoError(t, err)

	t.Run("MissingKey", func(t *testing.T) {
		_, ok, err := s.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("SetGetOverwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "theme", "light"))
		require.NoError(t, s.Set(ctx, "theme", "dark"))
		v, ok, err := s.Get(ctx, "theme")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "dark", v)
	})

	t.Run("SetMany", func(t *testing.T) {
		require.NoError(t, s.SetMany(ctx, map[string]string{"a": "1", "b": "2"}))
		a, _, _ := s.Get(ctx, "a")
		b, _, _ := s.Get(ctx, "b")
		assert.Equal(t, "1", a)
		assert.Equal(t, "2", b)
	})

	t.Run("SetManyRejectsEmptyKey", func(t *testing.T) {
		err := s.SetMany(ctx, map[string]string{"c": "3", "": "x"})
		assert.ErrorIs(t, err, storage.ErrEmptyKey)
		_, ok, _ := s.Get(ctx, "c")
		assert.False(t, ok, "nothing may be written when the batch is rejected")
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, s.Remove(ctx, "a", "b", "missing"))
		_, ok, _ := s.Get(ctx, "a")
		assert.False(t, ok)
		require.NoError(t, s.Remove(ctx))
	})

	t.Run("Persistence", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "kept", "yes"))
		require.NoError(t, s.Close())

		s2, err := sqlite.New(ctx, path)
		require.NoError(t, err)
		defer s2.Close()

		v, ok, err := s2.Get(ctx, "kept")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "yes", v)
	})
}
