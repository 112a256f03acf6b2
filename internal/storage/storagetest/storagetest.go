// Package storagetest holds behavior tests shared by every storage.Store backend.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/storage"
)

// Run exercises the Store contract against stores created by newStore.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "playerData", []byte(`{"name":"Alice"}`)))

		got, err := s.Get(ctx, "playerData")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Alice"}`, string(got))
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("one")))
		require.NoError(t, s.Set(ctx, "k", []byte("two")))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "two", string(got))
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		s := newStore(t)
		value := []byte("abc")
		require.NoError(t, s.Set(ctx, "k", value))
		value[0] = 'x'

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
	})

	t.Run("delete then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("v")))
		require.NoError(t, s.Delete(ctx, "k"))

		_, err := s.Get(ctx, "k")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete missing key", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(ctx, "missing"))
	})

	t.Run("canceled context", func(t *testing.T) {
		s := newStore(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, s.Set(canceled, "k", []byte("v")), context.Canceled)
		_, err := s.Get(canceled, "k")
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, s.Delete(canceled, "k"), context.Canceled)
	})
}
