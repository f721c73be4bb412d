package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{
		"Memory": NewMemoryStore(),
		"Local":  local,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, "snapshots/a", []byte("alpha")))
			require.NoError(t, s.Put(ctx, "snapshots/b", []byte("beta")))
			require.NoError(t, s.Put(ctx, "other/c", []byte("gamma")))

			data, err := s.Get(ctx, "snapshots/a")
			require.NoError(t, err)
			assert.Equal(t, []byte("alpha"), data)

			// Overwrite replaces.
			require.NoError(t, s.Put(ctx, "snapshots/a", []byte("alpha2")))
			data, err = s.Get(ctx, "snapshots/a")
			require.NoError(t, err)
			assert.Equal(t, []byte("alpha2"), data)

			names, err := s.List(ctx, "snapshots/")
			require.NoError(t, err)
			assert.Equal(t, []string{"snapshots/a", "snapshots/b"}, names)

			all, err := s.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, "x", []byte("1")))
			require.NoError(t, s.Delete(ctx, "x"))

			_, err := s.Get(ctx, "x")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting a missing object is not an error.
			assert.NoError(t, s.Delete(ctx, "x"))
		})
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	data := []byte("mutable")
	require.NoError(t, s.Put(ctx, "x", data))
	data[0] = 'X'

	got, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, []byte("mutable"), got)

	// Mutating the returned slice does not affect the store.
	got[0] = 'Y'
	again, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, []byte("mutable"), again)
}
