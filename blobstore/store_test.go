package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite exercises the BlobStore contract against any
// implementation.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) BlobStore) {
	ctx := context.Background()

	t.Run("OpenMissing", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Open(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutOpenRoundTrip", func(t *testing.T) {
		store := newStore(t)
		data := []byte("snapshot payload")

		require.NoError(t, store.Put(ctx, "snap", data))

		blob, err := store.Open(ctx, "snap")
		require.NoError(t, err)
		defer func() { _ = blob.Close() }()

		assert.Equal(t, int64(len(data)), blob.Size())

		got, err := ReadAll(blob)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("ReadAtOffset", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, "snap", []byte("0123456789")))

		blob, err := store.Open(ctx, "snap")
		require.NoError(t, err)
		defer func() { _ = blob.Close() }()

		p := make([]byte, 4)
		n, err := blob.ReadAt(p, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, []byte("3456"), p)
	})

	t.Run("CreateStreamsAndBecomesVisibleOnClose", func(t *testing.T) {
		store := newStore(t)

		w, err := store.Create(ctx, "streamed")
		require.NoError(t, err)

		_, err = w.Write([]byte("part one "))
		require.NoError(t, err)
		require.NoError(t, w.Sync())
		_, err = w.Write([]byte("part two"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		blob, err := store.Open(ctx, "streamed")
		require.NoError(t, err)
		defer func() { _ = blob.Close() }()

		got, err := ReadAll(blob)
		require.NoError(t, err)
		assert.Equal(t, []byte("part one part two"), got)
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, "snap", []byte("old")))
		require.NoError(t, store.Put(ctx, "snap", []byte("new")))

		blob, err := store.Open(ctx, "snap")
		require.NoError(t, err)
		defer func() { _ = blob.Close() }()

		got, err := ReadAll(blob)
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), got)
	})

	t.Run("DeleteThenOpenFails", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, "snap", []byte("data")))

		require.NoError(t, store.Delete(ctx, "snap"))

		_, err := store.Open(ctx, "snap")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteMissingIsNotAnError", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Delete(ctx, "absent"))
	})

	t.Run("ListByPrefix", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, "trees/a", []byte("1")))
		require.NoError(t, store.Put(ctx, "trees/b", []byte("2")))
		require.NoError(t, store.Put(ctx, "other/c", []byte("3")))

		names, err := store.List(ctx, "trees/")
		require.NoError(t, err)
		assert.Equal(t, []string{"trees/a", "trees/b"}, names)

		all, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"other/c", "trees/a", "trees/b"}, all)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) BlobStore {
		return NewMemoryStore()
	})

	t.Run("OpenReturnsACopy", func(t *testing.T) {
		ctx := context.Background()
		store := NewMemoryStore()
		require.NoError(t, store.Put(ctx, "snap", []byte("abc")))

		blob, err := store.Open(ctx, "snap")
		require.NoError(t, err)
		defer func() { _ = blob.Close() }()

		p := make([]byte, 3)
		_, err = blob.ReadAt(p, 0)
		require.NoError(t, err)
		p[0] = 'X'

		again, err := store.Open(ctx, "snap")
		require.NoError(t, err)
		defer func() { _ = again.Close() }()

		got, err := ReadAll(again)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)
	})
}

func TestLocalStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) BlobStore {
		return NewLocalStore(t.TempDir())
	})

	t.Run("ListOnMissingRootIsEmpty", func(t *testing.T) {
		store := NewLocalStore(t.TempDir() + "/never-created")

		names, err := store.List(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestThrottledStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) BlobStore {
		// A generous budget keeps the suite fast while still pushing
		// every byte through the limiter.
		return NewThrottledStore(NewMemoryStore(), 1<<20)
	})

	t.Run("CancelledContextStopsWaiting", func(t *testing.T) {
		store := NewThrottledStore(NewMemoryStore(), 4)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := store.Put(ctx, "snap", []byte("more than four bytes"))
		assert.Error(t, err)
	})
}
