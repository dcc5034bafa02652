package balltree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/balltree/blobstore"
	"github.com/hupe1980/balltree/codec"
	"github.com/hupe1980/balltree/testutil"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()

	codecs := map[string]codec.Codec{
		"gob":  codec.Gob{},
		"json": codec.JSON{},
	}
	compressions := map[string]CompressionType{
		"none": CompressionNone,
		"lz4":  CompressionLZ4,
		"zstd": CompressionZSTD,
	}

	for codecName, c := range codecs {
		for compName, comp := range compressions {
			t.Run(codecName+"/"+compName, func(t *testing.T) {
				rng := testutil.NewRNG(11)
				locations := rng.UniformLocations(50, 3)

				tree, err := New[int](3, WithCodec(c), WithCompression(comp))
				require.NoError(t, err)
				for i, loc := range locations {
					_, err := tree.Insert(ctx, loc, i)
					require.NoError(t, err)
				}

				store := blobstore.NewMemoryStore()
				require.NoError(t, tree.SaveSnapshot(ctx, store, "snap"))

				restored, err := LoadSnapshot[int](ctx, store, "snap")
				require.NoError(t, err)

				assert.Equal(t, tree.Size(), restored.Size())
				assert.Equal(t, 3, restored.Dimension())
				checkInvariants(t, restored)

				for i, loc := range locations[:10] {
					item, found, err := restored.NearestNeighbour(ctx, loc)
					require.NoError(t, err)
					require.True(t, found)
					assert.Equal(t, i, item)
				}
			})
		}
	}
}

func TestSnapshotSelfDescribing(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	// Written with JSON+LZ4; loaded without either option configured.
	tree, err := New[string](2, WithCodec(codec.JSON{}), WithCompression(CompressionLZ4))
	require.NoError(t, err)
	_, err = tree.Insert(ctx, []float64{1, 2}, "a")
	require.NoError(t, err)

	require.NoError(t, tree.SaveSnapshot(ctx, store, "snap"))

	restored, err := LoadSnapshot[string](ctx, store, "snap")
	require.NoError(t, err)

	item, found, err := restored.NearestNeighbour(ctx, []float64{1, 2})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "a", item)
}

func TestSnapshotErrors(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	t.Run("MissingBlob", func(t *testing.T) {
		_, err := LoadSnapshot[string](ctx, store, "absent")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("BadMagic", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "garbage", []byte("XXXX\x00\x03gob")))

		_, err := LoadSnapshot[string](ctx, store, "garbage")
		assert.ErrorContains(t, err, "bad magic")
	})

	t.Run("TooSmall", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "tiny", []byte("BT")))

		_, err := LoadSnapshot[string](ctx, store, "tiny")
		assert.ErrorContains(t, err, "too small")
	})

	t.Run("UnknownCodec", func(t *testing.T) {
		blob := append([]byte("BTS1"), 0, 3)
		blob = append(blob, []byte("xml")...)
		require.NoError(t, store.Put(ctx, "badcodec", blob))

		_, err := LoadSnapshot[string](ctx, store, "badcodec")
		assert.ErrorContains(t, err, "unknown codec")
	})
}

func TestSnapshotEmptyTree(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	tree, err := New[string](7)
	require.NoError(t, err)
	require.NoError(t, tree.SaveSnapshot(ctx, store, "empty"))

	restored, err := LoadSnapshot[string](ctx, store, "empty")
	require.NoError(t, err)

	assert.Equal(t, 7, restored.Dimension())
	assert.Zero(t, restored.Size())

	_, found, err := restored.NearestNeighbour(ctx, make([]float64, 7))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSnapshotMetrics(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	metrics := &BasicMetricsCollector{}

	tree, err := New[string](2, WithMetrics(metrics))
	require.NoError(t, err)
	_, err = tree.Insert(ctx, []float64{1, 2}, "a")
	require.NoError(t, err)

	require.NoError(t, tree.SaveSnapshot(ctx, store, "snap"))

	assert.Equal(t, int64(1), metrics.SnapshotCount.Load())
	assert.Positive(t, metrics.SnapshotBytes.Load())
}
