package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a BlobStore and rate-limits the bytes it moves.
// It is useful in front of cloud stores with API throughput budgets,
// or to keep background snapshot traffic from starving foreground
// work.
type ThrottledStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewThrottledStore creates a ThrottledStore limited to roughly
// bytesPerSec across reads and writes. bytesPerSec must be positive.
func NewThrottledStore(inner BlobStore, bytesPerSec int) *ThrottledStore {
	return &ThrottledStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec),
	}
}

// waitN reserves n bytes of budget, splitting requests larger than the
// limiter burst into chunks.
func (s *ThrottledStore) waitN(ctx context.Context, n int) error {
	burst := s.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledBlob{inner: b, store: s}, nil
}

func (s *ThrottledStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	w, err := s.inner.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledWritableBlob{inner: w, store: s, ctx: ctx}, nil
}

func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.waitN(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

type throttledBlob struct {
	inner Blob
	store *ThrottledStore
}

func (b *throttledBlob) ReadAt(p []byte, off int64) (int, error) {
	// Blob reads carry no context; charge against the background one.
	if err := b.store.waitN(context.Background(), len(p)); err != nil {
		return 0, err
	}
	return b.inner.ReadAt(p, off)
}

func (b *throttledBlob) Close() error { return b.inner.Close() }
func (b *throttledBlob) Size() int64  { return b.inner.Size() }

type throttledWritableBlob struct {
	inner WritableBlob
	store *ThrottledStore
	ctx   context.Context
}

func (w *throttledWritableBlob) Write(p []byte) (int, error) {
	if err := w.store.waitN(w.ctx, len(p)); err != nil {
		return 0, err
	}
	return w.inner.Write(p)
}

func (w *throttledWritableBlob) Close() error { return w.inner.Close() }
func (w *throttledWritableBlob) Sync() error  { return w.inner.Sync() }
