package blobstore

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// copyConcurrency bounds the number of in-flight blob transfers.
const copyConcurrency = 8

// Copy transfers every blob matching prefix from src to dst,
// overwriting blobs that already exist in dst. Transfers run
// concurrently; the first failure cancels the rest.
func Copy(ctx context.Context, src, dst BlobStore, prefix string) error {
	names, err := src.List(ctx, prefix)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(copyConcurrency)

	for _, name := range names {
		g.Go(func() error {
			blob, err := src.Open(ctx, name)
			if err != nil {
				return err
			}
			defer func() { _ = blob.Close() }()

			data, err := ReadAll(blob)
			if err != nil {
				return err
			}
			return dst.Put(ctx, name, data)
		})
	}

	return g.Wait()
}
