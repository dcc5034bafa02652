package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable data blobs
// (snapshots).
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// Create creates a new writable blob. The blob becomes visible
	// when Close returns.
	Create(ctx context.Context, name string) (WritableBlob, error)

	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs matching the prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a streaming write handle. Data is durable (and
// visible to Open) only after Close returns nil.
type WritableBlob interface {
	io.Writer
	io.Closer
	// Sync flushes buffered data where the backend supports it.
	Sync() error
}

// ReadAll reads the entire contents of a blob.
func ReadAll(b Blob) ([]byte, error) {
	data := make([]byte, b.Size())
	if len(data) == 0 {
		return data, nil
	}
	n, err := b.ReadAt(data, 0)
	if err == io.EOF && int64(n) == b.Size() {
		err = nil
	}
	return data[:n], err
}
