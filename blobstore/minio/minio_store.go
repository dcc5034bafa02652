// Package minio provides a blobstore.BlobStore for MinIO and other
// S3-compatible object stores, for keeping ball tree snapshots.
package minio

import (
	"bytes"
	"context"
	"io"
	"path"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/hupe1980/balltree/blobstore"
	"github.com/minio/minio-go/v7"
)

// Store implements blobstore.BlobStore on top of a MinIO bucket.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a store writing below rootPrefix in the given
// bucket (e.g. "snapshots/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens an existing blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, blobstore.ErrNotFound
		}

		return nil, err
	}

	return &minioBlob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		size:   info.Size,
	}, nil
}

// Put writes a blob in one call.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.key(name), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})

	return err
}

// Create creates a new blob for streaming writes. The object becomes
// visible only after Close.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	key := s.key(name)
	pr, pw := io.Pipe()

	blob := &minioWritableBlob{
		pw:   pw,
		done: make(chan error, 1),
	}

	go func() {
		_, err := s.client.PutObject(ctx, s.bucket, key, pr, -1, minio.PutObjectOptions{})
		_ = pr.CloseWithError(err)
		blob.done <- err
	}()

	return blob, nil
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.key(name), minio.RemoveObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil
		}

		return err
	}

	return nil
}

// List returns all blob names with the given prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    fullPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}

		name := strings.TrimPrefix(obj.Key, s.prefix)
		name = strings.TrimPrefix(name, "/")
		if name != "" {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names, nil
}

// minioBlob reads object bytes via ranged GETs.
type minioBlob struct {
	client *minio.Client
	bucket string
	key    string
	size   int64
}

func (b *minioBlob) Size() int64 { return b.size }

func (b *minioBlob) ReadAt(p []byte, off int64) (int, error) {
	if off >= b.size {
		return 0, io.EOF
	}

	opts := minio.GetObjectOptions{}

	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}

	if err := opts.SetRange(off, end); err != nil {
		return 0, err
	}

	obj, err := b.client.GetObject(context.Background(), b.bucket, b.key, opts)
	if err != nil {
		return 0, err
	}
	defer func() { _ = obj.Close() }()

	n, err := io.ReadFull(obj, p[:end-off+1])
	if err == nil && int64(n) < int64(len(p)) {
		return n, io.EOF
	}

	return n, err
}

func (b *minioBlob) Close() error { return nil }

// minioWritableBlob streams writes to an in-flight upload through a
// pipe.
type minioWritableBlob struct {
	pw     *io.PipeWriter
	done   chan error
	closed atomic.Bool
}

func (b *minioWritableBlob) Write(p []byte) (int, error) {
	if b.closed.Load() {
		return 0, io.ErrClosedPipe
	}

	return b.pw.Write(p)
}

func (b *minioWritableBlob) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return io.ErrClosedPipe
	}

	if err := b.pw.Close(); err != nil {
		return err
	}

	return <-b.done
}

// Sync is a no-op for streaming uploads.
func (b *minioWritableBlob) Sync() error { return nil }
