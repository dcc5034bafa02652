// Package s3 provides a blobstore.BlobStore backed by Amazon S3, for
// keeping ball tree snapshots in object storage.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/balltree/blobstore"
)

// Client captures the subset of the S3 API the store uses. *s3.Client
// satisfies it; tests can substitute a fake.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Store implements blobstore.BlobStore on top of an S3 bucket.
type Store struct {
	client Client
	bucket string
	prefix string
}

// NewStore creates a store writing below rootPrefix in the given
// bucket (e.g. "snapshots/prod").
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

// New builds a store using the default AWS credential chain.
func New(ctx context.Context, bucket, rootPrefix string, optFns ...func(*config.LoadOptions) error) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}

	return NewStore(s3.NewFromConfig(cfg), bucket, rootPrefix), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, blobstore.ErrNotFound
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	return &s3Blob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		size:   aws.ToInt64(head.ContentLength),
	}, nil
}

func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	key := s.key(name)
	pr, pw := io.Pipe()

	var uploader *manager.Uploader
	if c, ok := s.client.(manager.UploadAPIClient); ok {
		uploader = manager.NewUploader(c)
	}

	blob := &s3WritableBlob{
		pw:   pw,
		done: make(chan error, 1),
	}

	// The uploader consumes the pipe until the writer side closes.
	go func() {
		var err error
		if uploader != nil {
			_, err = uploader.Upload(context.Background(), &s3.PutObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(key),
				Body:   pr,
			})
		} else {
			_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(key),
				Body:   pr,
			})
		}
		_ = pr.CloseWithError(err)
		blob.done <- err
	}()

	return blob, nil
}

func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   bytes.NewReader(data),
	})

	return err
}

func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})

	return err
}

func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)
	var names []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, obj := range page.Contents {
			names = append(names, stripPrefix(aws.ToString(obj.Key), s.prefix))
		}
	}

	sort.Strings(names)

	return names, nil
}

// stripPrefix removes the store's root prefix plus its separator from
// a full object key, yielding the name the caller passed in.
func stripPrefix(key, rootPrefix string) string {
	if rootPrefix == "" || len(key) <= len(rootPrefix) || key[:len(rootPrefix)] != rootPrefix {
		return key
	}

	rel := key[len(rootPrefix):]
	if len(rel) > 0 && rel[0] == '/' {
		rel = rel[1:]
	}

	return rel
}

// s3Blob reads object bytes via ranged GETs.
type s3Blob struct {
	client Client
	bucket string
	key    string
	size   int64
}

func (b *s3Blob) Close() error { return nil }

func (b *s3Blob) Size() int64 { return b.size }

func (b *s3Blob) ReadAt(p []byte, off int64) (int, error) {
	if off >= b.size {
		return 0, io.EOF
	}

	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}

	rangeHeader := fmt.Sprintf("bytes=%d-%d", off, end)

	resp, err := b.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
		Range:  aws.String(rangeHeader),
	})
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	n, err := io.ReadFull(resp.Body, p)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		if off+int64(n) == b.size {
			return n, nil
		}

		return n, io.EOF
	}

	expected := end - off + 1
	if int64(n) == expected && int64(n) < int64(len(p)) {
		return n, io.EOF
	}

	return n, err
}

// s3WritableBlob streams writes to an in-flight upload through a pipe.
// The upload finalizes only when Close is called.
type s3WritableBlob struct {
	pw     *io.PipeWriter
	done   chan error
	closed atomic.Bool
}

func (b *s3WritableBlob) Write(p []byte) (int, error) {
	if b.closed.Load() {
		return 0, io.ErrClosedPipe
	}

	return b.pw.Write(p)
}

func (b *s3WritableBlob) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return io.ErrClosedPipe
	}

	if err := b.pw.Close(); err != nil {
		return err
	}

	return <-b.done
}

// Sync is a no-op; S3 objects are visible only after Close.
func (b *s3WritableBlob) Sync() error { return nil }
