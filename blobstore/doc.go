// Package blobstore provides storage abstraction for ball tree
// snapshots.
//
// BlobStore is the interface for reading and writing whole data blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: local filesystem with atomic writes
//   - ThrottledStore: byte-rate-limiting wrapper around any store
//   - s3.Store: Amazon S3 with ranged reads and streamed uploads
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage
// backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)           // open for reading
//	    Create(ctx, name) (WritableBlob, error) // create for writing
//	    Put(ctx, name, data) error              // atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
