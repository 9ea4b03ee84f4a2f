// Package blobstore abstracts the storage of model snapshot blobs.
//
// A Store maps names to immutable byte blobs. Backends:
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: local filesystem with atomic writes
//   - s3.Store: Amazon S3 via aws-sdk-go-v2
//   - minio.Store: MinIO and other S3-compatible object stores
//
// CachingStore wraps any Store and memoizes whole-blob reads, which keeps
// repeated model loads from hitting remote storage.
package blobstore
