// Package blobstore provides the backend contract behind the storage client.
//
// Store is the interface for addressing objects in a remote store by container
// and key. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process containers, used by tests and demos
//   - azure.Store: Azure Blob Storage built from a connection string
//   - s3.Store: Amazon S3 (and compatible endpoints) via aws-sdk-go-v2
//   - minio.Store: MinIO and other S3-compatible storage via minio-go
//
// LocalStore holds the local filesystem primitives used for disk paths.
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    ContainerExists(ctx, container) (bool, error)
//	    Exists(ctx, container, key) (bool, error)
//	    Download(ctx, container, key) (*Object, error)
//	    Delete(ctx, container, key) error
//	    Upload(ctx, container, key, r, contentType) error
//	}
//
// Not-found conditions must satisfy errors.Is(err, ErrNotFound) or
// errors.Is(err, ErrContainerNotFound).
package blobstore
