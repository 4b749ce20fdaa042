// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// Containers map to buckets and keys map to object keys.
//
// # Usage
//
//	store, err := s3.New(ctx, func(o *s3.Options) {
//	    o.Region = "us-east-1"
//	})
//
//	client := storageclient.New(store)
//
// # Features
//
//   - Multipart uploads for large objects via the SDK upload manager
//   - Custom endpoints and path-style addressing for S3-compatible services
//   - Static credentials or the default AWS credentials chain
package s3
