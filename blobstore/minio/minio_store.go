package minio

import (
	"context"
	"io"

	"github.com/hupe1980/storageclient/blobstore"
	"github.com/minio/minio-go/v7"
)

// DefaultPartSize is the multipart part size used when the upload length is
// unknown. minio-go buffers one part in memory per upload.
const DefaultPartSize = 16 * 1024 * 1024

// Options configures a Store.
type Options struct {
	// PartSize bounds the per-upload buffer for streams of unknown length.
	// Must be at least 5MiB. Default: DefaultPartSize.
	PartSize uint64
}

// Store implements blobstore.Store for MinIO and S3-compatible storage.
// Containers map to buckets.
type Store struct {
	client   *minio.Client
	partSize uint64
}

// NewStore creates a new MinIO store.
func NewStore(client *minio.Client, optFns ...func(*Options)) *Store {
	opts := Options{PartSize: DefaultPartSize}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.PartSize == 0 {
		opts.PartSize = DefaultPartSize
	}
	return &Store{client: client, partSize: opts.PartSize}
}

// ContainerExists reports whether the bucket exists.
func (s *Store) ContainerExists(ctx context.Context, container string) (bool, error) {
	return s.client.BucketExists(ctx, container)
}

// Exists reports whether the object exists.
func (s *Store) Exists(ctx context.Context, container, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, container, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Download reads the whole object.
func (s *Store) Download(ctx context.Context, container, key string) (*blobstore.Object, error) {
	obj, err := s.client.GetObject(ctx, container, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, translateError(err)
	}
	defer func() { _ = obj.Close() }()

	// GetObject is lazy; Stat surfaces not-found errors.
	info, err := obj.Stat()
	if err != nil {
		return nil, translateError(err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, translateError(err)
	}

	return &blobstore.Object{
		Data:        data,
		ContentType: info.ContentType,
	}, nil
}

// Delete removes an object.
func (s *Store) Delete(ctx context.Context, container, key string) error {
	err := s.client.RemoveObject(ctx, container, key, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil // Already gone
		}
		return translateError(err)
	}
	return nil
}

// Upload writes an object. Readers with a known length are sent in a single
// PUT below PartSize; other streams are uploaded in PartSize parts.
func (s *Store) Upload(ctx context.Context, container, key string, r io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, container, key, r, readerSize(r), minio.PutObjectOptions{
		ContentType: contentType,
		PartSize:    s.partSize,
	})
	return translateError(err)
}

// readerSize returns the remaining length of r, or -1 if it is unknown.
func readerSize(r io.Reader) int64 {
	switch v := r.(type) {
	case interface{ Len() int }:
		return int64(v.Len())
	case io.Seeker:
		cur, err := v.Seek(0, io.SeekCurrent)
		if err != nil {
			return -1
		}
		end, err := v.Seek(0, io.SeekEnd)
		if err != nil {
			return -1
		}
		if _, err := v.Seek(cur, io.SeekStart); err != nil {
			return -1
		}
		return end - cur
	}
	return -1
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchBucket":
		return blobstore.ErrContainerNotFound
	case "NoSuchKey", "NotFound":
		return blobstore.ErrNotFound
	}
	return err
}

func isNotFound(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchBucket", "NoSuchKey", "NotFound":
		return true
	}
	return false
}
