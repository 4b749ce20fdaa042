package azure

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/hupe1980/storageclient/blobstore"
)

// Store implements blobstore.Store for Azure Blob Storage.
type Store struct {
	client *azblob.Client
}

// New creates a Store from an Azure storage connection string.
func New(connectionString string) (*Store, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure client: %w", err)
	}
	return NewStore(client), nil
}

// NewStore creates a Store on top of an existing client.
func NewStore(client *azblob.Client) *Store {
	return &Store{client: client}
}

// ContainerExists reports whether the container exists.
func (s *Store) ContainerExists(ctx context.Context, container string) (bool, error) {
	_, err := s.client.ServiceClient().NewContainerClient(container).GetProperties(ctx, nil)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Exists reports whether the blob exists.
func (s *Store) Exists(ctx context.Context, container, key string) (bool, error) {
	_, err := s.client.ServiceClient().NewContainerClient(container).NewBlobClient(key).GetProperties(ctx, nil)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Download reads the whole blob together with its content type.
func (s *Store) Download(ctx context.Context, container, key string) (*blobstore.Object, error) {
	resp, err := s.client.DownloadStream(ctx, container, key, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var contentType string
	if resp.ContentType != nil {
		contentType = *resp.ContentType
	}

	return &blobstore.Object{Data: data, ContentType: contentType}, nil
}

// Delete removes a blob.
func (s *Store) Delete(ctx context.Context, container, key string) error {
	_, err := s.client.DeleteBlob(ctx, container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil // Already gone
		}
		return translateError(err)
	}
	return nil
}

// Upload writes a block blob, overwriting any existing one.
func (s *Store) Upload(ctx context.Context, container, key string, r io.Reader, contentType string) error {
	var opts *azblob.UploadStreamOptions
	if contentType != "" {
		opts = &azblob.UploadStreamOptions{
			HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
		}
	}
	_, err := s.client.UploadStream(ctx, container, key, r, opts)
	return translateError(err)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if bloberror.HasCode(err, bloberror.ContainerNotFound) {
		return blobstore.ErrContainerNotFound
	}
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ResourceNotFound) {
		return blobstore.ErrNotFound
	}
	return err
}

func isNotFound(err error) bool {
	return bloberror.HasCode(err, bloberror.ContainerNotFound, bloberror.BlobNotFound, bloberror.ResourceNotFound)
}
