package storageclient

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hupe1980/storageclient/blobstore"
	"github.com/hupe1980/storageclient/blobstore/connstr"
	"github.com/hupe1980/storageclient/internal/mimetype"
)

// FoundFunc is invoked with the populated response after a successful Fetch.
type FoundFunc func(resp *StorageFileResponse)

// DeletedFunc is invoked after Delete removed a file.
type DeletedFunc func(resp *FileResponse)

// UploadedFunc is invoked after a successful Upload.
type UploadedFunc func(ft FileType, path string)

// Client performs file operations against the local disk or a remote blob
// store, selected per call by FileType.
//
// A Client is immutable after construction and safe for concurrent use.
type Client struct {
	disk    *diskTarget
	remote  *remoteTarget
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Client backed by remote for Blob operations.
// remote may be nil, in which case Blob operations fail with ErrRemoteNotConfigured.
func New(remote blobstore.Store, optFns ...Option) *Client {
	o := applyOptions(optFns)

	c := &Client{
		disk:    &diskTarget{store: blobstore.NewLocalStoreFS(o.fsys, o.fileMode, o.createDirs)},
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	if remote != nil {
		c.remote = &remoteTarget{store: remote}
	}
	return c
}

// Open creates a Client whose remote store is built from connectionString.
// See package connstr for the supported forms.
func Open(ctx context.Context, connectionString string, optFns ...Option) (*Client, error) {
	remote, err := connstr.Open(ctx, connectionString)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConnectionString, err)
	}
	return New(remote, optFns...), nil
}

// HasRemote reports whether Blob operations are available.
func (c *Client) HasRemote() bool {
	return c.remote != nil
}

// resolve validates path and selects the target for ft. It performs no I/O.
func (c *Client) resolve(ft FileType, path string) (target, location, error) {
	if strings.TrimSpace(path) == "" {
		return nil, location{}, invalidPath(path)
	}

	switch ft {
	case Disk:
		return c.disk, location{path: path}, nil
	case Blob:
		container, key, err := blobstore.ParsePath(path)
		if err != nil {
			return nil, location{}, invalidPath(path)
		}
		if c.remote == nil {
			return nil, location{}, ErrRemoteNotConfigured
		}
		return c.remote, location{path: path, container: container, key: key}, nil
	default:
		return nil, location{}, fmt.Errorf("unknown file type: %s", ft)
	}
}

// Exists reports whether a file exists at path.
//
// For Blob, a missing container or object yields false. Other backend
// failures are returned as *BackendError so they are never mistaken for a
// definitive "absent".
func (c *Client) Exists(ctx context.Context, ft FileType, path string) (bool, error) {
	t, loc, err := c.resolve(ft, path)
	if err != nil {
		return false, err
	}
	log := c.logger.WithOpID().WithTarget(ft, path)

	start := time.Now()
	ok, err := t.exists(ctx, loc)
	err = backendError("exists", ft, path, err)
	if err != nil {
		ok = false
	}

	c.metrics.RecordExists(ft, time.Since(start), err)
	log.LogExists(ctx, ok, err)
	return ok, err
}

// Fetch reads the whole file.
//
// Not-found conditions are reported with Status false. On success onFound,
// if non-nil, is invoked with the response before Fetch returns.
func (c *Client) Fetch(ctx context.Context, ft FileType, path string, onFound FoundFunc) (*StorageFileResponse, error) {
	t, loc, err := c.resolve(ft, path)
	if err != nil {
		return nil, err
	}
	log := c.logger.WithOpID().WithTarget(ft, path)

	start := time.Now()
	resp, err := t.fetch(ctx, loc)
	err = backendError("fetch", ft, path, err)

	var n int
	if err == nil && resp.Status {
		n = len(resp.RawData)
	}
	c.metrics.RecordFetch(ft, err == nil && resp.Status, n, time.Since(start), err)
	log.LogFetch(ctx, resp, err)
	if err != nil {
		return nil, err
	}

	if resp.Status && onFound != nil {
		onFound(resp)
	}
	return resp, nil
}

// Delete removes the file at path.
//
// A file already absent from disk is reported with Status true. For Blob, a
// missing container or object is reported with Status false. A failed disk
// removal is reported with Status false and the error text as Message.
// onDelete, if non-nil, is invoked after a file was removed.
func (c *Client) Delete(ctx context.Context, ft FileType, path string, onDelete DeletedFunc) (*FileResponse, error) {
	t, loc, err := c.resolve(ft, path)
	if err != nil {
		return nil, err
	}
	log := c.logger.WithOpID().WithTarget(ft, path)

	start := time.Now()
	resp, deleted, err := t.delete(ctx, loc)
	err = backendError("delete", ft, path, err)

	c.metrics.RecordDelete(ft, time.Since(start), err)
	log.LogDelete(ctx, resp, err)
	if err != nil {
		return nil, err
	}

	if deleted && onDelete != nil {
		onDelete(resp)
	}
	return resp, nil
}

// Upload writes r to path, replacing any existing file or object.
//
// Backend failures are logged and reported as false. An error is returned
// only for invalid input or a missing remote store. onUpload, if non-nil, is
// invoked on success.
func (c *Client) Upload(ctx context.Context, ft FileType, path string, r io.Reader, onUpload UploadedFunc) (bool, error) {
	t, loc, err := c.resolve(ft, path)
	if err != nil {
		return false, err
	}
	if r == nil {
		return false, ErrNilReader
	}
	log := c.logger.WithOpID().WithTarget(ft, path)

	start := time.Now()
	cause := t.upload(ctx, loc, r)
	ok := cause == nil

	c.metrics.RecordUpload(ft, ok, time.Since(start))
	log.LogUpload(ctx, cause)

	if ok && onUpload != nil {
		onUpload(ft, path)
	}
	return ok, nil
}

// ContentTypeFor returns the content type used for files named name.
// Unknown extensions map to "application/octet-stream".
func ContentTypeFor(name string) string {
	return mimetype.FromName(name)
}
