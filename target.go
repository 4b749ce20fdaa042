package storageclient

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"

	"github.com/hupe1980/storageclient/blobstore"
	"github.com/hupe1980/storageclient/internal/mimetype"
	"golang.org/x/sync/errgroup"
)

// location is a validated operation address.
type location struct {
	path      string
	container string
	key       string
}

// target is one of the two storage targets an operation dispatches to.
type target interface {
	exists(ctx context.Context, loc location) (bool, error)
	fetch(ctx context.Context, loc location) (*StorageFileResponse, error)
	// delete reports deleted=true only if something was removed.
	delete(ctx context.Context, loc location) (resp *FileResponse, deleted bool, err error)
	upload(ctx context.Context, loc location, r io.Reader) error
}

type diskTarget struct {
	store *blobstore.LocalStore
}

func (t *diskTarget) exists(_ context.Context, loc location) (bool, error) {
	return t.store.Exists(loc.path)
}

func (t *diskTarget) fetch(_ context.Context, loc location) (*StorageFileResponse, error) {
	ok, err := t.store.Exists(loc.path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return notFound(MsgFileNotFoundOnDisk), nil
	}

	data, err := t.store.ReadFile(loc.path)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return notFound(MsgFileNotFoundOnDisk), nil
		}
		return nil, err
	}

	return found(filepath.Base(loc.path), mimetype.FromName(loc.path), data), nil
}

func (t *diskTarget) delete(_ context.Context, loc location) (*FileResponse, bool, error) {
	ok, err := t.store.Exists(loc.path)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &FileResponse{Status: true, Message: MsgFileNotFoundOnDisk}, false, nil
	}

	if err := t.store.Remove(loc.path); err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return &FileResponse{Status: true, Message: MsgFileNotFoundOnDisk}, false, nil
		}
		return &FileResponse{Status: false, Message: err.Error()}, false, nil
	}
	return &FileResponse{Status: true, Message: MsgFileDeleted}, true, nil
}

func (t *diskTarget) upload(_ context.Context, loc location, r io.Reader) error {
	return t.store.WriteFile(loc.path, r)
}

type remoteTarget struct {
	store blobstore.Store
}

func (t *remoteTarget) exists(ctx context.Context, loc location) (bool, error) {
	ok, err := t.store.Exists(ctx, loc.container, loc.key)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// check verifies container and object existence concurrently and returns
// the not-found message of the first missing level, or "" if both exist.
// The object result only counts once the container is known to exist.
func (t *remoteTarget) check(ctx context.Context, loc location) (string, error) {
	var (
		containerOK, objectOK   bool
		containerErr, objectErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		containerOK, containerErr = t.store.ContainerExists(ctx, loc.container)
		return nil
	})
	g.Go(func() error {
		objectOK, objectErr = t.exists(ctx, loc)
		return nil
	})
	_ = g.Wait()

	switch {
	case containerErr != nil:
		return "", containerErr
	case !containerOK:
		return MsgContainerNotFound, nil
	case objectErr != nil:
		return "", objectErr
	case !objectOK:
		return MsgFileNotFound, nil
	}
	return "", nil
}

func (t *remoteTarget) fetch(ctx context.Context, loc location) (*StorageFileResponse, error) {
	msg, err := t.check(ctx, loc)
	if err != nil {
		return nil, err
	}
	if msg != "" {
		return notFound(msg), nil
	}

	obj, err := t.store.Download(ctx, loc.container, loc.key)
	if err != nil {
		switch {
		case errors.Is(err, blobstore.ErrContainerNotFound):
			return notFound(MsgContainerNotFound), nil
		case errors.Is(err, blobstore.ErrNotFound):
			return notFound(MsgFileNotFound), nil
		}
		return nil, err
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = mimetype.FromName(loc.key)
	}

	return found(path.Base(loc.key), contentType, obj.Data), nil
}

func (t *remoteTarget) delete(ctx context.Context, loc location) (*FileResponse, bool, error) {
	msg, err := t.check(ctx, loc)
	if err != nil {
		return nil, false, err
	}
	if msg != "" {
		return &FileResponse{Status: false, Message: msg}, false, nil
	}

	if err := t.store.Delete(ctx, loc.container, loc.key); err != nil {
		return nil, false, err
	}
	return &FileResponse{Status: true, Message: MsgFileDeleted}, true, nil
}

func (t *remoteTarget) upload(ctx context.Context, loc location, r io.Reader) error {
	return t.store.Upload(ctx, loc.container, loc.key, r, mimetype.FromName(loc.key))
}

func isNotFound(err error) bool {
	return errors.Is(err, blobstore.ErrNotFound) || errors.Is(err, blobstore.ErrContainerNotFound)
}
