package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

var (
	// ErrNotFound is returned when an object does not exist.
	//
	// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
	// The default maps to `os.ErrNotExist`.
	ErrNotFound = os.ErrNotExist

	// ErrContainerNotFound is returned when the addressed container does not exist.
	ErrContainerNotFound = errors.New("container not found")
)

// Store is an abstraction over a remote object store addressed by container and key.
type Store interface {
	// ContainerExists reports whether the container exists.
	ContainerExists(ctx context.Context, container string) (bool, error)

	// Exists reports whether the object exists.
	// A missing container is reported as (false, nil).
	Exists(ctx context.Context, container, key string) (bool, error)

	// Download reads the whole object together with its content type.
	Download(ctx context.Context, container, key string) (*Object, error)

	// Delete removes an object. Deleting an absent object is not an error.
	Delete(ctx context.Context, container, key string) error

	// Upload writes an object, overwriting any existing one.
	// contentType may be empty.
	Upload(ctx context.Context, container, key string, r io.Reader, contentType string) error
}

// Object is a downloaded object.
type Object struct {
	Data        []byte
	ContentType string
}
