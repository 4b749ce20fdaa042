package storageclient

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is returned when a path is empty or whitespace, or a
	// remote path does not name both a container and an object key.
	ErrInvalidPath = errors.New("storage file path is empty or invalid")

	// ErrRemoteNotConfigured is returned when a remote operation is invoked on
	// a client constructed without a remote store.
	ErrRemoteNotConfigured = errors.New("remote store is not configured")

	// ErrInvalidConnectionString is returned when a connection string cannot be
	// turned into a remote store.
	ErrInvalidConnectionString = errors.New("invalid connection string")

	// ErrBackendUnavailable classifies failures of the underlying disk or
	// remote store that are not plain not-found conditions.
	ErrBackendUnavailable = errors.New("storage backend unavailable")

	// ErrAlreadyRegistered is returned by Register when a default client exists.
	ErrAlreadyRegistered = errors.New("default storage client already registered")

	// ErrNilReader is returned by Upload when no content is given.
	ErrNilReader = errors.New("upload content is nil")
)

// BackendError wraps a failure of the disk or remote store.
//
// It satisfies errors.Is(err, ErrBackendUnavailable); the underlying
// error can be accessed via errors.Unwrap.
type BackendError struct {
	Op       string
	FileType FileType
	Path     string
	cause    error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", e.Op, e.FileType, e.Path, e.cause)
}

func (e *BackendError) Unwrap() error { return e.cause }

// Is reports ErrBackendUnavailable as a match.
func (e *BackendError) Is(target error) bool { return target == ErrBackendUnavailable }

func backendError(op string, ft FileType, path string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, FileType: ft, Path: path, cause: err}
}

func invalidPath(path string) error {
	return fmt.Errorf("%w: %q", ErrInvalidPath, path)
}
