package blobstore

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/hupe1980/storageclient/internal/fs"
)

// LocalStore provides the local filesystem primitives used for disk paths.
// Paths are used as given; there is no root directory.
type LocalStore struct {
	fsys       fs.FileSystem
	perm       os.FileMode
	createDirs bool
}

// NewLocalStore creates a new LocalStore.
// perm is applied to created files; createDirs controls whether missing
// parent directories are created on write.
func NewLocalStore(perm os.FileMode, createDirs bool) *LocalStore {
	return NewLocalStoreFS(nil, perm, createDirs)
}

// NewLocalStoreFS is like NewLocalStore but performs all I/O through fsys.
// A nil fsys selects the local file system.
func NewLocalStoreFS(fsys fs.FileSystem, perm os.FileMode, createDirs bool) *LocalStore {
	if fsys == nil {
		fsys = fs.Default
	}
	if perm == 0 {
		perm = 0o644
	}
	return &LocalStore{fsys: fsys, perm: perm, createDirs: createDirs}
}

// Exists reports whether a regular file exists at path.
func (s *LocalStore) Exists(path string) (bool, error) {
	info, err := s.fsys.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// ReadFile reads the whole file.
func (s *LocalStore) ReadFile(path string) ([]byte, error) {
	return s.fsys.ReadFile(path)
}

// Remove deletes the file at path.
func (s *LocalStore) Remove(path string) error {
	return s.fsys.Remove(path)
}

// WriteFile truncates or creates the file at path and copies r into it.
func (s *LocalStore) WriteFile(path string, r io.Reader) (err error) {
	if s.createDirs {
		if err := s.fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
	}

	f, err := s.fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(f, r)
	return err
}
