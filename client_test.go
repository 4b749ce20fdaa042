package storageclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/storageclient/blobstore"
	"github.com/hupe1980/storageclient/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockStore is a testify mock implementing blobstore.Store.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) ContainerExists(ctx context.Context, container string) (bool, error) {
	args := m.Called(ctx, container)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Exists(ctx context.Context, container, key string) (bool, error) {
	args := m.Called(ctx, container, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Download(ctx context.Context, container, key string) (*blobstore.Object, error) {
	args := m.Called(ctx, container, key)
	if obj := args.Get(0); obj != nil {
		return obj.(*blobstore.Object), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, container, key string) error {
	args := m.Called(ctx, container, key)
	return args.Error(0)
}

func (m *mockStore) Upload(ctx context.Context, container, key string, r io.Reader, contentType string) error {
	args := m.Called(ctx, container, key, r, contentType)
	return args.Error(0)
}

func TestClient_DiskLifecycle(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	sc := New(nil, WithMetricsCollector(metrics))
	path := filepath.Join(t.TempDir(), "a.txt")

	var uploaded, fetched, deleted int

	ok, err := sc.Upload(ctx, Disk, path, strings.NewReader("hello"), func(ft FileType, p string) {
		uploaded++
		assert.Equal(t, Disk, ft)
		assert.Equal(t, path, p)
	})
	require.NoError(t, err)
	require.True(t, ok)

	exists, err := sc.Exists(ctx, Disk, path)
	require.NoError(t, err)
	require.True(t, exists)

	resp, err := sc.Fetch(ctx, Disk, path, func(r *StorageFileResponse) {
		fetched++
		assert.True(t, r.Status)
	})
	require.NoError(t, err)
	assert.True(t, resp.Status)
	assert.Equal(t, "a.txt", resp.FileName)
	assert.Equal(t, "text/plain", resp.ContentType)
	assert.Equal(t, []byte("hello"), resp.RawData)

	decoded, err := resp.Decode()
	require.NoError(t, err)
	assert.Equal(t, resp.RawData, decoded)

	del, err := sc.Delete(ctx, Disk, path, func(r *FileResponse) {
		deleted++
	})
	require.NoError(t, err)
	assert.True(t, del.Status)
	assert.Equal(t, MsgFileDeleted, del.Message)

	exists, err = sc.Exists(ctx, Disk, path)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Equal(t, 1, uploaded)
	assert.Equal(t, 1, fetched)
	assert.Equal(t, 1, deleted)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.ExistsCount)
	assert.Equal(t, int64(1), stats.FetchHits)
	assert.Equal(t, int64(5), stats.FetchBytes)
	assert.Equal(t, int64(1), stats.DeleteCount)
	assert.Equal(t, int64(1), stats.UploadCount)
	assert.Equal(t, int64(0), stats.UploadFailures)
	assert.Equal(t, int64(0), stats.BlobOperations)
}

func TestClient_DiskNotFound(t *testing.T) {
	ctx := context.Background()
	sc := New(nil)
	path := filepath.Join(t.TempDir(), "missing.pdf")

	called := false
	resp, err := sc.Fetch(ctx, Disk, path, func(*StorageFileResponse) { called = true })
	require.NoError(t, err)
	assert.False(t, resp.Status)
	assert.Equal(t, MsgFileNotFoundOnDisk, resp.Message)
	assert.Nil(t, resp.RawData)
	assert.False(t, called)

	// Deleting an absent file is a no-op success.
	del, err := sc.Delete(ctx, Disk, path, func(*FileResponse) { called = true })
	require.NoError(t, err)
	assert.True(t, del.Status)
	assert.Equal(t, MsgFileNotFoundOnDisk, del.Message)
	assert.False(t, called)
}

func TestClient_DiskUploadOverwrites(t *testing.T) {
	ctx := context.Background()
	sc := New(nil)
	path := filepath.Join(t.TempDir(), "nested", "image.PNG")

	data := bytes.Repeat([]byte{0xff, 0x00, 0x10}, 1024)
	ok, err := sc.Upload(ctx, Disk, path, bytes.NewReader(data), nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = sc.Upload(ctx, Disk, path, bytes.NewReader(data[:10]), nil)
	require.NoError(t, err)
	require.True(t, ok)

	resp, err := sc.Fetch(ctx, Disk, path, nil)
	require.NoError(t, err)
	assert.Equal(t, data[:10], resp.RawData)
	assert.Equal(t, "image/png", resp.ContentType)
}

func TestClient_DiskFileMode(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cases := []struct {
		name string
		opts []Option
		want os.FileMode
	}{
		{"default", nil, 0o644},
		{"owner only", []Option{WithFileMode(0o600)}, 0o600},
		{"read only", []Option{WithFileMode(0o400)}, 0o400},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := New(nil, tc.opts...)
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".txt")

			ok, err := sc.Upload(ctx, Disk, path, strings.NewReader("x"), nil)
			require.NoError(t, err)
			require.True(t, ok)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, info.Mode().Perm())
		})
	}
}

func TestClient_DiskUploadFailure(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	sc := New(nil, WithCreateDirs(false), WithMetricsCollector(metrics))

	called := false
	ok, err := sc.Upload(ctx, Disk, filepath.Join(t.TempDir(), "no", "such", "dir.txt"), strings.NewReader("x"), func(FileType, string) {
		called = true
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, called)
	assert.Equal(t, int64(1), metrics.GetStats().UploadFailures)
}

func TestClient_DiskDeleteFailure(t *testing.T) {
	ctx := context.Background()
	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("locked", fs.Fault{FailAfterBytes: -1, FailOnRemove: true, Err: errors.New("device busy")})
	sc := New(nil, withFileSystem(ffs))

	path := filepath.Join(t.TempDir(), "locked.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	deleted := false
	resp, err := sc.Delete(ctx, Disk, path, func(*FileResponse) { deleted = true })
	require.NoError(t, err)
	assert.False(t, resp.Status)
	assert.Contains(t, resp.Message, "device busy")
	assert.False(t, deleted)

	ok, err := sc.Exists(ctx, Disk, path)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_DiskStatFailure(t *testing.T) {
	ctx := context.Background()
	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("unreadable", fs.Fault{FailAfterBytes: -1, FailOnStat: true})
	sc := New(nil, withFileSystem(ffs))

	path := filepath.Join(t.TempDir(), "unreadable.txt")

	_, err := sc.Exists(ctx, Disk, path)
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	_, err = sc.Fetch(ctx, Disk, path, nil)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestClient_InvalidPath(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	sc := New(store)

	for _, ft := range []FileType{Disk, Blob} {
		for _, path := range []string{"", "   ", "\t\n"} {
			_, err := sc.Exists(ctx, ft, path)
			assert.ErrorIs(t, err, ErrInvalidPath)

			_, err = sc.Fetch(ctx, ft, path, nil)
			assert.ErrorIs(t, err, ErrInvalidPath)

			_, err = sc.Delete(ctx, ft, path, nil)
			assert.ErrorIs(t, err, ErrInvalidPath)

			_, err = sc.Upload(ctx, ft, path, strings.NewReader("x"), nil)
			assert.ErrorIs(t, err, ErrInvalidPath)
		}
	}

	// Blob paths need a key segment.
	_, err := sc.Exists(ctx, Blob, "container-only")
	assert.ErrorIs(t, err, ErrInvalidPath)

	// No backend call was made.
	store.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "ContainerExists", mock.Anything, mock.Anything)
}

func TestClient_RemoteNotConfigured(t *testing.T) {
	ctx := context.Background()
	sc := New(nil)
	assert.False(t, sc.HasRemote())

	_, err := sc.Exists(ctx, Blob, "docs/a.txt")
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)

	_, err = sc.Fetch(ctx, Blob, "docs/a.txt", nil)
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)

	_, err = sc.Upload(ctx, Blob, "docs/a.txt", strings.NewReader("x"), nil)
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
}

func TestClient_NilReader(t *testing.T) {
	sc := New(nil)
	_, err := sc.Upload(context.Background(), Disk, filepath.Join(t.TempDir(), "a.txt"), nil, nil)
	assert.ErrorIs(t, err, ErrNilReader)
}

func TestClient_UnknownFileType(t *testing.T) {
	sc := New(nil)
	_, err := sc.Exists(context.Background(), FileType(7), "a.txt")
	assert.Error(t, err)
}

func TestClient_RemoteLifecycle(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore("realcontainer")
	metrics := &BasicMetricsCollector{}
	sc := New(store, WithMetricsCollector(metrics))
	require.True(t, sc.HasRemote())

	path := "realcontainer/reports/q1.pdf"
	data := []byte("%PDF-1.7 fake")

	ok, err := sc.Upload(ctx, Blob, path, bytes.NewReader(data), nil)
	require.NoError(t, err)
	require.True(t, ok)

	exists, err := sc.Exists(ctx, Blob, path)
	require.NoError(t, err)
	require.True(t, exists)

	var got *StorageFileResponse
	resp, err := sc.Fetch(ctx, Blob, path, func(r *StorageFileResponse) { got = r })
	require.NoError(t, err)
	assert.True(t, resp.Status)
	assert.Same(t, resp, got)
	assert.Equal(t, "q1.pdf", resp.FileName)
	assert.Equal(t, "application/pdf", resp.ContentType)
	assert.Equal(t, data, resp.RawData)

	decoded, err := resp.Decode()
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	del, err := sc.Delete(ctx, Blob, path, nil)
	require.NoError(t, err)
	assert.True(t, del.Status)

	exists, err = sc.Exists(ctx, Blob, path)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Equal(t, int64(5), metrics.GetStats().BlobOperations)
}

func TestClient_RemoteMissingContainer(t *testing.T) {
	ctx := context.Background()
	sc := New(blobstore.NewMemoryStore("realcontainer"))

	exists, err := sc.Exists(ctx, Blob, "nocontainer/x.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	resp, err := sc.Fetch(ctx, Blob, "nocontainer/x.txt", nil)
	require.NoError(t, err)
	assert.False(t, resp.Status)
	assert.Equal(t, MsgContainerNotFound, resp.Message)

	del, err := sc.Delete(ctx, Blob, "nocontainer/x.txt", nil)
	require.NoError(t, err)
	assert.False(t, del.Status)
	assert.Contains(t, del.Message, "not found")

	ok, err := sc.Upload(ctx, Blob, "nocontainer/x.txt", strings.NewReader("x"), nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_RemoteMissingObject(t *testing.T) {
	ctx := context.Background()
	sc := New(blobstore.NewMemoryStore("realcontainer"))

	resp, err := sc.Fetch(ctx, Blob, "realcontainer/missing.txt", nil)
	require.NoError(t, err)
	assert.False(t, resp.Status)
	assert.Equal(t, MsgFileNotFound, resp.Message)

	called := false
	del, err := sc.Delete(ctx, Blob, "realcontainer/missing.txt", func(*FileResponse) { called = true })
	require.NoError(t, err)
	assert.False(t, del.Status)
	assert.Contains(t, del.Message, "not found")
	assert.False(t, called)
}

func TestClient_RemoteMissingContainerMasksObjectError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset by peer")

	store := new(mockStore)
	store.On("ContainerExists", mock.Anything, "gone").Return(false, nil)
	store.On("Exists", mock.Anything, "gone", "a.txt").Return(false, boom)

	sc := New(store)

	resp, err := sc.Fetch(ctx, Blob, "gone/a.txt", nil)
	require.NoError(t, err)
	assert.False(t, resp.Status)
	assert.Equal(t, MsgContainerNotFound, resp.Message)

	del, err := sc.Delete(ctx, Blob, "gone/a.txt", nil)
	require.NoError(t, err)
	assert.False(t, del.Status)
	assert.Equal(t, MsgContainerNotFound, del.Message)

	store.AssertNotCalled(t, "Download", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestClient_RemoteContainerErrorWins(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("dns lookup failed")

	store := new(mockStore)
	store.On("ContainerExists", mock.Anything, "docs").Return(false, boom)
	store.On("Exists", mock.Anything, "docs", "a.txt").Return(false, nil)

	sc := New(store)

	_, err := sc.Fetch(ctx, Blob, "docs/a.txt", nil)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.ErrorIs(t, err, boom)
}

func TestClient_RemoteContentTypeFallback(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore("c")
	require.NoError(t, store.Upload(ctx, "c", "img.jpeg", strings.NewReader("x"), ""))
	require.NoError(t, store.Upload(ctx, "c", "data.bin", strings.NewReader("x"), "application/x-custom"))
	sc := New(store)

	resp, err := sc.Fetch(ctx, Blob, "c/img.jpeg", nil)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", resp.ContentType)

	resp, err = sc.Fetch(ctx, Blob, "c/data.bin", nil)
	require.NoError(t, err)
	assert.Equal(t, "application/x-custom", resp.ContentType)
}

func TestClient_RemoteBackendErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset by peer")

	store := new(mockStore)
	store.On("Exists", mock.Anything, "docs", "a.txt").Return(false, boom)
	store.On("ContainerExists", mock.Anything, "docs").Return(true, nil)
	store.On("Upload", mock.Anything, "docs", "a.txt", mock.Anything, "text/plain").Return(boom)

	metrics := &BasicMetricsCollector{}
	sc := New(store, WithMetricsCollector(metrics))

	exists, err := sc.Exists(ctx, Blob, "docs/a.txt")
	assert.False(t, exists)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.ErrorIs(t, err, boom)

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "exists", be.Op)
	assert.Equal(t, Blob, be.FileType)
	assert.Equal(t, "docs/a.txt", be.Path)

	_, err = sc.Fetch(ctx, Blob, "docs/a.txt", nil)
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	_, err = sc.Delete(ctx, Blob, "docs/a.txt", nil)
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	ok, err := sc.Upload(ctx, Blob, "docs/a.txt", strings.NewReader("x"), nil)
	assert.NoError(t, err)
	assert.False(t, ok)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.ExistsErrors)
	assert.Equal(t, int64(1), stats.FetchErrors)
	assert.Equal(t, int64(1), stats.DeleteErrors)
	assert.Equal(t, int64(1), stats.UploadFailures)
}

func TestClient_RemoteDeleteError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("forbidden")

	store := new(mockStore)
	store.On("ContainerExists", mock.Anything, "docs").Return(true, nil)
	store.On("Exists", mock.Anything, "docs", "a.txt").Return(true, nil)
	store.On("Delete", mock.Anything, "docs", "a.txt").Return(boom).Once()

	sc := New(store)
	_, err := sc.Delete(ctx, Blob, "docs/a.txt", nil)
	assert.ErrorIs(t, err, boom)
	store.AssertExpectations(t)
}

func TestClient_ExistsAgreesWithFetch(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore("c")
	sc := New(store)
	dir := t.TempDir()

	cases := []struct {
		ft   FileType
		path string
	}{
		{Disk, filepath.Join(dir, "present.txt")},
		{Disk, filepath.Join(dir, "absent.txt")},
		{Blob, "c/present.txt"},
		{Blob, "c/absent.txt"},
		{Blob, "other/absent.txt"},
	}

	_, err := sc.Upload(ctx, Disk, cases[0].path, strings.NewReader("x"), nil)
	require.NoError(t, err)
	_, err = sc.Upload(ctx, Blob, cases[2].path, strings.NewReader("x"), nil)
	require.NoError(t, err)

	for _, tc := range cases {
		exists, err := sc.Exists(ctx, tc.ft, tc.path)
		require.NoError(t, err)

		resp, err := sc.Fetch(ctx, tc.ft, tc.path, nil)
		require.NoError(t, err)
		assert.Equal(t, exists, resp.Status, "%s %s", tc.ft, tc.path)
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/msword", ContentTypeFor("a.docx"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("a"))
}
