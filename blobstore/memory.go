package blobstore

import (
	"context"
	"io"
	"sync"
)

// MemoryStore is an in-memory Store implementation for testing.
// It keeps containers and objects in memory without any network dependency.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu         sync.RWMutex
	containers map[string]map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

// NewMemoryStore creates a new in-memory store with the given containers.
func NewMemoryStore(containers ...string) *MemoryStore {
	m := &MemoryStore{
		containers: make(map[string]map[string]memoryObject),
	}
	for _, c := range containers {
		m.containers[c] = make(map[string]memoryObject)
	}
	return m
}

// CreateContainer creates a container if it does not exist yet.
func (m *MemoryStore) CreateContainer(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.containers[name]; !ok {
		m.containers[name] = make(map[string]memoryObject)
	}
}

// ContainerExists reports whether the container exists.
func (m *MemoryStore) ContainerExists(_ context.Context, container string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.containers[container]
	return ok, nil
}

// Exists reports whether the object exists.
func (m *MemoryStore) Exists(_ context.Context, container, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	objects, ok := m.containers[container]
	if !ok {
		return false, nil
	}
	_, ok = objects[key]
	return ok, nil
}

// Download returns a copy of the object.
func (m *MemoryStore) Download(_ context.Context, container, key string) (*Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	objects, ok := m.containers[container]
	if !ok {
		return nil, ErrContainerNotFound
	}
	obj, ok := objects[key]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external mutation
	copied := make([]byte, len(obj.data))
	copy(copied, obj.data)

	return &Object{Data: copied, ContentType: obj.contentType}, nil
}

// Delete removes an object.
func (m *MemoryStore) Delete(_ context.Context, container, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	objects, ok := m.containers[container]
	if !ok {
		return ErrContainerNotFound
	}
	delete(objects, key)
	return nil
}

// Upload stores the reader's content under key.
func (m *MemoryStore) Upload(_ context.Context, container, key string, r io.Reader, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	objects, ok := m.containers[container]
	if !ok {
		return ErrContainerNotFound
	}
	objects[key] = memoryObject{data: data, contentType: contentType}
	return nil
}

// Keys returns all keys of a container. Order is unspecified.
func (m *MemoryStore) Keys(container string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for k := range m.containers[container] {
		keys = append(keys, k)
	}
	return keys
}
