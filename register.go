package storageclient

import (
	"context"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultClient *Client
)

// Register opens a Client from connectionString and installs it as the
// process-wide default returned by Default.
//
// Register fails with ErrAlreadyRegistered if a default client exists.
func Register(ctx context.Context, connectionString string, optFns ...Option) (*Client, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient != nil {
		return nil, ErrAlreadyRegistered
	}

	c, err := Open(ctx, connectionString, optFns...)
	if err != nil {
		return nil, err
	}
	defaultClient = c
	return c, nil
}

// Default returns the registered client, or nil if Register was not called.
func Default() *Client {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultClient
}
