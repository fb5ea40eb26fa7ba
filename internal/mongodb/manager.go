package mongodb

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ErrNotConnected indicates a store access before connect or after close
var ErrNotConnected = errors.New("not connected to MongoDB")

// Manager owns the shared client handle for the lifetime of the process.
// It is constructed once after a successful Connect and handed to the
// dispatcher; Close moves it permanently to the closed state.
type Manager struct {
	mu     sync.RWMutex
	client *mongo.Client
	store  Store
}

// NewManager wraps a connected client
func NewManager(client *mongo.Client) *Manager {
	return &Manager{
		client: client,
		store:  &mongoStore{client: client},
	}
}

// NewManagerWithStore wraps an arbitrary Store implementation. Used by tests
// and by callers that front something other than a live deployment.
func NewManagerWithStore(store Store) *Manager {
	return &Manager{store: store}
}

// Store returns the active store, or ErrNotConnected once closed
func (m *Manager) Store() (Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.store == nil {
		return nil, ErrNotConnected
	}
	return m.store, nil
}

// Close tears down the client. In-flight calls are not awaited; the driver's
// own pooling handles stragglers. Safe to call more than once.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client = nil
	m.store = nil
	m.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
