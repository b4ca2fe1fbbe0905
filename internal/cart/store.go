package cart

import (
	"context"
	"sync"
)

// Store is the persistence port the cart service writes through. One key per
// cart session holds the whole serialized cart; there is no partial-update
// primitive, so every mutation is a full read-then-write.
//
// Two requests carrying the same session id can interleave and the last write
// wins, exactly like two browser tabs sharing one localStorage key. That race
// is accepted, not fixed here.
type Store interface {
	// Load returns the persisted cart. A missing or corrupt value yields an
	// empty cart, never an error.
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, cart Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps carts in process memory. It backs tests and the dev mode
// that runs without Redis; carts do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) (Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored, ok := m.carts[sessionID]
	if !ok {
		return Cart{}, nil
	}
	cloned := make(Cart, len(stored))
	copy(cloned, stored)
	return cloned, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, cart Cart) error {
	cloned := make(Cart, len(cart))
	copy(cloned, cart)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[sessionID] = cloned
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	return nil
}
