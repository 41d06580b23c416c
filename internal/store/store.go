// Package store provides durable storage for the AppData document.
//
// The whole aggregate is persisted as one JSON payload under a fixed
// key. There is no partial write and no concurrency token: the last
// save wins. Two sessions writing the same document can silently drop
// the earlier writer's changes; this is a known limitation.
package store

import "sync"

// Store persists the single serialized AppData document.
type Store interface {
	// Load returns the stored payload, or nil when no document exists.
	Load() ([]byte, error)

	// Save replaces the stored payload.
	Save(payload []byte) error

	// Close releases the underlying medium.
	Close() error
}

// MemoryStore keeps the document in memory. Used in tests and as the
// degradation target when no durable medium is available.
type MemoryStore struct {
	mu      sync.Mutex
	payload []byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored payload, or nil when nothing was saved.
func (s *MemoryStore) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payload == nil {
		return nil, nil
	}
	cp := make([]byte, len(s.payload))
	copy(cp, s.payload)
	return cp, nil
}

// Save replaces the stored payload.
func (s *MemoryStore) Save(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.payload = cp
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// NullStore is the medium-less store: reads see no document, writes are
// dropped. Used when the backend runs without a data directory.
type NullStore struct{}

// NewNull creates a NullStore.
func NewNull() *NullStore {
	return &NullStore{}
}

// Load always reports an absent document.
func (NullStore) Load() ([]byte, error) {
	return nil, nil
}

// Save drops the payload.
func (NullStore) Save([]byte) error {
	return nil
}

// Close is a no-op.
func (NullStore) Close() error {
	return nil
}
