package notify

import (
	"sync"

	"github.com/workwealth/workwealth/internal/model"
)

// MemoryStore keeps notifications in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	items []model.Notification // most-recent-first
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// All returns a defensive copy, most-recent-first.
func (m *MemoryStore) All() ([]model.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Notification, len(m.items))
	copy(out, m.items)
	return out, nil
}

// Prepend inserts a notification at the head of the list.
func (m *MemoryStore) Prepend(n model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]model.Notification{n}, m.items...)
	return nil
}

// MarkRead flips one notification to read; unknown IDs are a no-op.
func (m *MemoryStore) MarkRead(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Read = true
			return nil
		}
	}
	return nil
}

// MarkAllRead flips every notification to read.
func (m *MemoryStore) MarkAllRead() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		m.items[i].Read = true
	}
	return nil
}

// Clear empties the list.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}
