package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/workwealth/workwealth/internal/model"
)

// MemoryStore keeps ledger state in process memory. Used by tests and the
// CLI's --memory mode; state lives only for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	balance decimal.Decimal
	history []model.Transaction // most-recent-first
}

// NewMemoryStore creates a MemoryStore with an opening balance.
func NewMemoryStore(balance decimal.Decimal) *MemoryStore {
	return &MemoryStore{balance: balance}
}

// Balance returns the current balance.
func (m *MemoryStore) Balance() (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balance, nil
}

// Transactions returns a defensive copy of the history, most-recent-first.
func (m *MemoryStore) Transactions() ([]model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Transaction, len(m.history))
	copy(out, m.history)
	return out, nil
}

// Append prepends the transaction and sets the new balance in one step.
func (m *MemoryStore) Append(tx model.Transaction, newBalance decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append([]model.Transaction{tx}, m.history...)
	m.balance = newBalance
	return nil
}

// Reset clears the history and sets the balance.
func (m *MemoryStore) Reset(balance decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = nil
	m.balance = balance
	return nil
}
