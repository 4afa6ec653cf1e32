package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwealth/workwealth/internal/model"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "wallet.db"))
	require.NoError(t, err)
	return db
}

func sampleTx(id, amount string, category model.Category) model.Transaction {
	return model.Transaction{
		ID:          id,
		Amount:      decimal.RequireFromString(amount),
		Date:        time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC),
		Type:        model.TypeCredit,
		Description: "test transaction",
		Status:      model.StatusCompleted,
		Reference:   "DEP00000001",
		Category:    category,
	}
}

func TestLedgerStore_EmptyBalance(t *testing.T) {
	store := openTestDB(t).LedgerStore()

	balance, err := store.Balance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	txs, err := store.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestLedgerStore_AppendRoundTrip(t *testing.T) {
	store := openTestDB(t).LedgerStore()

	require.NoError(t, store.Append(sampleTx("tx-1", "1000", model.CategoryDeposit), decimal.RequireFromString("1000")))
	require.NoError(t, store.Append(sampleTx("tx-2", "250.50", model.CategoryTransfer), decimal.RequireFromString("749.50")))

	balance, err := store.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("749.50")))

	txs, err := store.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "tx-2", txs[0].ID, "most recent first")
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("250.50")), "amount survives round-trip exactly")
	assert.Equal(t, model.CategoryTransfer, txs[0].Category)
}

func TestLedgerStore_Reset(t *testing.T) {
	store := openTestDB(t).LedgerStore()
	require.NoError(t, store.Append(sampleTx("tx-1", "1000", model.CategoryDeposit), decimal.RequireFromString("1000")))

	require.NoError(t, store.Reset(decimal.RequireFromString("50000")))

	balance, err := store.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("50000")))

	txs, err := store.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestNotificationStore_RoundTrip(t *testing.T) {
	store := openTestDB(t).NotificationStore()

	first := model.Notification{ID: "n-1", Title: "First", Message: "hello", Type: model.NotificationSystem, Timestamp: time.Now()}
	second := model.Notification{ID: "n-2", Title: "Second", Message: "world", Type: model.NotificationLoan, Timestamp: time.Now()}
	require.NoError(t, store.Prepend(first))
	require.NoError(t, store.Prepend(second))

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "n-2", all[0].ID, "most recent first")
	assert.False(t, all[0].Read)
}

func TestNotificationStore_MarkRead(t *testing.T) {
	store := openTestDB(t).NotificationStore()
	require.NoError(t, store.Prepend(model.Notification{ID: "n-1", Title: "T", Timestamp: time.Now()}))

	require.NoError(t, store.MarkRead("n-1"))
	require.NoError(t, store.MarkRead("n-1"), "idempotent")
	require.NoError(t, store.MarkRead("missing"), "unknown id is a silent no-op")

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Read)
}

func TestNotificationStore_MarkAllReadAndClear(t *testing.T) {
	store := openTestDB(t).NotificationStore()
	for _, id := range []string{"n-1", "n-2", "n-3"} {
		require.NoError(t, store.Prepend(model.Notification{ID: id, Title: "T", Timestamp: time.Now()}))
	}

	require.NoError(t, store.MarkAllRead())
	all, err := store.All()
	require.NoError(t, err)
	for _, n := range all {
		assert.True(t, n.Read)
	}

	require.NoError(t, store.Clear())
	all, err = store.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
