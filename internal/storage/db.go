package storage

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/workwealth/workwealth/internal/model"
)

// Database wraps the sqlite wallet database and exposes the ledger and
// notification store implementations over it.
type Database struct {
	db *gorm.DB
}

// Open connects to (or creates) the wallet database at dbPath and
// migrates the schema.
func Open(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening wallet database: %w", err)
	}
	if err := db.AutoMigrate(&TransactionRow{}, &WalletRow{}, &NotificationRow{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Database{db: db}, nil
}

// LedgerStore returns the durable ledger store.
func (d *Database) LedgerStore() *LedgerStore {
	return &LedgerStore{db: d.db}
}

// NotificationStore returns the durable notification store.
func (d *Database) NotificationStore() *NotificationStore {
	return &NotificationStore{db: d.db}
}

// LedgerStore persists the balance and transaction history in sqlite.
type LedgerStore struct {
	db *gorm.DB
}

// Balance returns the stored balance snapshot, zero if none exists yet.
func (s *LedgerStore) Balance() (decimal.Decimal, error) {
	var row WalletRow
	err := s.db.First(&row, 1).Error
	if err == gorm.ErrRecordNotFound {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("reading balance: %w", err)
	}
	balance, err := decimal.NewFromString(row.Balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing stored balance %q: %w", row.Balance, err)
	}
	return balance, nil
}

// Transactions returns the full history, most-recent-first.
func (s *LedgerStore) Transactions() ([]model.Transaction, error) {
	var rows []TransactionRow
	if err := s.db.Order("id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	out := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := fromTransactionRow(row)
		if err != nil {
			return nil, fmt.Errorf("decoding transaction %s: %w", row.TxID, err)
		}
		out = append(out, tx)
	}
	return out, nil
}

// Append saves the transaction and the new balance in one database
// transaction.
func (s *LedgerStore) Append(tx model.Transaction, newBalance decimal.Decimal) error {
	row := toTransactionRow(tx)
	return s.db.Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Create(&row).Error; err != nil {
			return fmt.Errorf("saving transaction: %w", err)
		}
		return saveBalance(dbtx, newBalance)
	})
}

// Reset drops all transactions and sets the balance.
func (s *LedgerStore) Reset(balance decimal.Decimal) error {
	return s.db.Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&TransactionRow{}).Error; err != nil {
			return fmt.Errorf("clearing transactions: %w", err)
		}
		return saveBalance(dbtx, balance)
	})
}

func saveBalance(dbtx *gorm.DB, balance decimal.Decimal) error {
	row := WalletRow{ID: 1, Balance: balance.String()}
	if err := dbtx.Save(&row).Error; err != nil {
		return fmt.Errorf("saving balance: %w", err)
	}
	return nil
}

// NotificationStore persists notifications in sqlite.
type NotificationStore struct {
	db *gorm.DB
}

// All returns all notifications, most-recent-first.
func (s *NotificationStore) All() ([]model.Notification, error) {
	var rows []NotificationRow
	if err := s.db.Order("id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading notifications: %w", err)
	}
	out := make([]model.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromNotificationRow(row))
	}
	return out, nil
}

// Prepend saves a new notification. Insertion order carries recency.
func (s *NotificationStore) Prepend(n model.Notification) error {
	row := toNotificationRow(n)
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("saving notification: %w", err)
	}
	return nil
}

// MarkRead flips one notification to read; unknown IDs are a no-op.
func (s *NotificationStore) MarkRead(id string) error {
	err := s.db.Model(&NotificationRow{}).
		Where("notification_id = ?", id).
		Update("read", true).Error
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}

// MarkAllRead flips every notification to read.
func (s *NotificationStore) MarkAllRead() error {
	err := s.db.Model(&NotificationRow{}).
		Where("read = ?", false).
		Update("read", true).Error
	if err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}

// Clear deletes every notification.
func (s *NotificationStore) Clear() error {
	err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&NotificationRow{}).Error
	if err != nil {
		return fmt.Errorf("clearing notifications: %w", err)
	}
	return nil
}
