package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/shopspring/decimal"

	"github.com/workwealth/workwealth/internal/model"
)

// TransactionRow is the stored form of a ledger transaction. Amounts are
// stored as exact decimal strings.
type TransactionRow struct {
	gorm.Model
	TxID        string `gorm:"uniqueIndex"`
	Amount      string
	Date        time.Time
	Type        string
	Description string
	Status      string
	Reference   string
	Recipient   string
	Sender      string
	Category    string
}

// WalletRow is the single-row balance snapshot.
type WalletRow struct {
	ID      uint `gorm:"primaryKey"`
	Balance string
}

// NotificationRow is the stored form of a notification.
type NotificationRow struct {
	gorm.Model
	NotificationID string `gorm:"uniqueIndex"`
	Title          string
	Message        string
	Type           string
	Read           bool
	Timestamp      time.Time
	ActionLabel    string
	ActionTarget   string
}

func toTransactionRow(tx model.Transaction) TransactionRow {
	return TransactionRow{
		TxID:        tx.ID,
		Amount:      tx.Amount.String(),
		Date:        tx.Date,
		Type:        string(tx.Type),
		Description: tx.Description,
		Status:      string(tx.Status),
		Reference:   tx.Reference,
		Recipient:   tx.Recipient,
		Sender:      tx.Sender,
		Category:    string(tx.Category),
	}
}

func fromTransactionRow(row TransactionRow) (model.Transaction, error) {
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return model.Transaction{}, err
	}
	return model.Transaction{
		ID:          row.TxID,
		Amount:      amount,
		Date:        row.Date,
		Type:        model.TxType(row.Type),
		Description: row.Description,
		Status:      model.TxStatus(row.Status),
		Reference:   row.Reference,
		Recipient:   row.Recipient,
		Sender:      row.Sender,
		Category:    model.Category(row.Category),
	}, nil
}

func toNotificationRow(n model.Notification) NotificationRow {
	return NotificationRow{
		NotificationID: n.ID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           string(n.Type),
		Read:           n.Read,
		Timestamp:      n.Timestamp,
		ActionLabel:    n.ActionLabel,
		ActionTarget:   n.ActionTarget,
	}
}

func fromNotificationRow(row NotificationRow) model.Notification {
	return model.Notification{
		ID:           row.NotificationID,
		Title:        row.Title,
		Message:      row.Message,
		Type:         model.NotificationType(row.Type),
		Read:         row.Read,
		Timestamp:    row.Timestamp,
		ActionLabel:  row.ActionLabel,
		ActionTarget: row.ActionTarget,
	}
}
