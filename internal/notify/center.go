package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workwealth/workwealth/internal/model"
	"github.com/workwealth/workwealth/internal/money"
)

// Store persists notifications.
type Store interface {
	// All returns all notifications, most-recent-first.
	All() ([]model.Notification, error)
	Prepend(n model.Notification) error
	// MarkRead flips one notification to read. Unknown IDs are a no-op.
	MarkRead(id string) error
	MarkAllRead() error
	Clear() error
}

// Center is the data layer for user notifications.
type Center struct {
	store Store
	fmtr  *money.Formatter

	now   func() time.Time
	newID func() string
}

// Option configures a Center.
type Option func(*Center)

// WithFormatter sets the formatter used for amounts in generated
// transaction notifications.
func WithFormatter(f *money.Formatter) Option {
	return func(c *Center) { c.fmtr = f }
}

// WithClock overrides the notification timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// NewCenter creates a notification Center over a Store.
func NewCenter(store Store, opts ...Option) *Center {
	c := &Center{
		store: store,
		fmtr:  money.NewFormatter("en", ""),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// All returns every notification, most-recent-first.
func (c *Center) All() ([]model.Notification, error) {
	return c.store.All()
}

// UnreadCount returns the number of unread notifications.
func (c *Center) UnreadCount() (int, error) {
	all, err := c.store.All()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range all {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead marks one notification as read. Idempotent; an unknown id is a
// silent no-op.
func (c *Center) MarkRead(id string) error {
	return c.store.MarkRead(id)
}

// MarkAllRead marks every notification as read.
func (c *Center) MarkAllRead() error {
	return c.store.MarkAllRead()
}

// ClearAll empties the notification list. Irreversible.
func (c *Center) ClearAll() error {
	return c.store.Clear()
}

// Add creates and prepends a new unread notification.
func (c *Center) Add(title, message string, nType model.NotificationType) (model.Notification, error) {
	return c.AddWithAction(title, message, nType, "", "")
}

// AddWithAction creates and prepends a new unread notification carrying a
// navigational action.
func (c *Center) AddWithAction(title, message string, nType model.NotificationType, actionLabel, actionTarget string) (model.Notification, error) {
	n := model.Notification{
		ID:           c.newID(),
		Title:        title,
		Message:      message,
		Type:         nType,
		Read:         false,
		Timestamp:    c.now(),
		ActionLabel:  actionLabel,
		ActionTarget: actionTarget,
	}
	if err := c.store.Prepend(n); err != nil {
		return model.Notification{}, fmt.Errorf("adding notification: %w", err)
	}
	return n, nil
}

// TransactionPosted records a transaction notification. Satisfies
// ledger.Notifier.
func (c *Center) TransactionPosted(tx model.Transaction) {
	verb := "received"
	if tx.Type == model.TypeDebit {
		verb = "sent"
	}
	title := "Transaction completed"
	msg := fmt.Sprintf("You %s %s: %s (ref %s)", verb, c.fmtr.Format(tx.Amount), tx.Description, tx.Reference)
	// Notification failure must not fail the ledger mutation.
	_, _ = c.AddWithAction(title, msg, model.NotificationTransaction, "View transactions", "transactions")
}

// Seed installs the starter notifications shown to a fresh wallet.
func (c *Center) Seed(ownerName string) error {
	seeds := []struct {
		title, message string
		nType          model.NotificationType
		actionLabel    string
		actionTarget   string
	}{
		{
			title:   "Welcome to WorkWealth",
			message: fmt.Sprintf("Hello %s, your wallet is ready. Deposit funds to get started.", ownerName),
			nType:   model.NotificationSystem,
		},
		{
			title:        "Start saving today",
			message:      "Put a little aside each week and watch it grow.",
			nType:        model.NotificationSavings,
			actionLabel:  "Open savings",
			actionTarget: "savings",
		},
		{
			title:        "Loans are available",
			message:      "Complete KYC verification to unlock loan applications.",
			nType:        model.NotificationLoan,
			actionLabel:  "Apply",
			actionTarget: "loan",
		},
	}
	for _, s := range seeds {
		if _, err := c.AddWithAction(s.title, s.message, s.nType, s.actionLabel, s.actionTarget); err != nil {
			return err
		}
	}
	return nil
}
