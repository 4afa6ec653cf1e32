package model

import "time"

// NotificationType classifies a notification for display grouping.
type NotificationType string

const (
	NotificationLoan        NotificationType = "loan"
	NotificationSavings     NotificationType = "savings"
	NotificationTransaction NotificationType = "transaction"
	NotificationSystem      NotificationType = "system"
)

// Notification is a user-facing informational record with read/unread state.
// Read transitions false -> true only; there is no un-read operation.
type Notification struct {
	ID           string
	Title        string
	Message      string
	Type         NotificationType
	Read         bool
	Timestamp    time.Time
	ActionLabel  string // optional, e.g. "View loan"
	ActionTarget string // optional navigational target, e.g. "loan"
}
