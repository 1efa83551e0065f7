package domain

import (
	"errors"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationPriority orders notifications for the recipient.
type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// IsValid checks if the priority is a known notification priority.
func (p NotificationPriority) IsValid() bool {
	switch p {
	case NotificationPriorityLow, NotificationPriorityNormal, NotificationPriorityHigh:
		return true
	}
	return false
}

// Notification is a write-once message to a worker, produced from committed
// outbox events. Delivery is best-effort: DeliveredAt stays nil until a sink
// accepts the message, and delivery failures never affect the originating
// transaction.
type Notification struct {
	ID          string
	RecipientID string
	Title       string
	Message     string
	Priority    NotificationPriority
	PayrollID   *string
	DeliveredAt *time.Time
	CreatedAt   time.Time
}
