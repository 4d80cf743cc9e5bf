package domain

import "time"

// Notification is a single message instance addressed to one account.
// RecipientID is nullable: deleting an account orphans its
// notifications instead of cascading. CreatedAt is assigned exactly
// once, at first persist.
type Notification struct {
	ID          string
	Message     string
	RecipientID *string
	Priority    Priority
	TimeWindow  *TimeWindow
	CreatedAt   time.Time
}

// BuildNotification assembles a notification for a recipient, applying
// the write-time defaulting rules: a requested priority that is unset
// or equal to the system default inherits the recipient's current
// priority, and the time window is always snapshot from the recipient.
func BuildNotification(recipient *Account, message string, requested Priority) Notification {
	priority := requested
	if priority == PriorityUnset || priority == DefaultPriority {
		priority = recipient.Priority()
	}

	recipientID := recipient.ID
	return Notification{
		Message:     message,
		RecipientID: &recipientID,
		Priority:    priority,
		TimeWindow:  recipient.TimeWindow(),
	}
}
