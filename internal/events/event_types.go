package events

import (
	"time"

	"github.com/spec-kit/campus-alert-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBroadcastCompleted EventType = "broadcast_completed"
	EventAccountRegistered  EventType = "account_registered"
	EventAccountDeactivated EventType = "account_deactivated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BroadcastCompletedPayload describes a committed fan-out.
type BroadcastCompletedPayload struct {
	Category   *domain.EmergencyCategory `json:"category,omitempty"`
	Message    string                    `json:"message"`
	Priority   domain.Priority           `json:"priority"`
	Recipients int                       `json:"recipients"`
}

// AccountRegisteredPayload describes a new account.
type AccountRegisteredPayload struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
}

// AccountDeactivatedPayload describes a soft-disabled account.
type AccountDeactivatedPayload struct {
	AccountID string `json:"account_id"`
}
