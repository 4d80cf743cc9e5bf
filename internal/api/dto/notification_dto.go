package dto

import (
	"time"

	"github.com/spec-kit/campus-alert-service/internal/domain"
)

// NotificationResponse is the wire shape for a feed entry.
type NotificationResponse struct {
	ID          string     `json:"id"`
	Message     string     `json:"message"`
	Priority    string     `json:"priority"`
	WindowStart *time.Time `json:"time_window_start,omitempty"`
	WindowEnd   *time.Time `json:"time_window_end,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FeedSummaryResponse heads the personal dashboard.
type FeedSummaryResponse struct {
	Total        int64 `json:"total"`
	Last24h      int64 `json:"last_24h"`
	HighPriority int64 `json:"high_priority"`
}

// NewNotificationResponse maps a domain notification onto the wire.
func NewNotificationResponse(notification domain.Notification) NotificationResponse {
	start, end := notification.TimeWindow.Bounds()
	return NotificationResponse{
		ID:          notification.ID,
		Message:     notification.Message,
		Priority:    notification.Priority.String(),
		WindowStart: start,
		WindowEnd:   end,
		CreatedAt:   notification.CreatedAt,
	}
}

// NewNotificationResponses maps a slice of notifications.
func NewNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, NewNotificationResponse(notification))
	}
	return responses
}
