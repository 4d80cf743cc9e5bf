package dto

// EvacuationRequest optionally overrides the broadcast priority.
// "level" matches the historical trigger payload field name.
type EvacuationRequest struct {
	Level string `json:"level"`
}

// AnnouncementRequest is the administrator free-text broadcast payload.
type AnnouncementRequest struct {
	Message string `json:"message" validate:"required"`
	Level   string `json:"level"`
}

// DirectNotificationRequest creates a single notification.
type DirectNotificationRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Message     string `json:"message" validate:"required"`
	Level       string `json:"level"`
}

// BroadcastResponse reports a committed fan-out.
type BroadcastResponse struct {
	Status     string `json:"status"`
	Category   string `json:"category,omitempty"`
	Message    string `json:"message"`
	Priority   string `json:"priority"`
	Recipients int    `json:"recipients"`
}
