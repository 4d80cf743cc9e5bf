package dto

import (
	"time"

	"github.com/spec-kit/campus-alert-service/internal/domain"
)

// RegisterRequest payload for self-service registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordResetRequest starts a reset flow.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required"`
}

// PasswordResetConfirmRequest completes a reset flow.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// PasswordChangeRequest rotates the caller's password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// CreateAccountRequest is the administrator creation payload.
type CreateAccountRequest struct {
	Username      string     `json:"username" validate:"required,min=3,max=64"`
	Password      string     `json:"password" validate:"required,min=8"`
	Email         string     `json:"email" validate:"required"`
	PersonalEmail string     `json:"personal_email"`
	Phone         string     `json:"phone"`
	Priority      string     `json:"priority"`
	WindowStart   *time.Time `json:"time_window_start"`
	WindowEnd     *time.Time `json:"time_window_end"`
	IsAdmin       bool       `json:"is_admin"`
}

// ProfileUpdateRequest mutates contact fields; omitted fields keep
// their stored values.
type ProfileUpdateRequest struct {
	Email         *string    `json:"email"`
	PersonalEmail *string    `json:"personal_email"`
	Phone         *string    `json:"phone"`
	Priority      *string    `json:"priority"`
	WindowStart   *time.Time `json:"time_window_start"`
	WindowEnd     *time.Time `json:"time_window_end"`
}

// AccountResponse is the wire shape for accounts.
type AccountResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	PersonalEmail string     `json:"personal_email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Priority      string     `json:"priority"`
	WindowStart   *time.Time `json:"time_window_start,omitempty"`
	WindowEnd     *time.Time `json:"time_window_end,omitempty"`
	IsAdmin       bool       `json:"is_admin"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewAccountResponse maps the domain entity onto the wire shape.
func NewAccountResponse(account *domain.Account) AccountResponse {
	start, end := account.TimeWindow().Bounds()
	return AccountResponse{
		ID:            account.ID,
		Username:      account.Username,
		Email:         account.Email().String(),
		PersonalEmail: account.PersonalEmail().String(),
		Phone:         account.Phone().String(),
		Priority:      account.Priority().String(),
		WindowStart:   start,
		WindowEnd:     end,
		IsAdmin:       account.IsAdmin,
		IsActive:      account.IsActive,
		CreatedAt:     account.CreatedAt,
	}
}
