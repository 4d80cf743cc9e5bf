package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/campus-alert-service/internal/auth"
	"github.com/spec-kit/campus-alert-service/internal/domain"
	"github.com/spec-kit/campus-alert-service/internal/events"
	"github.com/spec-kit/campus-alert-service/internal/repository"
	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

// AccountInput carries administrator-supplied account fields.
type AccountInput struct {
	Username      string
	Password      string
	Email         string
	PersonalEmail string
	Phone         string
	Priority      string
	WindowStart   *time.Time
	WindowEnd     *time.Time
	IsAdmin       bool
}

// ProfileUpdate carries contact-field mutations. Nil means unchanged.
type ProfileUpdate struct {
	Email         *string
	PersonalEmail *string
	Phone         *string
	Priority      *string
	WindowStart   *time.Time
	WindowEnd     *time.Time
}

// AccountService manages administrator account operations and
// owner-side profile updates.
type AccountService struct {
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(accounts repository.AccountRepository, dispatcher events.Dispatcher, logger *zap.Logger, bcryptCost int) *AccountService {
	return &AccountService{accounts: accounts, dispatcher: dispatcher, logger: logger, bcryptCost: bcryptCost}
}

// Create registers an account on behalf of an administrator. Every
// supplied contact field runs through its validator; a rejection aborts
// creation with no stored row.
func (s *AccountService) Create(ctx context.Context, input AccountInput) (*domain.Account, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, apperrors.NewMissingRequiredField("username")
	}
	if input.Password == "" {
		return nil, apperrors.NewMissingRequiredField("password")
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      input.IsAdmin,
		IsActive:     true,
	}
	if err := account.SetEmail(input.Email); err != nil {
		return nil, err
	}
	if input.PersonalEmail != "" {
		if err := account.SetPersonalEmail(input.PersonalEmail); err != nil {
			return nil, err
		}
	}
	if input.Phone != "" {
		if err := account.SetPhone(input.Phone); err != nil {
			return nil, err
		}
	}
	if input.Priority != "" {
		if err := account.SetPriority(input.Priority); err != nil {
			return nil, err
		}
	}
	if input.WindowStart != nil || input.WindowEnd != nil {
		if input.WindowStart == nil || input.WindowEnd == nil {
			return nil, apperrors.NewInvalidShape("time_window", "both start and end must be provided")
		}
		if err := account.SetTimeWindow(*input.WindowStart, *input.WindowEnd); err != nil {
			return nil, err
		}
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventAccountRegistered, events.AccountRegisteredPayload{
		AccountID: account.ID,
		Username:  account.Username,
	})
	return account, nil
}

// UpdateProfile applies contact-field changes through the validating
// setters. The first rejected field aborts the update; nothing is
// persisted and the stored values keep their previous state.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID string, update ProfileUpdate) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperrors.NewNotFound("account", map[string]any{"id": accountID})
	}

	if update.Email != nil {
		if err := account.SetEmail(*update.Email); err != nil {
			return nil, err
		}
	}
	if update.PersonalEmail != nil {
		if err := account.SetPersonalEmail(*update.PersonalEmail); err != nil {
			return nil, err
		}
	}
	if update.Phone != nil {
		if err := account.SetPhone(*update.Phone); err != nil {
			return nil, err
		}
	}
	if update.Priority != nil {
		if err := account.SetPriority(*update.Priority); err != nil {
			return nil, err
		}
	}
	if update.WindowStart != nil || update.WindowEnd != nil {
		if update.WindowStart == nil || update.WindowEnd == nil {
			return nil, apperrors.NewInvalidShape("time_window", "both start and end must be provided")
		}
		if err := account.SetTimeWindow(*update.WindowStart, *update.WindowEnd); err != nil {
			return nil, err
		}
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Deactivate soft-disables an account. Accounts are never hard-deleted
// through the API; their notifications must survive.
func (s *AccountService) Deactivate(ctx context.Context, accountID string) error {
	if err := s.accounts.Deactivate(ctx, accountID); err != nil {
		return apperrors.NewNotFound("account", map[string]any{"id": accountID})
	}
	s.publish(ctx, events.EventAccountDeactivated, events.AccountDeactivatedPayload{AccountID: accountID})
	return nil
}

// Purge removes the account row. Its notifications keep their history
// with a nulled recipient.
func (s *AccountService) Purge(ctx context.Context, accountID string) error {
	if err := s.accounts.Delete(ctx, accountID); err != nil {
		return apperrors.NewNotFound("account", map[string]any{"id": accountID})
	}
	s.publish(ctx, events.EventAccountDeactivated, events.AccountDeactivatedPayload{AccountID: accountID})
	return nil
}

// Get loads one account.
func (s *AccountService) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperrors.NewNotFound("account", map[string]any{"id": accountID})
	}
	return account, nil
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
