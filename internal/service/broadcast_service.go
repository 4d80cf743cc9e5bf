package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/campus-alert-service/internal/domain"
	"github.com/spec-kit/campus-alert-service/internal/events"
	"github.com/spec-kit/campus-alert-service/internal/repository"
	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

// CooldownGuard rate-limits repeated triggers of the same broadcast.
type CooldownGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// BroadcastResult reports a committed fan-out. There is no partial
// success: a broadcast either reaches every recipient or none.
type BroadcastResult struct {
	Category   *domain.EmergencyCategory
	Message    string
	Priority   domain.Priority
	Recipients int
}

// BroadcastService writes notifications in bulk for emergency
// evacuations and administrator announcements.
type BroadcastService struct {
	accounts      repository.AccountRepository
	notifications repository.NotificationRepository
	guard         CooldownGuard
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	cooldown      time.Duration
}

// BroadcastDependencies encapsulates requirements for the service.
type BroadcastDependencies struct {
	AccountRepo      repository.AccountRepository
	NotificationRepo repository.NotificationRepository
	Guard            CooldownGuard
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
	Cooldown         time.Duration
}

// NewBroadcastService builds the service.
func NewBroadcastService(deps BroadcastDependencies) *BroadcastService {
	return &BroadcastService{
		accounts:      deps.AccountRepo,
		notifications: deps.NotificationRepo,
		guard:         deps.Guard,
		dispatcher:    deps.Dispatcher,
		logger:        deps.Logger,
		cooldown:      deps.Cooldown,
	}
}

// Evacuate fans out the category's fixed instruction to every active
// non-administrator account. An explicit non-empty priority overrides
// the emergency default; either way a priority equal to the system
// default still inherits the recipient's own at build time.
func (s *BroadcastService) Evacuate(ctx context.Context, category domain.EmergencyCategory, requestedPriority string) (*BroadcastResult, error) {
	priority, err := resolveRequestedPriority(requestedPriority, domain.EvacuationPriority)
	if err != nil {
		return nil, err
	}

	if err := s.checkCooldown(ctx, "evacuation:"+category.String()); err != nil {
		return nil, err
	}

	result, err := s.fanOut(ctx, category.Message(), priority, true)
	if err != nil {
		return nil, err
	}
	cat := category
	result.Category = &cat

	s.logger.Info("evacuation broadcast committed",
		zap.String("category", category.String()),
		zap.String("priority", priority.String()),
		zap.Int("recipients", result.Recipients),
	)
	s.publishCompleted(ctx, result)
	return result, nil
}

// Announce fans out an operator-supplied message to every active
// account, administrators included.
func (s *BroadcastService) Announce(ctx context.Context, message, requestedPriority string) (*BroadcastResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.NewMissingRequiredField("message")
	}

	priority, err := resolveRequestedPriority(requestedPriority, domain.AnnouncementPriority)
	if err != nil {
		return nil, err
	}

	result, err := s.fanOut(ctx, message, priority, false)
	if err != nil {
		return nil, err
	}

	s.logger.Info("announcement broadcast committed",
		zap.String("priority", priority.String()),
		zap.Int("recipients", result.Recipients),
	)
	s.publishCompleted(ctx, result)
	return result, nil
}

// SendDirect creates a single notification for one recipient, the
// administrative non-bulk path. Recipient defaulting rules apply.
func (s *BroadcastService) SendDirect(ctx context.Context, recipientID, message, requestedPriority string) (*domain.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.NewMissingRequiredField("message")
	}

	priority := domain.PriorityUnset
	if strings.TrimSpace(requestedPriority) != "" {
		parsed, err := domain.ParsePriority(requestedPriority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}

	recipient, err := s.accounts.GetByID(ctx, recipientID)
	if err != nil {
		return nil, apperrors.NewNotFound("account", map[string]any{"id": recipientID})
	}

	notification := domain.BuildNotification(recipient, message, priority)
	if err := s.notifications.Create(ctx, &notification); err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	return &notification, nil
}

// fanOut builds one notification per target and submits them as a
// single all-or-nothing batch.
func (s *BroadcastService) fanOut(ctx context.Context, message string, priority domain.Priority, excludeAdmins bool) (*BroadcastResult, error) {
	recipients, err := s.accounts.ListActive(ctx, excludeAdmins)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}

	notifications := make([]domain.Notification, 0, len(recipients))
	for i := range recipients {
		notifications = append(notifications, domain.BuildNotification(&recipients[i], message, priority))
	}

	count, err := s.notifications.CreateBatch(ctx, notifications)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}

	return &BroadcastResult{
		Message:    message,
		Priority:   priority,
		Recipients: count,
	}, nil
}

// checkCooldown refuses a broadcast repeated within the cooldown
// window. Guard failures are logged and never block an emergency.
func (s *BroadcastService) checkCooldown(ctx context.Context, key string) error {
	if s.guard == nil || s.cooldown <= 0 {
		return nil
	}
	acquired, err := s.guard.Acquire(ctx, key, s.cooldown)
	if err != nil {
		s.logger.Warn("broadcast cooldown guard unavailable", zap.Error(err))
		return nil
	}
	if !acquired {
		return apperrors.NewConflict("broadcast recently triggered, retry shortly", map[string]any{"key": key})
	}
	return nil
}

func (s *BroadcastService) publishCompleted(ctx context.Context, result *BroadcastResult) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBroadcastCompleted,
		Timestamp: time.Now(),
		Payload: events.BroadcastCompletedPayload{
			Category:   result.Category,
			Message:    result.Message,
			Priority:   result.Priority,
			Recipients: result.Recipients,
		},
	})
}

// resolveRequestedPriority validates an explicit priority or falls back
// to the operation's own default when none was supplied.
func resolveRequestedPriority(requested string, fallback domain.Priority) (domain.Priority, error) {
	if strings.TrimSpace(requested) == "" {
		return fallback, nil
	}
	return domain.ParsePriority(requested)
}
