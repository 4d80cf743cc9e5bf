package service

import (
	"context"
	"time"

	"github.com/spec-kit/campus-alert-service/internal/domain"
	"github.com/spec-kit/campus-alert-service/internal/repository"
)

// FeedSummary backs the per-account dashboard header.
type FeedSummary struct {
	Total        int64
	Last24h      int64
	HighPriority int64
}

// FeedService serves the personal notification feed.
type FeedService struct {
	notifications repository.NotificationRepository
	now           func() time.Time
}

// NewFeedService builds the service.
func NewFeedService(notifications repository.NotificationRepository) *FeedService {
	return &FeedService{notifications: notifications, now: time.Now}
}

// List returns the account's notifications, newest first.
func (s *FeedService) List(ctx context.Context, accountID string, limit, offset int) ([]domain.Notification, error) {
	return s.notifications.ListByRecipient(ctx, accountID, limit, offset)
}

// Summary computes feed totals for one account.
func (s *FeedService) Summary(ctx context.Context, accountID string) (*FeedSummary, error) {
	total, err := s.notifications.Count(ctx, repository.NotificationFilter{RecipientID: &accountID})
	if err != nil {
		return nil, err
	}

	since := s.now().Add(-24 * time.Hour)
	last24h, err := s.notifications.Count(ctx, repository.NotificationFilter{
		RecipientID: &accountID,
		CreatedFrom: &since,
	})
	if err != nil {
		return nil, err
	}

	high := domain.PriorityHigh
	highCount, err := s.notifications.Count(ctx, repository.NotificationFilter{
		RecipientID: &accountID,
		Priority:    &high,
	})
	if err != nil {
		return nil, err
	}

	return &FeedSummary{Total: total, Last24h: last24h, HighPriority: highCount}, nil
}
