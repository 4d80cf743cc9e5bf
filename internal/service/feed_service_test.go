package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/campus-alert-service/internal/domain"
	"github.com/spec-kit/campus-alert-service/internal/mocks"
)

func TestFeedSummaryCountsPerAccount(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	notifications := mocks.NewMockNotificationRepository()
	store := func(recipient string, age time.Duration, priority domain.Priority) {
		id := recipient
		notifications.Stored = append(notifications.Stored, domain.Notification{
			RecipientID: &id,
			Message:     "note",
			Priority:    priority,
			CreatedAt:   now.Add(-age),
		})
	}
	store("acct-1", 2*time.Hour, domain.PriorityHigh)
	store("acct-1", 48*time.Hour, domain.PriorityLow)
	store("acct-1", 72*time.Hour, domain.PriorityHigh)
	store("acct-2", 1*time.Hour, domain.PriorityHigh)

	service := NewFeedService(notifications)
	service.now = func() time.Time { return now }

	summary, err := service.Summary(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Total != 3 {
		t.Errorf("total = %d, want 3", summary.Total)
	}
	if summary.Last24h != 1 {
		t.Errorf("last 24h = %d, want 1", summary.Last24h)
	}
	if summary.HighPriority != 2 {
		t.Errorf("high priority = %d, want 2", summary.HighPriority)
	}
}

func TestFeedListScopedToRecipient(t *testing.T) {
	notifications := mocks.NewMockNotificationRepository()
	mine := "acct-1"
	other := "acct-2"
	notifications.Stored = []domain.Notification{
		{RecipientID: &mine, Message: "mine"},
		{RecipientID: &other, Message: "theirs"},
		{RecipientID: nil, Message: "orphan"},
	}

	service := NewFeedService(notifications)
	listed, err := service.List(context.Background(), "acct-1", 50, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || listed[0].Message != "mine" {
		t.Errorf("listed = %+v, want only the caller's rows", listed)
	}
}
