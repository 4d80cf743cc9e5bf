package service

import (
	"context"
	"time"

	"github.com/spec-kit/campus-alert-service/internal/domain"
	"github.com/spec-kit/campus-alert-service/internal/repository"
)

// TopAccount pairs an account with its notification total for the
// dashboard leaderboard.
type TopAccount struct {
	AccountID         string
	Username          string
	NotificationCount int64
}

// DailyBucket counts notifications created within one reporting day.
type DailyBucket struct {
	Day   time.Time
	Count int64
}

// Stats is the aggregate reporting snapshot.
type Stats struct {
	TotalAccounts      int64
	TotalNotifications int64
	Last24h            int64
	Last7d             int64
	Last30d            int64
	PriorityCounts     map[domain.Priority]int64
	TopAccounts        []TopAccount
	DailyHistogram     []DailyBucket
}

// StatsService recomputes reporting aggregates from current storage
// state on every call; nothing is cached.
type StatsService struct {
	accounts      repository.AccountRepository
	notifications repository.NotificationRepository
	location      *time.Location
	now           func() time.Time
}

// NewStatsService builds the service. The reporting day boundary is
// midnight in loc.
func NewStatsService(accounts repository.AccountRepository, notifications repository.NotificationRepository, loc *time.Location) *StatsService {
	if loc == nil {
		loc = time.Local
	}
	return &StatsService{
		accounts:      accounts,
		notifications: notifications,
		location:      loc,
		now:           time.Now,
	}
}

// Aggregate computes the full stats snapshot relative to call time.
func (s *StatsService) Aggregate(ctx context.Context) (*Stats, error) {
	now := s.now().In(s.location)

	totalAccounts, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalNotifications, err := s.notifications.Count(ctx, repository.NotificationFilter{})
	if err != nil {
		return nil, err
	}

	last24h, err := s.countSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}
	last7d, err := s.countSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	last30d, err := s.countSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	priorityCounts, err := s.notifications.CountByPriority(ctx)
	if err != nil {
		return nil, err
	}
	// every severity level appears in the breakdown, zero included
	for _, p := range domain.AllowedPriorities() {
		if _, ok := priorityCounts[domain.Priority(p)]; !ok {
			priorityCounts[domain.Priority(p)] = 0
		}
	}

	top, err := s.accounts.TopByNotificationCount(ctx, 5)
	if err != nil {
		return nil, err
	}
	topAccounts := make([]TopAccount, 0, len(top))
	for _, entry := range top {
		topAccounts = append(topAccounts, TopAccount{
			AccountID:         entry.Account.ID,
			Username:          entry.Account.Username,
			NotificationCount: entry.NotificationCount,
		})
	}

	histogram, err := s.dailyHistogram(ctx, now)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalAccounts:      totalAccounts,
		TotalNotifications: totalNotifications,
		Last24h:            last24h,
		Last7d:             last7d,
		Last30d:            last30d,
		PriorityCounts:     priorityCounts,
		TopAccounts:        topAccounts,
		DailyHistogram:     histogram,
	}, nil
}

func (s *StatsService) countSince(ctx context.Context, since time.Time) (int64, error) {
	return s.notifications.Count(ctx, repository.NotificationFilter{CreatedFrom: &since})
}

// dailyHistogram buckets the trailing 7 days, today included, oldest
// day first. Buckets span [midnight, midnight+24h) in the configured
// timezone.
func (s *StatsService) dailyHistogram(ctx context.Context, now time.Time) ([]DailyBucket, error) {
	buckets := make([]DailyBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.location)
		dayEnd := dayStart.AddDate(0, 0, 1)

		count, err := s.notifications.Count(ctx, repository.NotificationFilter{
			CreatedFrom: &dayStart,
			CreatedTo:   &dayEnd,
		})
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, DailyBucket{Day: dayStart, Count: count})
	}
	return buckets, nil
}
