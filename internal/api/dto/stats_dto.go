package dto

import (
	"github.com/spec-kit/campus-alert-service/internal/service"
)

// TopAccountResponse is one leaderboard row.
type TopAccountResponse struct {
	AccountID         string `json:"account_id"`
	Username          string `json:"username"`
	NotificationCount int64  `json:"notification_count"`
}

// DailyBucketResponse is one histogram bar, labelled day/month.
type DailyBucketResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// StatsResponse is the aggregate reporting payload.
type StatsResponse struct {
	TotalAccounts      int64                 `json:"total_accounts"`
	TotalNotifications int64                 `json:"total_notifications"`
	Last24h            int64                 `json:"notifications_24h"`
	Last7d             int64                 `json:"notifications_7d"`
	Last30d            int64                 `json:"notifications_30d"`
	PriorityCounts     map[string]int64      `json:"priority_counts"`
	TopAccounts        []TopAccountResponse  `json:"top_accounts"`
	DailyHistogram     []DailyBucketResponse `json:"daily_histogram"`
}

// NewStatsResponse maps the aggregate onto the wire shape.
func NewStatsResponse(stats *service.Stats) StatsResponse {
	priorityCounts := make(map[string]int64, len(stats.PriorityCounts))
	for priority, count := range stats.PriorityCounts {
		priorityCounts[priority.String()] = count
	}

	topAccounts := make([]TopAccountResponse, 0, len(stats.TopAccounts))
	for _, entry := range stats.TopAccounts {
		topAccounts = append(topAccounts, TopAccountResponse{
			AccountID:         entry.AccountID,
			Username:          entry.Username,
			NotificationCount: entry.NotificationCount,
		})
	}

	histogram := make([]DailyBucketResponse, 0, len(stats.DailyHistogram))
	for _, bucket := range stats.DailyHistogram {
		histogram = append(histogram, DailyBucketResponse{
			Date:  bucket.Day.Format("02/01"),
			Count: bucket.Count,
		})
	}

	return StatsResponse{
		TotalAccounts:      stats.TotalAccounts,
		TotalNotifications: stats.TotalNotifications,
		Last24h:            stats.Last24h,
		Last7d:             stats.Last7d,
		Last30d:            stats.Last30d,
		PriorityCounts:     priorityCounts,
		TopAccounts:        topAccounts,
		DailyHistogram:     histogram,
	}
}
