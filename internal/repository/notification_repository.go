package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/campus-alert-service/internal/domain"
)

// NotificationFilter narrows notification counts and listings.
type NotificationFilter struct {
	RecipientID *string
	Priority    *domain.Priority
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// NotificationRepository encapsulates notification persistence.
// Rows are write-once: there is no update path.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	CreateBatch(ctx context.Context, notifications []domain.Notification) (int, error)
	ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]domain.Notification, error)
	Count(ctx context.Context, filter NotificationFilter) (int64, error)
	CountByPriority(ctx context.Context) (map[domain.Priority]int64, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository instantiates repository.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

const insertNotificationQuery = `
        INSERT INTO notifications (message, recipient_id, priority, time_window_start, time_window_end)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	start, end := notification.TimeWindow.Bounds()
	return r.pool.QueryRow(ctx, insertNotificationQuery,
		notification.Message,
		notification.RecipientID,
		notification.Priority.String(),
		start,
		end,
	).Scan(&notification.ID, &notification.CreatedAt)
}

// CreateBatch writes every notification inside a single transaction.
// Readers observe either all rows of a broadcast or none.
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []domain.Notification) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	const query = `
        INSERT INTO notifications (message, recipient_id, priority, time_window_start, time_window_end)
        VALUES ($1,$2,$3,$4,$5)`
	for i := range notifications {
		start, end := notifications[i].TimeWindow.Bounds()
		batch.Queue(query,
			notifications[i].Message,
			notifications[i].RecipientID,
			notifications[i].Priority.String(),
			start,
			end,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range notifications {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return 0, err
		}
	}
	if err := results.Close(); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(notifications), nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
        SELECT id, message, recipient_id, priority, time_window_start, time_window_end, created_at
        FROM notifications
        WHERE recipient_id=$1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var (
			notification domain.Notification
			priority     string
			windowStart  *time.Time
			windowEnd    *time.Time
		)
		if err := rows.Scan(
			&notification.ID,
			&notification.Message,
			&notification.RecipientID,
			&priority,
			&windowStart,
			&windowEnd,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		notification.Priority = domain.Priority(priority)
		notification.TimeWindow = domain.TimeWindowFromBounds(windowStart, windowEnd)
		notifications = append(notifications, notification)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) Count(ctx context.Context, filter NotificationFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.RecipientID != nil {
		query += ` AND recipient_id=$` + strconv.Itoa(idx)
		args = append(args, *filter.RecipientID)
		idx++
	}
	if filter.Priority != nil {
		query += ` AND priority=$` + strconv.Itoa(idx)
		args = append(args, filter.Priority.String())
		idx++
	}
	if filter.CreatedFrom != nil {
		query += ` AND created_at >= $` + strconv.Itoa(idx)
		args = append(args, *filter.CreatedFrom)
		idx++
	}
	if filter.CreatedTo != nil {
		query += ` AND created_at < $` + strconv.Itoa(idx)
		args = append(args, *filter.CreatedTo)
		idx++
	}

	var count int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *notificationRepository) CountByPriority(ctx context.Context) (map[domain.Priority]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT priority, COUNT(*) FROM notifications GROUP BY priority`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Priority]int64)
	for rows.Next() {
		var (
			priority string
			count    int64
		)
		if err := rows.Scan(&priority, &count); err != nil {
			return nil, err
		}
		counts[domain.Priority(priority)] = count
	}
	return counts, rows.Err()
}
