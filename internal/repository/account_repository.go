package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/campus-alert-service/internal/domain"
)

const accountColumns = `id, username, password_hash, is_admin, is_active,
               email, personal_email, phone, priority,
               time_window_start, time_window_end, created_at, updated_at`

// AccountNotificationCount pairs an account with its notification total.
type AccountNotificationCount struct {
	Account           domain.Account
	NotificationCount int64
}

// AccountRepository defines persistence access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	ListActive(ctx context.Context, excludeAdmins bool) ([]domain.Account, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	TopByNotificationCount(ctx context.Context, n int) ([]AccountNotificationCount, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (username, password_hash, is_admin, is_active,
                              email, personal_email, phone, priority,
                              time_window_start, time_window_end)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`

	start, end := account.TimeWindow().Bounds()
	return r.pool.QueryRow(ctx, query,
		account.Username,
		account.PasswordHash,
		account.IsAdmin,
		account.IsActive,
		account.Email().String(),
		account.PersonalEmail().String(),
		account.Phone().String(),
		account.Priority().String(),
		start,
		end,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	const query = `
        UPDATE accounts SET username=$1, password_hash=$2, is_admin=$3, is_active=$4,
            email=$5, personal_email=$6, phone=$7, priority=$8,
            time_window_start=$9, time_window_end=$10, updated_at=NOW()
        WHERE id=$11`

	start, end := account.TimeWindow().Bounds()
	cmd, err := r.pool.Exec(ctx, query,
		account.Username,
		account.PasswordHash,
		account.IsAdmin,
		account.IsActive,
		account.Email().String(),
		account.PersonalEmail().String(),
		account.Phone().String(),
		account.Priority().String(),
		start,
		end,
		account.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.fetchSingle(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id=$1`, id)
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.fetchSingle(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username=$1`, username)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.fetchSingle(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email=$1`, email)
}

func (r *accountRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Account, error) {
	account, err := scanAccount(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ListActive returns active accounts, optionally excluding administrators.
// Ordering by id keeps fan-out and top-N tie-breaks stable.
func (r *accountRepository) ListActive(ctx context.Context, excludeAdmins bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE is_active`
	if excludeAdmins {
		query += ` AND NOT is_admin`
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

// Deactivate soft-disables an account; the row and its notification
// references survive.
func (r *accountRepository) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE accounts SET is_active=FALSE, updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the row; notifications keep their history with a
// nulled recipient via ON DELETE SET NULL.
func (r *accountRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	return count, err
}

func (r *accountRepository) TopByNotificationCount(ctx context.Context, n int) ([]AccountNotificationCount, error) {
	const query = `
        SELECT a.id, a.username, a.password_hash, a.is_admin, a.is_active,
               a.email, a.personal_email, a.phone, a.priority,
               a.time_window_start, a.time_window_end, a.created_at, a.updated_at,
               COUNT(n.id) AS notif_count
        FROM accounts a
        LEFT JOIN notifications n ON n.recipient_id = a.id
        GROUP BY a.id
        ORDER BY notif_count DESC, a.id
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []AccountNotificationCount
	for rows.Next() {
		entry, err := scanAccountWithCount(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *entry)
	}
	return results, rows.Err()
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account       domain.Account
		email         string
		personalEmail string
		phone         string
		priority      string
		windowStart   *time.Time
		windowEnd     *time.Time
	)
	if err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.IsAdmin,
		&account.IsActive,
		&email,
		&personalEmail,
		&phone,
		&priority,
		&windowStart,
		&windowEnd,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	account.Hydrate(email, personalEmail, phone, domain.Priority(priority), domain.TimeWindowFromBounds(windowStart, windowEnd))
	return &account, nil
}

func scanAccountWithCount(row pgx.Row) (*AccountNotificationCount, error) {
	var (
		account       domain.Account
		email         string
		personalEmail string
		phone         string
		priority      string
		windowStart   *time.Time
		windowEnd     *time.Time
		count         int64
	)
	if err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.IsAdmin,
		&account.IsActive,
		&email,
		&personalEmail,
		&phone,
		&priority,
		&windowStart,
		&windowEnd,
		&account.CreatedAt,
		&account.UpdatedAt,
		&count,
	); err != nil {
		return nil, err
	}
	account.Hydrate(email, personalEmail, phone, domain.Priority(priority), domain.TimeWindowFromBounds(windowStart, windowEnd))
	return &AccountNotificationCount{Account: account, NotificationCount: count}, nil
}
