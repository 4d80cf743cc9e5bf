package mocks

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/campus-alert-service/internal/domain"
	"github.com/spec-kit/campus-alert-service/internal/repository"
)

// MockAccountRepository is a func-field mock of repository.AccountRepository.
type MockAccountRepository struct {
	Accounts []domain.Account

	CreateFunc                 func(ctx context.Context, account *domain.Account) error
	UpdateFunc                 func(ctx context.Context, account *domain.Account) error
	GetByIDFunc                func(ctx context.Context, id string) (*domain.Account, error)
	GetByUsernameFunc          func(ctx context.Context, username string) (*domain.Account, error)
	GetByEmailFunc             func(ctx context.Context, email string) (*domain.Account, error)
	ListActiveFunc             func(ctx context.Context, excludeAdmins bool) ([]domain.Account, error)
	DeactivateFunc             func(ctx context.Context, id string) error
	DeleteFunc                 func(ctx context.Context, id string) error
	CountFunc                  func(ctx context.Context) (int64, error)
	TopByNotificationCountFunc func(ctx context.Context, n int) ([]repository.AccountNotificationCount, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	account.ID = "acct-" + strconv.Itoa(len(m.Accounts)+1)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	m.Accounts = append(m.Accounts, *account)
	return nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID == account.ID {
			m.Accounts[i] = *account
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID == id {
			account := m.Accounts[i]
			return &account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	for i := range m.Accounts {
		if m.Accounts[i].Username == username {
			account := m.Accounts[i]
			return &account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	for i := range m.Accounts {
		if m.Accounts[i].Email().String() == email {
			account := m.Accounts[i]
			return &account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *MockAccountRepository) ListActive(ctx context.Context, excludeAdmins bool) ([]domain.Account, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, excludeAdmins)
	}
	var active []domain.Account
	for _, account := range m.Accounts {
		if !account.IsActive {
			continue
		}
		if excludeAdmins && account.IsAdmin {
			continue
		}
		active = append(active, account)
	}
	return active, nil
}

func (m *MockAccountRepository) Deactivate(ctx context.Context, id string) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID == id {
			m.Accounts[i].IsActive = false
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID == id {
			m.Accounts = append(m.Accounts[:i], m.Accounts[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *MockAccountRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return int64(len(m.Accounts)), nil
}

func (m *MockAccountRepository) TopByNotificationCount(ctx context.Context, n int) ([]repository.AccountNotificationCount, error) {
	if m.TopByNotificationCountFunc != nil {
		return m.TopByNotificationCountFunc(ctx, n)
	}
	return nil, nil
}

// MockNotificationRepository is a func-field mock that records writes
// in memory so tests can assert on committed rows.
type MockNotificationRepository struct {
	Stored []domain.Notification

	CreateFunc          func(ctx context.Context, notification *domain.Notification) error
	CreateBatchFunc     func(ctx context.Context, notifications []domain.Notification) (int, error)
	ListByRecipientFunc func(ctx context.Context, recipientID string, limit, offset int) ([]domain.Notification, error)
	CountFunc           func(ctx context.Context, filter repository.NotificationFilter) (int64, error)
	CountByPriorityFunc func(ctx context.Context) (map[domain.Priority]int64, error)
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, notification)
	}
	notification.ID = "notif-" + strconv.Itoa(len(m.Stored)+1)
	notification.CreatedAt = time.Now()
	m.Stored = append(m.Stored, *notification)
	return nil
}

func (m *MockNotificationRepository) CreateBatch(ctx context.Context, notifications []domain.Notification) (int, error) {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, notifications)
	}
	now := time.Now()
	for i := range notifications {
		notifications[i].ID = "notif-" + strconv.Itoa(len(m.Stored)+1)
		notifications[i].CreatedAt = now
		m.Stored = append(m.Stored, notifications[i])
	}
	return len(notifications), nil
}

func (m *MockNotificationRepository) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]domain.Notification, error) {
	if m.ListByRecipientFunc != nil {
		return m.ListByRecipientFunc(ctx, recipientID, limit, offset)
	}
	var matched []domain.Notification
	for _, notification := range m.Stored {
		if notification.RecipientID != nil && *notification.RecipientID == recipientID {
			matched = append(matched, notification)
		}
	}
	return matched, nil
}

func (m *MockNotificationRepository) Count(ctx context.Context, filter repository.NotificationFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	var count int64
	for _, notification := range m.Stored {
		if filter.RecipientID != nil && (notification.RecipientID == nil || *notification.RecipientID != *filter.RecipientID) {
			continue
		}
		if filter.Priority != nil && notification.Priority != *filter.Priority {
			continue
		}
		if filter.CreatedFrom != nil && notification.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if filter.CreatedTo != nil && !notification.CreatedAt.Before(*filter.CreatedTo) {
			continue
		}
		count++
	}
	return count, nil
}

func (m *MockNotificationRepository) CountByPriority(ctx context.Context) (map[domain.Priority]int64, error) {
	if m.CountByPriorityFunc != nil {
		return m.CountByPriorityFunc(ctx)
	}
	counts := make(map[domain.Priority]int64)
	for _, notification := range m.Stored {
		counts[notification.Priority]++
	}
	return counts, nil
}

// MockPasswordResetRepository is a func-field mock for reset tokens.
type MockPasswordResetRepository struct {
	Tokens []repository.PasswordResetToken

	CreateFunc     func(ctx context.Context, token *repository.PasswordResetToken) error
	GetByTokenFunc func(ctx context.Context, token string) (*repository.PasswordResetToken, error)
	MarkUsedFunc   func(ctx context.Context, id string) error
}

func NewMockPasswordResetRepository() *MockPasswordResetRepository {
	return &MockPasswordResetRepository{}
}

func (m *MockPasswordResetRepository) Create(ctx context.Context, token *repository.PasswordResetToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	token.ID = "reset-" + strconv.Itoa(len(m.Tokens)+1)
	token.CreatedAt = time.Now()
	m.Tokens = append(m.Tokens, *token)
	return nil
}

func (m *MockPasswordResetRepository) GetByToken(ctx context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, tokenStr)
	}
	for i := range m.Tokens {
		if m.Tokens[i].Token == tokenStr {
			token := m.Tokens[i]
			return &token, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *MockPasswordResetRepository) MarkUsed(ctx context.Context, id string) error {
	if m.MarkUsedFunc != nil {
		return m.MarkUsedFunc(ctx, id)
	}
	now := time.Now()
	for i := range m.Tokens {
		if m.Tokens[i].ID == id {
			m.Tokens[i].UsedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

// MockCooldownGuard is a func-field mock of service.CooldownGuard.
type MockCooldownGuard struct {
	AcquireFunc func(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

func (m *MockCooldownGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, key, ttl)
	}
	return true, nil
}
