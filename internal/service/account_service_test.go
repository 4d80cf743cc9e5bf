package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/campus-alert-service/internal/domain"
	"github.com/spec-kit/campus-alert-service/internal/events"
	"github.com/spec-kit/campus-alert-service/internal/mocks"
	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

func newAccountService(accounts *mocks.MockAccountRepository, dispatcher events.Dispatcher) *AccountService {
	return NewAccountService(accounts, dispatcher, newTestLogger(), 4)
}

func TestAccountCreate_AllFields(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	service := newAccountService(accounts, nil)

	start := time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC)
	account, err := service.Create(context.Background(), AccountInput{
		Username:      "nora",
		Password:      "pw",
		Email:         "nora@campus.edu",
		PersonalEmail: "nora@home.net",
		Phone:         "+33612345678",
		Priority:      "urgent",
		WindowStart:   &start,
		WindowEnd:     &end,
		IsAdmin:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID == "" || !account.IsAdmin {
		t.Errorf("account = %+v", account)
	}
	if account.Priority() != domain.PriorityUrgent {
		t.Errorf("priority = %s, want urgent", account.Priority())
	}
	if account.TimeWindow() == nil {
		t.Error("time window must be set")
	}
}

func TestAccountCreate_RejectedFieldStoresNothing(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	service := newAccountService(accounts, nil)

	_, err := service.Create(context.Background(), AccountInput{
		Username: "oren",
		Password: "pw",
		Email:    "oren@campus.edu",
		Phone:    "0612345678", // missing leading +
	})
	if !apperrors.HasCode(err, "INVALID_FORMAT") {
		t.Fatalf("error = %v, want INVALID_FORMAT", err)
	}
	if len(accounts.Accounts) != 0 {
		t.Error("rejected creation must persist no account")
	}
}

func TestUpdateProfile_PartialWindowRejected(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	service := newAccountService(accounts, nil)

	seeded := domain.Account{Username: "pia", IsActive: true}
	_ = accounts.Create(context.Background(), &seeded)

	start := time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC)
	_, err := service.UpdateProfile(context.Background(), seeded.ID, ProfileUpdate{WindowStart: &start})
	if !apperrors.HasCode(err, "INVALID_SHAPE") {
		t.Fatalf("error = %v, want INVALID_SHAPE", err)
	}
}

func TestUpdateProfile_RejectionKeepsStoredState(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	service := newAccountService(accounts, nil)

	seeded := domain.Account{Username: "quinn", IsActive: true}
	if err := seeded.SetEmail("quinn@campus.edu"); err != nil {
		t.Fatal(err)
	}
	_ = accounts.Create(context.Background(), &seeded)

	bad := "not-an-email"
	if _, err := service.UpdateProfile(context.Background(), seeded.ID, ProfileUpdate{Email: &bad}); err == nil {
		t.Fatal("expected rejection")
	}

	stored, err := accounts.GetByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Email().String() != "quinn@campus.edu" {
		t.Errorf("stored email = %q, rejection must not overwrite it", stored.Email())
	}
}

func TestPurgeRemovesRow(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	service := newAccountService(accounts, nil)

	seeded := domain.Account{Username: "sol", IsActive: true}
	_ = accounts.Create(context.Background(), &seeded)

	if err := service.Purge(context.Background(), seeded.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := accounts.GetByID(context.Background(), seeded.ID); err == nil {
		t.Error("purged account must be gone")
	}

	if err := service.Purge(context.Background(), "missing"); !apperrors.HasCode(err, "NOT_FOUND") {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestDeactivatePublishesEvent(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	dispatcher := events.NewInMemoryDispatcher()

	var got []events.Event
	dispatcher.Subscribe(events.EventAccountDeactivated, func(ctx context.Context, event events.Event) error {
		got = append(got, event)
		return nil
	})
	service := newAccountService(accounts, dispatcher)

	seeded := domain.Account{Username: "remy", IsActive: true}
	_ = accounts.Create(context.Background(), &seeded)

	if err := service.Deactivate(context.Background(), seeded.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ := accounts.GetByID(context.Background(), seeded.ID)
	if stored.IsActive {
		t.Error("account must be inactive after deactivation")
	}
	if len(got) != 1 {
		t.Fatalf("events published = %d, want 1", len(got))
	}
	payload, ok := got[0].Payload.(events.AccountDeactivatedPayload)
	if !ok || payload.AccountID != seeded.ID {
		t.Errorf("payload = %+v", got[0].Payload)
	}
}
