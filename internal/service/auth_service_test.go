package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/campus-alert-service/internal/config"
	"github.com/spec-kit/campus-alert-service/internal/mocks"
	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

func newAuthService(accounts *mocks.MockAccountRepository, resets *mocks.MockPasswordResetRepository) *AuthService {
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 60
	cfg.Auth.PasswordResetTTLMinutes = 30
	cfg.Auth.BcryptCost = 4 // min cost keeps hashing fast in tests
	return NewAuthService(cfg, AuthDependencies{
		AccountRepo:       accounts,
		PasswordResetRepo: resets,
	})
}

func TestRegisterAndLogin(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	service := newAuthService(accounts, mocks.NewMockPasswordResetRepository())

	account, token, exp, err := service.Register(context.Background(), "hector", "hector@campus.edu", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if account.ID == "" || token == "" {
		t.Fatal("expected persisted account and signed token")
	}
	if exp.Before(time.Now()) {
		t.Error("token expiry must be in the future")
	}
	if account.IsAdmin {
		t.Error("self-registration must not grant admin")
	}
	if !account.IsActive {
		t.Error("new accounts start active")
	}
	if account.Email().String() != "hector@campus.edu" {
		t.Errorf("email = %q", account.Email())
	}

	logged, loginToken, _, err := service.Login(context.Background(), "hector", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != account.ID || loginToken == "" {
		t.Error("login must return the registered account and a token")
	}
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	service := newAuthService(mocks.NewMockAccountRepository(), mocks.NewMockPasswordResetRepository())

	cases := []struct {
		name     string
		username string
		email    string
		password string
		code     string
	}{
		{"blank username", "  ", "a@b.edu", "pw", "MISSING_REQUIRED_FIELD"},
		{"blank password", "iris", "a@b.edu", "", "MISSING_REQUIRED_FIELD"},
		{"bad email", "iris", "not-an-email", "pw", "INVALID_FORMAT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := service.Register(context.Background(), tc.username, tc.email, tc.password)
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperrors.HasCode(err, tc.code) {
				t.Errorf("error = %v, want code %s", err, tc.code)
			}
		})
	}
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	service := newAuthService(accounts, mocks.NewMockPasswordResetRepository())

	if _, _, _, err := service.Register(context.Background(), "july", "july@campus.edu", "pw"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, _, err := service.Register(context.Background(), "july", "other@campus.edu", "pw")
	if !apperrors.HasCode(err, "CONFLICT") {
		t.Errorf("error = %v, want CONFLICT", err)
	}
}

func TestLogin_RejectsBadCredentialsAndInactive(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	service := newAuthService(accounts, mocks.NewMockPasswordResetRepository())

	account, _, _, err := service.Register(context.Background(), "karl", "karl@campus.edu", "pw")
	if err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := service.Login(context.Background(), "karl", "wrong"); !apperrors.HasCode(err, "UNAUTHORIZED") {
		t.Errorf("wrong password: error = %v, want UNAUTHORIZED", err)
	}
	if _, _, _, err := service.Login(context.Background(), "nobody", "pw"); !apperrors.HasCode(err, "UNAUTHORIZED") {
		t.Errorf("unknown user: error = %v, want UNAUTHORIZED", err)
	}

	if err := accounts.Deactivate(context.Background(), account.ID); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := service.Login(context.Background(), "karl", "pw"); !apperrors.HasCode(err, "UNAUTHORIZED") {
		t.Errorf("inactive account: error = %v, want UNAUTHORIZED", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	resets := mocks.NewMockPasswordResetRepository()
	service := newAuthService(accounts, resets)

	if _, _, _, err := service.Register(context.Background(), "lena", "lena@campus.edu", "old-pw"); err != nil {
		t.Fatal(err)
	}

	token, err := service.RequestPasswordReset(context.Background(), "lena@campus.edu")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if token.Token == "" || token.ExpiresAt.Before(time.Now()) {
		t.Fatal("expected a future-dated reset token")
	}

	if err := service.ConfirmPasswordReset(context.Background(), token.Token, "new-pw"); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	if _, _, _, err := service.Login(context.Background(), "lena", "old-pw"); err == nil {
		t.Error("old password must stop working")
	}
	if _, _, _, err := service.Login(context.Background(), "lena", "new-pw"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	// single use
	if err := service.ConfirmPasswordReset(context.Background(), token.Token, "again"); err == nil {
		t.Error("reused token must be rejected")
	}
}

func TestPasswordReset_UnknownEmail(t *testing.T) {
	service := newAuthService(mocks.NewMockAccountRepository(), mocks.NewMockPasswordResetRepository())

	if _, err := service.RequestPasswordReset(context.Background(), "ghost@campus.edu"); !apperrors.HasCode(err, "NOT_FOUND") {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestChangePassword(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	service := newAuthService(accounts, mocks.NewMockPasswordResetRepository())

	account, _, _, err := service.Register(context.Background(), "milo", "milo@campus.edu", "pw")
	if err != nil {
		t.Fatal(err)
	}

	if err := service.ChangePassword(context.Background(), account.ID, "bad", "next"); !apperrors.HasCode(err, "UNAUTHORIZED") {
		t.Errorf("wrong current password: error = %v, want UNAUTHORIZED", err)
	}
	if err := service.ChangePassword(context.Background(), account.ID, "pw", "next"); err != nil {
		t.Fatalf("change failed: %v", err)
	}
	if _, _, _, err := service.Login(context.Background(), "milo", "next"); err != nil {
		t.Errorf("login with changed password failed: %v", err)
	}
}
