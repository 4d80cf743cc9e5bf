package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsCarryCodeAndStatus(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewInvalidFormat("email", "x"), "INVALID_FORMAT", http.StatusBadRequest},
		{NewInvalidEnum("priority", "x", []string{"low", "high"}), "INVALID_ENUM", http.StatusBadRequest},
		{NewInvalidShape("time_window", "half open"), "INVALID_SHAPE", http.StatusBadRequest},
		{NewMissingRequiredField("message"), "MISSING_REQUIRED_FIELD", http.StatusBadRequest},
		{NewUnknownCategory("meteor"), "UNKNOWN_CATEGORY", http.StatusBadRequest},
		{NewStorageUnavailable(errors.New("down")), "STORAGE_UNAVAILABLE", http.StatusServiceUnavailable},
		{NewUnauthorized("nope"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewForbidden("nope"), "FORBIDDEN", http.StatusForbidden},
		{NewConflict("busy", nil), "CONFLICT", http.StatusConflict},
		{NewNotFound("account", nil), "NOT_FOUND", http.StatusNotFound},
	}
	for _, tc := range cases {
		domainErr := ToDomainError(tc.err)
		if domainErr.Code != tc.code {
			t.Errorf("code = %s, want %s", domainErr.Code, tc.code)
		}
		if domainErr.HTTPStatus != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.code, domainErr.HTTPStatus, tc.status)
		}
		if !HasCode(tc.err, tc.code) {
			t.Errorf("HasCode(%s) = false", tc.code)
		}
	}
}

func TestHasCodeSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("while registering: %w", NewInvalidFormat("email", "x"))
	if !HasCode(err, "INVALID_FORMAT") {
		t.Error("wrapped domain error must still match its code")
	}
	if HasCode(err, "CONFLICT") {
		t.Error("wrong code must not match")
	}
	if HasCode(errors.New("plain"), "INVALID_FORMAT") {
		t.Error("non-domain error must not match")
	}
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	domainErr := ToDomainError(errors.New("boom"))
	if domainErr.Code != "INTERNAL_ERROR" || domainErr.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("got %+v", domainErr)
	}
	if ToDomainError(nil) != nil {
		t.Error("nil maps to nil")
	}
}

func TestStorageUnavailableUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStorageUnavailable(cause)
	if !errors.Is(err, cause) {
		t.Error("cause must remain reachable via errors.Is")
	}
}
