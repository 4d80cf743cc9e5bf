package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewInvalidFormat reports a contact field that failed its syntax rule.
func NewInvalidFormat(field, value string) error {
	return NewDomainError("INVALID_FORMAT",
		fmt.Sprintf("invalid %s: %q", field, value),
		http.StatusBadRequest,
		map[string]any{"field": field})
}

// NewInvalidEnum reports a value outside an allowed set.
func NewInvalidEnum(field, value string, allowed []string) error {
	sorted := append([]string{}, allowed...)
	sort.Strings(sorted)
	return NewDomainError("INVALID_ENUM",
		fmt.Sprintf("invalid %s: %q (allowed: %s)", field, value, strings.Join(sorted, ", ")),
		http.StatusBadRequest,
		map[string]any{"field": field, "allowed": sorted})
}

// NewInvalidShape reports a structurally malformed value, e.g. a half-open time window.
func NewInvalidShape(field, reason string) error {
	return NewDomainError("INVALID_SHAPE",
		fmt.Sprintf("invalid %s: %s", field, reason),
		http.StatusBadRequest,
		map[string]any{"field": field})
}

// NewMissingRequiredField reports an absent mandatory field.
func NewMissingRequiredField(field string) error {
	return NewDomainError("MISSING_REQUIRED_FIELD",
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
		map[string]any{"field": field})
}

// NewUnknownCategory reports an unrecognized emergency category.
func NewUnknownCategory(category string) error {
	return NewDomainError("UNKNOWN_CATEGORY",
		fmt.Sprintf("unknown emergency category: %q", category),
		http.StatusBadRequest,
		map[string]any{"category": category})
}

// NewStorageUnavailable wraps a failed transactional write.
func NewStorageUnavailable(err error) error {
	return &DomainError{
		Code:       "STORAGE_UNAVAILABLE",
		Message:    "storage unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err is a DomainError with the given code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

func MapError(err error) error {
	return ToDomainError(err)
}
