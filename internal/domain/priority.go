package domain

import (
	"strings"

	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

// Priority is the severity label carried by accounts and notifications.
// The zero value means "unset"; reading an unset priority yields the
// account-level default.
type Priority string

const (
	PriorityUnset  Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority is the account-level default applied when a priority
// was never configured. Broadcast operations carry their own defaults.
const DefaultPriority = PriorityLow

var allowedPriorities = map[Priority]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
	PriorityUrgent: {},
}

// AllowedPriorities returns the accepted canonical spellings.
func AllowedPriorities() []string {
	return []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh), string(PriorityUrgent)}
}

// ParsePriority normalizes raw input to its canonical lowercase form.
// Unrecognized values are rejected with an INVALID_ENUM error.
func ParsePriority(raw string) (Priority, error) {
	normalized := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := allowedPriorities[normalized]; !ok {
		return PriorityUnset, apperrors.NewInvalidEnum("priority", raw, AllowedPriorities())
	}
	return normalized, nil
}

// OrDefault resolves an unset priority to the given fallback.
func (p Priority) OrDefault(fallback Priority) Priority {
	if p == PriorityUnset {
		return fallback
	}
	return p
}

// IsSet reports whether the priority was explicitly configured.
func (p Priority) IsSet() bool {
	return p != PriorityUnset
}

func (p Priority) String() string {
	return string(p)
}
