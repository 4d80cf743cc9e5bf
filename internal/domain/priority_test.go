package domain

import (
	"testing"

	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

func TestParsePriority_NormalizesCase(t *testing.T) {
	cases := map[string]Priority{
		"low":    PriorityLow,
		"LOW":    PriorityLow,
		"Medium": PriorityMedium,
		"HIGH":   PriorityHigh,
		"URgent": PriorityUrgent,
		" high ": PriorityHigh,
	}
	for raw, want := range cases {
		got, err := ParsePriority(raw)
		if err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePriority(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParsePriority_RejectsUnknown(t *testing.T) {
	for _, raw := range []string{"unknown", "critical", "", "lo w"} {
		if _, err := ParsePriority(raw); err == nil {
			t.Errorf("ParsePriority(%q) expected error, got nil", raw)
		} else if !apperrors.HasCode(err, "INVALID_ENUM") {
			t.Errorf("ParsePriority(%q) error code = %v, want INVALID_ENUM", raw, err)
		}
	}
}

func TestPriorityOrDefault(t *testing.T) {
	if got := PriorityUnset.OrDefault(PriorityHigh); got != PriorityHigh {
		t.Errorf("unset priority should resolve to fallback, got %q", got)
	}
	if got := PriorityUrgent.OrDefault(PriorityHigh); got != PriorityUrgent {
		t.Errorf("set priority should be kept, got %q", got)
	}
}
