package domain

import (
	"testing"

	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

func TestParseCategory(t *testing.T) {
	for _, raw := range []string{"fire", "FIRE", " Fire "} {
		category, err := ParseCategory(raw)
		if err != nil {
			t.Errorf("ParseCategory(%q) unexpected error: %v", raw, err)
			continue
		}
		if category != CategoryFire {
			t.Errorf("ParseCategory(%q) = %q, want fire", raw, category)
		}
	}

	if _, err := ParseCategory("earthquake"); err == nil {
		t.Error("expected error for unknown category")
	} else if !apperrors.HasCode(err, "UNKNOWN_CATEGORY") {
		t.Errorf("error code = %v, want UNKNOWN_CATEGORY", err)
	}
}

func TestCategoryMessages(t *testing.T) {
	want := map[EmergencyCategory]string{
		CategoryEpidemic: "Wear a mask",
		CategoryFire:     "Evacuate immediately",
		CategoryFlood:    "Move to the upper floors",
		CategorySecurity: "Follow the security instructions",
	}
	for category, message := range want {
		if got := category.Message(); got != message {
			t.Errorf("%s message = %q, want %q", category, got, message)
		}
	}
	if len(Categories()) != len(want) {
		t.Errorf("Categories() length = %d, want %d", len(Categories()), len(want))
	}
}

func TestBuildNotification_Defaulting(t *testing.T) {
	recipient := &Account{ID: "acct-1", Username: "dana", IsActive: true}
	if err := recipient.SetPriority("urgent"); err != nil {
		t.Fatal(err)
	}

	// explicit non-default priority sticks
	notification := BuildNotification(recipient, "msg", PriorityMedium)
	if notification.Priority != PriorityMedium {
		t.Errorf("priority = %q, want medium", notification.Priority)
	}

	// unset priority inherits the recipient's
	notification = BuildNotification(recipient, "msg", PriorityUnset)
	if notification.Priority != PriorityUrgent {
		t.Errorf("priority = %q, want inherited urgent", notification.Priority)
	}

	// the system default also yields to the recipient's priority
	notification = BuildNotification(recipient, "msg", DefaultPriority)
	if notification.Priority != PriorityUrgent {
		t.Errorf("priority = %q, want inherited urgent", notification.Priority)
	}

	if notification.RecipientID == nil || *notification.RecipientID != "acct-1" {
		t.Error("notification must reference its recipient")
	}
}

func TestBuildNotification_SnapshotsTimeWindow(t *testing.T) {
	recipient := &Account{ID: "acct-2", Username: "eve", IsActive: true}
	notification := BuildNotification(recipient, "msg", PriorityHigh)
	if notification.TimeWindow != nil {
		t.Error("recipient without a window yields a window-less notification")
	}
}
