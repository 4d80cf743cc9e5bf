package domain

import (
	"testing"
	"time"

	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

func TestNewTimeWindow_Valid(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Hour)

	window, err := NewTimeWindow(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !window.Start.Equal(start) || !window.End.Equal(end) {
		t.Errorf("window does not round-trip: got (%v, %v)", window.Start, window.End)
	}
}

func TestNewTimeWindow_RejectsMissingBound(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	if _, err := NewTimeWindow(start, time.Time{}); err == nil {
		t.Error("expected error for missing end")
	} else if !apperrors.HasCode(err, "INVALID_SHAPE") {
		t.Errorf("error code = %v, want INVALID_SHAPE", err)
	}
	if _, err := NewTimeWindow(time.Time{}, start); err == nil {
		t.Error("expected error for missing start")
	}
}

func TestNewTimeWindow_RejectsInvertedBounds(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	if _, err := NewTimeWindow(start, start.Add(-time.Hour)); err == nil {
		t.Error("expected error for start after end")
	} else if !apperrors.HasCode(err, "INVALID_SHAPE") {
		t.Errorf("error code = %v, want INVALID_SHAPE", err)
	}
}

func TestTimeWindowFromBounds(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	if window := TimeWindowFromBounds(&start, &end); window == nil {
		t.Error("expected window from full bounds")
	}
	if window := TimeWindowFromBounds(&start, nil); window != nil {
		t.Error("half-open pair must read as absent")
	}
	if window := TimeWindowFromBounds(nil, nil); window != nil {
		t.Error("nil bounds must read as absent")
	}

	var absent *TimeWindow
	s, e := absent.Bounds()
	if s != nil || e != nil {
		t.Error("absent window must expose nil bounds")
	}
}
