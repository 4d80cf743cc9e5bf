package domain

import (
	"time"

	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

// TimeWindow is an ordered (start, end) pair describing when an account
// accepts deliveries. A nil *TimeWindow means "never configured", which
// is distinct from any configured pair.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow validates that both bounds are present and ordered.
func NewTimeWindow(start, end time.Time) (*TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return nil, apperrors.NewInvalidShape("time_window", "both start and end must be provided")
	}
	if start.After(end) {
		return nil, apperrors.NewInvalidShape("time_window", "start must not be after end")
	}
	return &TimeWindow{Start: start, End: end}, nil
}

// TimeWindowFromBounds reassembles a window from nullable storage
// columns. Half-open pairs are treated as absent.
func TimeWindowFromBounds(start, end *time.Time) *TimeWindow {
	if start == nil || end == nil {
		return nil
	}
	return &TimeWindow{Start: *start, End: *end}
}

// Bounds exposes the window as nullable storage columns.
func (w *TimeWindow) Bounds() (start, end *time.Time) {
	if w == nil {
		return nil, nil
	}
	s, e := w.Start, w.End
	return &s, &e
}
