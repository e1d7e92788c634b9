package pricing

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"delivery-fee-service/internal/apperr"
	"delivery-fee-service/internal/domain"
)

// Window is a parsed time window. Start > End spans midnight.
type Window struct {
	ID         int64
	Start      domain.Clock
	End        domain.Clock
	Percentage decimal.Decimal
}

// Wraps reports whether w spans midnight.
func (w Window) Wraps() bool { return w.Start > w.End }

func (w Window) String() string { return w.Start.String() + "-" + w.End.String() }

// ParseWindow converts a stored window. Unparsable bounds and zero-length
// windows are errors.
func ParseWindow(tw domain.TimeWindow) (Window, error) {
	start, err := domain.ParseClock(tw.Start)
	if err != nil {
		return Window{}, fmt.Errorf("window %d start: %w", tw.ID, err)
	}
	end, err := domain.ParseClock(tw.End)
	if err != nil {
		return Window{}, fmt.Errorf("window %d end: %w", tw.ID, err)
	}
	if start == end {
		return Window{}, fmt.Errorf("window %d: zero length at %s", tw.ID, start)
	}
	return Window{ID: tw.ID, Start: start, End: end, Percentage: tw.Percentage}, nil
}

// Contains reports whether t falls inside w, bounds included.
func Contains(w Window, t domain.Clock) bool {
	if !w.Wraps() {
		return w.Start <= t && t <= w.End
	}
	return t >= w.Start || t <= w.End
}

// SortWindows orders windows ascending by start time, keeping ties stable.
func SortWindows(ws []Window) {
	slices.SortStableFunc(ws, func(a, b Window) int {
		return int(a.Start) - int(b.Start)
	})
}

// FirstMatch returns the first window of ws containing t. ws is expected in
// ascending start order (see SortWindows).
func FirstMatch(ws []Window, t domain.Clock) (Window, bool) {
	for _, w := range ws {
		if Contains(w, t) {
			return w, true
		}
	}
	return Window{}, false
}

// RangesOverlap reports whether a and b share more than an endpoint.
// Two windows that both span midnight always overlap.
func RangesOverlap(a, b Window) bool {
	switch {
	case !a.Wraps() && !b.Wraps():
		return !(a.End <= b.Start || a.Start >= b.End)
	case a.Wraps() && !b.Wraps():
		return !(a.End <= b.Start && a.Start >= b.End)
	case !a.Wraps() && b.Wraps():
		return !(b.End <= a.Start && b.Start >= a.End)
	default:
		return true
	}
}

// ValidateWindow checks a candidate against the other windows of its kind.
// The zero-length check runs before any overlap test.
func ValidateWindow(c Window, existing []Window, excludeID int64) error {
	if c.Start == c.End {
		return apperr.ValidationOf(apperr.ErrZeroLengthWindow, fmt.Sprintf(
			"start time and end time must differ (both %s)", c.Start))
	}
	for _, w := range existing {
		if excludeID != 0 && w.ID == excludeID {
			continue
		}
		if RangesOverlap(c, w) {
			return apperr.Validation(fmt.Sprintf(
				"window %s overlaps existing window %s (id %d)", c, w, w.ID))
		}
	}
	return nil
}
