package domain

import "github.com/shopspring/decimal"

// WindowKind separates the independent peak and night window sets.
type WindowKind string

// Known window kinds.
const (
	WindowPeak  WindowKind = "peak"
	WindowNight WindowKind = "night"
)

// Valid checks if the WindowKind is known.
func (k WindowKind) Valid() bool {
	return k == WindowPeak || k == WindowNight
}

// TimeWindow is a time-of-day surcharge window. Start and End hold the stored
// text form; Start after End means the window spans midnight.
type TimeWindow struct {
	ID         int64           `json:"id"`
	Kind       WindowKind      `json:"kind"`
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Percentage decimal.Decimal `json:"percentage"`
}
