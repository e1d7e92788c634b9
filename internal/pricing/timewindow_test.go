package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"delivery-fee-service/internal/apperr"
	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/pricing"
)

func win(id int64, start, end string) pricing.Window {
	return pricing.Window{ID: id, Start: domain.MustClock(start), End: domain.MustClock(end), Percentage: d("10")}
}

func TestContains(t *testing.T) {
	t.Parallel()

	night := win(1, "22:00", "06:00")
	lunch := win(2, "12:00", "14:00")

	tests := []struct {
		name string
		w    pricing.Window
		at   string
		want bool
	}{
		{name: "wrapping late evening", w: night, at: "23:30", want: true},
		{name: "wrapping early morning", w: night, at: "02:00", want: true},
		{name: "wrapping noon", w: night, at: "12:00", want: false},
		{name: "wrapping start bound", w: night, at: "22:00", want: true},
		{name: "wrapping end bound", w: night, at: "06:00", want: true},
		{name: "wrapping just after end", w: night, at: "06:00:01", want: false},
		{name: "plain inside", w: lunch, at: "13:00", want: true},
		{name: "plain start bound", w: lunch, at: "12:00", want: true},
		{name: "plain end bound", w: lunch, at: "14:00", want: true},
		{name: "plain outside", w: lunch, at: "15:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, pricing.Contains(tt.w, domain.MustClock(tt.at)))
		})
	}
}

func TestFirstMatch_ReturnsFirstInStartOrder(t *testing.T) {
	t.Parallel()

	ws := []pricing.Window{win(3, "17:00", "19:00"), win(1, "07:00", "09:00"), win(2, "08:00", "10:00")}
	pricing.SortWindows(ws)

	got, ok := pricing.FirstMatch(ws, domain.MustClock("08:30"))
	require.True(t, ok)
	require.Equal(t, int64(1), got.ID)

	_, ok = pricing.FirstMatch(ws, domain.MustClock("12:00"))
	require.False(t, ok)
}

func TestRangesOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b pricing.Window
		want bool
	}{
		{name: "plain disjoint", a: win(1, "07:00", "09:00"), b: win(2, "10:00", "12:00"), want: false},
		{name: "plain touching", a: win(1, "07:00", "09:00"), b: win(2, "09:00", "12:00"), want: false},
		{name: "plain overlapping", a: win(1, "07:00", "09:00"), b: win(2, "08:00", "12:00"), want: true},
		{name: "plain nested", a: win(1, "07:00", "12:00"), b: win(2, "08:00", "09:00"), want: true},
		{name: "wrap vs daytime gap", a: win(1, "22:00", "06:00"), b: win(2, "06:00", "22:00"), want: false},
		{name: "wrap vs inside gap", a: win(1, "22:00", "06:00"), b: win(2, "12:00", "13:00"), want: false},
		{name: "wrap vs morning overlap", a: win(1, "22:00", "06:00"), b: win(2, "05:00", "07:00"), want: true},
		{name: "wrap vs evening overlap", a: win(1, "22:00", "06:00"), b: win(2, "21:00", "23:00"), want: true},
		{name: "daytime vs wrap symmetric", a: win(1, "05:00", "07:00"), b: win(2, "22:00", "06:00"), want: true},
		{name: "daytime in gap vs wrap", a: win(1, "12:00", "13:00"), b: win(2, "22:00", "06:00"), want: false},
		{name: "both wrap", a: win(1, "22:00", "06:00"), b: win(2, "23:00", "05:00"), want: true},
		{name: "both wrap barely", a: win(1, "23:59", "00:01"), b: win(2, "23:00", "00:00:30"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, pricing.RangesOverlap(tt.a, tt.b))
		})
	}
}

func TestValidateWindow(t *testing.T) {
	t.Parallel()

	existing := []pricing.Window{win(1, "22:00", "06:00"), win(2, "12:00", "14:00")}

	require.NoError(t, pricing.ValidateWindow(win(0, "06:00", "12:00"), existing, 0))
	require.ErrorIs(t, pricing.ValidateWindow(win(0, "23:00", "05:00"), existing, 0), apperr.ErrConflict)
	require.ErrorIs(t, pricing.ValidateWindow(win(0, "13:00", "15:00"), existing, 0), apperr.ErrConflict)
	require.NoError(t, pricing.ValidateWindow(win(2, "13:00", "15:00"), existing, 2))
}

func TestValidateWindow_ZeroLengthIsDistinct(t *testing.T) {
	t.Parallel()

	err := pricing.ValidateWindow(win(0, "09:00", "09:00"), nil, 0)
	require.ErrorIs(t, err, apperr.ErrConflict)

	reason, ok := apperr.Reason(err)
	require.True(t, ok)
	require.Contains(t, reason, "must differ")
	require.ErrorIs(t, err, apperr.ErrZeroLengthWindow)
}

func TestParseWindow(t *testing.T) {
	t.Parallel()

	w, err := pricing.ParseWindow(domain.TimeWindow{ID: 4, Start: "22:00:00", End: "06:00:00", Percentage: d("15")})
	require.NoError(t, err)
	require.True(t, w.Wraps())
	require.Equal(t, "22:00-06:00", w.String())

	_, err = pricing.ParseWindow(domain.TimeWindow{ID: 5, Start: "25:00", End: "06:00"})
	require.Error(t, err)

	_, err = pricing.ParseWindow(domain.TimeWindow{ID: 6, Start: "09:00", End: "09:00:00"})
	require.Error(t, err)
}
