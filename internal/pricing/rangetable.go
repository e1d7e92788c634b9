package pricing

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"delivery-fee-service/internal/apperr"
	"delivery-fee-service/internal/domain"
)

// Interval is a closed numeric range tagged with a rate.
type Interval struct {
	ID    int64
	Start decimal.Decimal
	End   decimal.Decimal
	Rate  decimal.Decimal
}

// RangeTable is a set of intervals ordered ascending by Start.
type RangeTable struct {
	unit      string
	intervals []Interval
}

// NewRangeTable copies and sorts items. unit only decorates validation messages.
func NewRangeTable(unit string, items []Interval) RangeTable {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		return a.Start.Cmp(b.Start)
	})
	return RangeTable{unit: unit, intervals: sorted}
}

// DistanceTable builds the table of price-per-km tiers.
func DistanceTable(tiers []domain.DistanceTier) RangeTable {
	items := make([]Interval, 0, len(tiers))
	for _, t := range tiers {
		items = append(items, Interval{ID: t.ID, Start: t.StartKm, End: t.EndKm, Rate: t.PricePerKm})
	}
	return NewRangeTable("km", items)
}

// WeightTable builds the table of weight surcharges.
func WeightTable(tiers []domain.WeightTier) RangeTable {
	items := make([]Interval, 0, len(tiers))
	for _, t := range tiers {
		items = append(items, Interval{ID: t.ID, Start: t.MinKg, End: t.MaxKg, Rate: t.FeeAmount})
	}
	return NewRangeTable("kg", items)
}

// Len returns the number of intervals.
func (t RangeTable) Len() int { return len(t.intervals) }

// Match returns the first interval with Start <= point <= End.
func (t RangeTable) Match(point decimal.Decimal) (Interval, bool) {
	for _, iv := range t.intervals {
		if iv.Start.LessThanOrEqual(point) && point.LessThanOrEqual(iv.End) {
			return iv, true
		}
	}
	return Interval{}, false
}

// Lookup returns the rate of the matching interval, or def when none matches.
func (t RangeTable) Lookup(point, def decimal.Decimal) decimal.Decimal {
	if iv, ok := t.Match(point); ok {
		return iv.Rate
	}
	return def
}

// ValidateNoOverlap rejects a malformed candidate or one sharing more than an
// endpoint with any interval other than excludeID.
func (t RangeTable) ValidateNoOverlap(c Interval, excludeID int64) error {
	if c.Start.GreaterThanOrEqual(c.End) {
		return apperr.Validation(fmt.Sprintf(
			"start %s must be less than end %s", t.format(c.Start), t.format(c.End)))
	}
	for _, iv := range t.intervals {
		if excludeID != 0 && iv.ID == excludeID {
			continue
		}
		if c.Start.LessThan(iv.End) && iv.Start.LessThan(c.End) {
			return apperr.Validation(fmt.Sprintf(
				"range [%s, %s] overlaps existing range [%s, %s] (id %d)",
				c.Start, c.End, iv.Start, iv.End, iv.ID))
		}
	}
	return nil
}

func (t RangeTable) format(d decimal.Decimal) string {
	if t.unit == "" {
		return d.String()
	}
	return d.String() + " " + t.unit
}
