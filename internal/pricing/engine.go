package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"delivery-fee-service/internal/apperr"
	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/logx"
)

// Engine turns a request and a tariff snapshot into an itemized quote.
// It keeps no state between calls.
type Engine struct {
	logger logx.Logger
}

// NewEngine creates an Engine. A nil logger discards skipped-window warnings.
func NewEngine(logger logx.Logger) *Engine {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Engine{logger: logger}
}

// Compute prices req against snap. now supplies the time of day when the
// request carries none and must already be in the pricing location.
//
// Amounts are rounded to two digits half away from zero and the total is the
// sum of the rounded components. Only a non-positive distance is an error;
// lookup misses fall back to defaults and unreadable stored windows are skipped.
func (e *Engine) Compute(req domain.PricingRequest, snap domain.TariffSnapshot, now time.Time) (domain.PricingResult, error) {
	if !req.DistanceKm.IsPositive() {
		return domain.PricingResult{}, fmt.Errorf("%w: distance_km must be greater than zero", apperr.ErrInvalid)
	}

	at := domain.ClockOf(now)
	if req.DeliveryTime != nil {
		at = *req.DeliveryTime
	}

	settings := snap.Settings
	base := baseCost(req.DistanceKm, DistanceTable(snap.DistanceTiers), settings.MinimumFee)
	tip := req.Tip
	if tip.IsNegative() {
		tip = decimal.Zero
	}

	res := domain.PricingResult{
		BaseCost:    round2(base),
		WeatherFee:  round2(weatherFee(req.IsWeather, settings)),
		WeightFee:   round2(weightFee(req.WeightKg, WeightTable(snap.WeightTiers))),
		PriorityFee: round2(priorityFee(req.IsPriority, base, settings)),
		PeakFee:     round2(windowFee(e.windows(domain.WindowPeak, snap.PeakWindows), at, base)),
		NightFee:    round2(windowFee(e.windows(domain.WindowNight, snap.NightWindows), at, base)),
		Tip:         round2(tip),
	}
	res.Total = decimal.Sum(res.BaseCost,
		res.WeatherFee, res.WeightFee, res.PriorityFee, res.PeakFee, res.NightFee, res.Tip)

	return res, nil
}

// windows parses stored windows in ascending start order, skipping the ones
// that cannot be read.
func (e *Engine) windows(kind domain.WindowKind, stored []domain.TimeWindow) []Window {
	out := make([]Window, 0, len(stored))
	for _, tw := range stored {
		w, err := ParseWindow(tw)
		if err != nil {
			e.logger.Warn("skipping unreadable time window",
				logx.String("kind", string(kind)),
				logx.Int64("window_id", tw.ID),
				logx.Err(err),
			)
			continue
		}
		out = append(out, w)
	}
	SortWindows(out)
	return out
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
