package pricing

import (
	"github.com/shopspring/decimal"

	"delivery-fee-service/internal/domain"
)

var (
	// DefaultPricePerKm applies when no distance tier matches.
	DefaultPricePerKm = decimal.RequireFromString("10.00")

	hundred = decimal.NewFromInt(100)
)

func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

func baseCost(distanceKm decimal.Decimal, distance RangeTable, minimumFee int64) decimal.Decimal {
	perKm := distance.Lookup(distanceKm, DefaultPricePerKm)
	return decimal.Max(decimal.NewFromInt(minimumFee), distanceKm.Mul(perKm))
}

func weatherFee(isWeather bool, s domain.DeliverySettings) decimal.Decimal {
	if !isWeather {
		return decimal.Zero
	}
	return s.WeatherFee
}

func weightFee(weightKg decimal.Decimal, weight RangeTable) decimal.Decimal {
	if !weightKg.IsPositive() {
		return decimal.Zero
	}
	return weight.Lookup(weightKg, decimal.Zero)
}

func priorityFee(isPriority bool, base decimal.Decimal, s domain.DeliverySettings) decimal.Decimal {
	if !isPriority {
		return decimal.Zero
	}
	return percentOf(base, s.PriorityPercentage)
}

func windowFee(ws []Window, at domain.Clock, base decimal.Decimal) decimal.Decimal {
	w, ok := FirstMatch(ws, at)
	if !ok {
		return decimal.Zero
	}
	return percentOf(base, w.Percentage)
}
