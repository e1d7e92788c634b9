package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingRequest is the input of one delivery cost calculation.
// A nil DeliveryTime means "now" in the service's pricing location.
type PricingRequest struct {
	DistanceKm   decimal.Decimal
	WeightKg     decimal.Decimal
	IsWeather    bool
	IsPriority   bool
	Tip          decimal.Decimal
	DeliveryTime *Clock
}

// PricingResult is an itemized quote; every amount has two fractional digits.
type PricingResult struct {
	BaseCost    decimal.Decimal
	WeatherFee  decimal.Decimal
	WeightFee   decimal.Decimal
	PriorityFee decimal.Decimal
	PeakFee     decimal.Decimal
	NightFee    decimal.Decimal
	Tip         decimal.Decimal
	Total       decimal.Decimal
}

// OrderQuote is a quote stored against an order by the worker.
type OrderQuote struct {
	OrderID  string
	Result   PricingResult
	QuotedAt time.Time
}
