package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"delivery-fee-service/internal/domain"
)

// Event is a single order event
type Event struct {
	OrderID    string
	Status     string
	DistanceKm decimal.Decimal
	WeightKg   decimal.Decimal
	IsWeather  bool
	IsPriority bool
	Tip        decimal.Decimal
	CreatedAt  time.Time
}

// PricingRequest builds the quote input carried by the event. The delivery
// time is left unset so the order is priced at its creation time.
func (e Event) PricingRequest() domain.PricingRequest {
	return domain.PricingRequest{
		DistanceKm: e.DistanceKm,
		WeightKg:   e.WeightKg,
		IsWeather:  e.IsWeather,
		IsPriority: e.IsPriority,
		Tip:        e.Tip,
	}
}
