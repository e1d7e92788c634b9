package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliverySettings holds the global fee settings; the most recent row wins.
type DeliverySettings struct {
	ID                 int64           `json:"id"`
	MinimumFee         int64           `json:"minimum_fee"`
	WeatherFee         decimal.Decimal `json:"weather_fee"`
	PriorityPercentage decimal.Decimal `json:"priority_percentage"`
	CreatedAt          time.Time       `json:"created_at"`
}

// DefaultSettings is used while no settings row exists.
func DefaultSettings() DeliverySettings {
	return DeliverySettings{
		MinimumFee:         150,
		WeatherFee:         decimal.Zero,
		PriorityPercentage: decimal.Zero,
	}
}

// TariffSnapshot is everything one quote reads from the configuration store.
type TariffSnapshot struct {
	Settings      DeliverySettings `json:"settings"`
	DistanceTiers []DistanceTier   `json:"distance_tiers"`
	WeightTiers   []WeightTier     `json:"weight_tiers"`
	PeakWindows   []TimeWindow     `json:"peak_windows"`
	NightWindows  []TimeWindow     `json:"night_windows"`
}
