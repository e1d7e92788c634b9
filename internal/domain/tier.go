package domain

import "github.com/shopspring/decimal"

// DistanceTier prices every kilometre of a delivery whose distance falls in [StartKm, EndKm].
type DistanceTier struct {
	ID         int64           `json:"id"`
	StartKm    decimal.Decimal `json:"start_km"`
	EndKm      decimal.Decimal `json:"end_km"`
	PricePerKm decimal.Decimal `json:"price_per_km"`
}

// WeightTier adds a flat fee to parcels whose weight falls in [MinKg, MaxKg].
type WeightTier struct {
	ID        int64           `json:"id"`
	MinKg     decimal.Decimal `json:"min_kg"`
	MaxKg     decimal.Decimal `json:"max_kg"`
	FeeAmount decimal.Decimal `json:"fee_amount"`
}
