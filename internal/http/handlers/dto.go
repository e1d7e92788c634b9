package handlers

import (
	"time"

	"github.com/shopspring/decimal"
)

type quoteRequest struct {
	DistanceKm   decimal.Decimal `json:"distance_km"`
	WeightKg     decimal.Decimal `json:"weight_kg"`
	IsWeather    bool            `json:"is_weather"`
	IsPriority   bool            `json:"is_priority"`
	Tip          decimal.Decimal `json:"tip"`
	DeliveryTime *string         `json:"delivery_time,omitempty"`
}

type quoteResponse struct {
	BaseCost    string `json:"base_cost"`
	WeatherFee  string `json:"weather_fee"`
	WeightFee   string `json:"weight_fee"`
	PriorityFee string `json:"priority_fee"`
	PeakFee     string `json:"peak_fee"`
	NightFee    string `json:"night_fee"`
	Tip         string `json:"tip"`
	Total       string `json:"total"`
}

type distanceTierDTO struct {
	ID         int64           `json:"id"`
	StartKm    decimal.Decimal `json:"start_km"`
	EndKm      decimal.Decimal `json:"end_km"`
	PricePerKm decimal.Decimal `json:"price_per_km"`
}

type distanceTierRequest struct {
	StartKm    decimal.Decimal `json:"start_km"`
	EndKm      decimal.Decimal `json:"end_km"`
	PricePerKm decimal.Decimal `json:"price_per_km"`
}

type weightTierDTO struct {
	ID        int64           `json:"id"`
	MinKg     decimal.Decimal `json:"min_kg"`
	MaxKg     decimal.Decimal `json:"max_kg"`
	FeeAmount decimal.Decimal `json:"fee_amount"`
}

type weightTierRequest struct {
	MinKg     decimal.Decimal `json:"min_kg"`
	MaxKg     decimal.Decimal `json:"max_kg"`
	FeeAmount decimal.Decimal `json:"fee_amount"`
}

type windowDTO struct {
	ID         int64           `json:"id"`
	Kind       string          `json:"kind"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Percentage decimal.Decimal `json:"percentage"`
}

type windowRequest struct {
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Percentage decimal.Decimal `json:"percentage"`
}

type settingsDTO struct {
	ID                 int64           `json:"id,omitempty"`
	MinimumFee         int64           `json:"minimum_fee"`
	WeatherFee         decimal.Decimal `json:"weather_fee"`
	PriorityPercentage decimal.Decimal `json:"priority_percentage"`
	CreatedAt          *time.Time      `json:"created_at,omitempty"`
}

type settingsRequest struct {
	MinimumFee         int64           `json:"minimum_fee"`
	WeatherFee         decimal.Decimal `json:"weather_fee"`
	PriorityPercentage decimal.Decimal `json:"priority_percentage"`
}
