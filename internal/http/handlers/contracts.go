package handlers

import (
	"context"

	"delivery-fee-service/internal/domain"
)

type quoteUsecase interface {
	Quote(ctx context.Context, req domain.PricingRequest) (domain.PricingResult, error)
}

type tariffUsecase interface {
	ListDistanceTiers(ctx context.Context) ([]domain.DistanceTier, error)
	CreateDistanceTier(ctx context.Context, t domain.DistanceTier) (domain.DistanceTier, error)
	UpdateDistanceTier(ctx context.Context, t domain.DistanceTier) (domain.DistanceTier, error)
	DeleteDistanceTier(ctx context.Context, id int64) error

	ListWeightTiers(ctx context.Context) ([]domain.WeightTier, error)
	CreateWeightTier(ctx context.Context, t domain.WeightTier) (domain.WeightTier, error)
	UpdateWeightTier(ctx context.Context, t domain.WeightTier) (domain.WeightTier, error)
	DeleteWeightTier(ctx context.Context, id int64) error

	ListWindows(ctx context.Context, kind domain.WindowKind) ([]domain.TimeWindow, error)
	CreateWindow(ctx context.Context, w domain.TimeWindow) (domain.TimeWindow, error)
	UpdateWindow(ctx context.Context, w domain.TimeWindow) (domain.TimeWindow, error)
	DeleteWindow(ctx context.Context, kind domain.WindowKind, id int64) error

	Settings(ctx context.Context) (domain.DeliverySettings, error)
	UpdateSettings(ctx context.Context, s domain.DeliverySettings) (domain.DeliverySettings, error)
}
