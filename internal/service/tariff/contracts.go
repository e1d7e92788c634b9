//go:generate mockgen -source=contracts.go -destination=tariff_mocks_test.go -package=tariff_test

package tariff

import (
	"context"

	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/ports/tarifftx"
)

// Store is the configuration store used outside of write transactions.
type Store interface {
	tarifftx.Runner

	ListDistanceTiers(ctx context.Context) ([]domain.DistanceTier, error)
	ListWeightTiers(ctx context.Context) ([]domain.WeightTier, error)
	ListWindows(ctx context.Context, kind domain.WindowKind) ([]domain.TimeWindow, error)

	DeleteDistanceTier(ctx context.Context, id int64) (bool, error)
	DeleteWeightTier(ctx context.Context, id int64) (bool, error)
	DeleteWindow(ctx context.Context, kind domain.WindowKind, id int64) (bool, error)

	LatestSettings(ctx context.Context) (*domain.DeliverySettings, error)
	InsertSettings(ctx context.Context, s *domain.DeliverySettings) error
}

// Invalidator drops cached copies of the configuration after a write.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}
