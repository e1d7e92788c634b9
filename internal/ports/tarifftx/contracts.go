package tarifftx

import (
	"context"

	"delivery-fee-service/internal/domain"
)

// Table names a tariff table that writers lock before validating.
type Table string

// Tariff tables.
const (
	TableDistanceTiers Table = "distance_tiers"
	TableWeightTiers   Table = "weight_tiers"
	TablePeakHours     Table = "peak_hours"
	TableNightHours    Table = "night_hours"
)

// WindowTable maps a window kind to its table.
func WindowTable(kind domain.WindowKind) (Table, bool) {
	switch kind {
	case domain.WindowPeak:
		return TablePeakHours, true
	case domain.WindowNight:
		return TableNightHours, true
	default:
		return "", false
	}
}

// Repository is the tariff store seen from inside a write transaction.
type Repository interface {
	Lock(ctx context.Context, table Table) error

	ListDistanceTiers(ctx context.Context) ([]domain.DistanceTier, error)
	InsertDistanceTier(ctx context.Context, t *domain.DistanceTier) error
	UpdateDistanceTier(ctx context.Context, t domain.DistanceTier) (bool, error)

	ListWeightTiers(ctx context.Context) ([]domain.WeightTier, error)
	InsertWeightTier(ctx context.Context, t *domain.WeightTier) error
	UpdateWeightTier(ctx context.Context, t domain.WeightTier) (bool, error)

	ListWindows(ctx context.Context, kind domain.WindowKind) ([]domain.TimeWindow, error)
	InsertWindow(ctx context.Context, w *domain.TimeWindow) error
	UpdateWindow(ctx context.Context, w domain.TimeWindow) (bool, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
