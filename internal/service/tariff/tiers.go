package tariff

import (
	"context"

	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/ports/tarifftx"
	"delivery-fee-service/internal/pricing"
)

// ListDistanceTiers returns distance tiers in ascending start order.
func (s *Service) ListDistanceTiers(ctx context.Context) ([]domain.DistanceTier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.ListDistanceTiers(ctx)
}

// CreateDistanceTier adds a tier that must not overlap any stored tier.
func (s *Service) CreateDistanceTier(ctx context.Context, t domain.DistanceTier) (domain.DistanceTier, error) {
	if err := validateDistanceTier(t); err != nil {
		return domain.DistanceTier{}, err
	}
	t.ID = 0
	err := s.write(ctx, tarifftx.TableDistanceTiers, func(ctx context.Context, tx tarifftx.Repository) error {
		if err := checkDistanceTier(ctx, tx, t); err != nil {
			return err
		}
		return tx.InsertDistanceTier(ctx, &t)
	})
	if err != nil {
		return domain.DistanceTier{}, err
	}
	return t, nil
}

// UpdateDistanceTier replaces a tier; the tier itself is ignored by the overlap check.
func (s *Service) UpdateDistanceTier(ctx context.Context, t domain.DistanceTier) (domain.DistanceTier, error) {
	if err := requireID("distance tier", t.ID); err != nil {
		return domain.DistanceTier{}, err
	}
	if err := validateDistanceTier(t); err != nil {
		return domain.DistanceTier{}, err
	}
	err := s.write(ctx, tarifftx.TableDistanceTiers, func(ctx context.Context, tx tarifftx.Repository) error {
		if err := checkDistanceTier(ctx, tx, t); err != nil {
			return err
		}
		ok, err := tx.UpdateDistanceTier(ctx, t)
		return updateResult(ok, err, "distance tier", t.ID)
	})
	if err != nil {
		return domain.DistanceTier{}, err
	}
	return t, nil
}

// DeleteDistanceTier removes a tier.
func (s *Service) DeleteDistanceTier(ctx context.Context, id int64) error {
	return s.remove(ctx, "distance tier", id, func(ctx context.Context) (bool, error) {
		return s.store.DeleteDistanceTier(ctx, id)
	})
}

func validateDistanceTier(t domain.DistanceTier) error {
	if err := requireNonNegative("start_km", t.StartKm); err != nil {
		return err
	}
	if err := requireNonNegative("end_km", t.EndKm); err != nil {
		return err
	}
	return requireNonNegative("price_per_km", t.PricePerKm)
}

func checkDistanceTier(ctx context.Context, tx tarifftx.Repository, t domain.DistanceTier) error {
	existing, err := tx.ListDistanceTiers(ctx)
	if err != nil {
		return err
	}
	c := pricing.Interval{ID: t.ID, Start: t.StartKm, End: t.EndKm, Rate: t.PricePerKm}
	return pricing.DistanceTable(existing).ValidateNoOverlap(c, t.ID)
}

// ListWeightTiers returns weight tiers in ascending lower bound order.
func (s *Service) ListWeightTiers(ctx context.Context) ([]domain.WeightTier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.ListWeightTiers(ctx)
}

// CreateWeightTier adds a tier that must not overlap any stored tier.
func (s *Service) CreateWeightTier(ctx context.Context, t domain.WeightTier) (domain.WeightTier, error) {
	if err := validateWeightTier(t); err != nil {
		return domain.WeightTier{}, err
	}
	t.ID = 0
	err := s.write(ctx, tarifftx.TableWeightTiers, func(ctx context.Context, tx tarifftx.Repository) error {
		if err := checkWeightTier(ctx, tx, t); err != nil {
			return err
		}
		return tx.InsertWeightTier(ctx, &t)
	})
	if err != nil {
		return domain.WeightTier{}, err
	}
	return t, nil
}

// UpdateWeightTier replaces a tier; the tier itself is ignored by the overlap check.
func (s *Service) UpdateWeightTier(ctx context.Context, t domain.WeightTier) (domain.WeightTier, error) {
	if err := requireID("weight tier", t.ID); err != nil {
		return domain.WeightTier{}, err
	}
	if err := validateWeightTier(t); err != nil {
		return domain.WeightTier{}, err
	}
	err := s.write(ctx, tarifftx.TableWeightTiers, func(ctx context.Context, tx tarifftx.Repository) error {
		if err := checkWeightTier(ctx, tx, t); err != nil {
			return err
		}
		ok, err := tx.UpdateWeightTier(ctx, t)
		return updateResult(ok, err, "weight tier", t.ID)
	})
	if err != nil {
		return domain.WeightTier{}, err
	}
	return t, nil
}

// DeleteWeightTier removes a tier.
func (s *Service) DeleteWeightTier(ctx context.Context, id int64) error {
	return s.remove(ctx, "weight tier", id, func(ctx context.Context) (bool, error) {
		return s.store.DeleteWeightTier(ctx, id)
	})
}

func validateWeightTier(t domain.WeightTier) error {
	if err := requireNonNegative("min_kg", t.MinKg); err != nil {
		return err
	}
	if err := requireNonNegative("max_kg", t.MaxKg); err != nil {
		return err
	}
	return requireNonNegative("fee_amount", t.FeeAmount)
}

func checkWeightTier(ctx context.Context, tx tarifftx.Repository, t domain.WeightTier) error {
	existing, err := tx.ListWeightTiers(ctx)
	if err != nil {
		return err
	}
	c := pricing.Interval{ID: t.ID, Start: t.MinKg, End: t.MaxKg, Rate: t.FeeAmount}
	return pricing.WeightTable(existing).ValidateNoOverlap(c, t.ID)
}
