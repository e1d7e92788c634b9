package handlers

import (
	"fmt"

	"delivery-fee-service/internal/apperr"
	"delivery-fee-service/internal/domain"
)

func (req quoteRequest) toModel() (domain.PricingRequest, error) {
	out := domain.PricingRequest{
		DistanceKm: req.DistanceKm,
		WeightKg:   req.WeightKg,
		IsWeather:  req.IsWeather,
		IsPriority: req.IsPriority,
		Tip:        req.Tip,
	}
	if req.DeliveryTime != nil {
		c, err := domain.ParseClock(*req.DeliveryTime)
		if err != nil {
			return domain.PricingRequest{}, fmt.Errorf("%w: delivery_time: %v", apperr.ErrInvalid, err)
		}
		out.DeliveryTime = &c
	}
	return out, nil
}

func quoteToResponse(res domain.PricingResult) quoteResponse {
	return quoteResponse{
		BaseCost:    res.BaseCost.StringFixed(2),
		WeatherFee:  res.WeatherFee.StringFixed(2),
		WeightFee:   res.WeightFee.StringFixed(2),
		PriorityFee: res.PriorityFee.StringFixed(2),
		PeakFee:     res.PeakFee.StringFixed(2),
		NightFee:    res.NightFee.StringFixed(2),
		Tip:         res.Tip.StringFixed(2),
		Total:       res.Total.StringFixed(2),
	}
}

func (req distanceTierRequest) toModel(id int64) domain.DistanceTier {
	return domain.DistanceTier{ID: id, StartKm: req.StartKm, EndKm: req.EndKm, PricePerKm: req.PricePerKm}
}

func distanceTierToDTO(t domain.DistanceTier) distanceTierDTO {
	return distanceTierDTO{ID: t.ID, StartKm: t.StartKm, EndKm: t.EndKm, PricePerKm: t.PricePerKm}
}

func (req weightTierRequest) toModel(id int64) domain.WeightTier {
	return domain.WeightTier{ID: id, MinKg: req.MinKg, MaxKg: req.MaxKg, FeeAmount: req.FeeAmount}
}

func weightTierToDTO(t domain.WeightTier) weightTierDTO {
	return weightTierDTO{ID: t.ID, MinKg: t.MinKg, MaxKg: t.MaxKg, FeeAmount: t.FeeAmount}
}

func (req windowRequest) toModel(kind domain.WindowKind, id int64) domain.TimeWindow {
	return domain.TimeWindow{ID: id, Kind: kind, Start: req.StartTime, End: req.EndTime, Percentage: req.Percentage}
}

func windowToDTO(w domain.TimeWindow) windowDTO {
	return windowDTO{ID: w.ID, Kind: string(w.Kind), StartTime: w.Start, EndTime: w.End, Percentage: w.Percentage}
}

func (req settingsRequest) toModel() domain.DeliverySettings {
	return domain.DeliverySettings{
		MinimumFee:         req.MinimumFee,
		WeatherFee:         req.WeatherFee,
		PriorityPercentage: req.PriorityPercentage,
	}
}

func settingsToDTO(s domain.DeliverySettings) settingsDTO {
	out := settingsDTO{
		ID:                 s.ID,
		MinimumFee:         s.MinimumFee,
		WeatherFee:         s.WeatherFee,
		PriorityPercentage: s.PriorityPercentage,
	}
	if !s.CreatedAt.IsZero() {
		created := s.CreatedAt
		out.CreatedAt = &created
	}
	return out
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
