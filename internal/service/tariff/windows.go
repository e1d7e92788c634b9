package tariff

import (
	"context"
	"fmt"

	"delivery-fee-service/internal/apperr"
	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/ports/tarifftx"
	"delivery-fee-service/internal/pricing"
)

// ListWindows returns the windows of kind in ascending start order.
func (s *Service) ListWindows(ctx context.Context, kind domain.WindowKind) ([]domain.TimeWindow, error) {
	if !kind.Valid() {
		return nil, invalidKind(kind)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.ListWindows(ctx, kind)
}

// CreateWindow adds a window that must not overlap another window of its kind.
func (s *Service) CreateWindow(ctx context.Context, w domain.TimeWindow) (domain.TimeWindow, error) {
	w.ID = 0
	table, c, err := prepareWindow(&w)
	if err != nil {
		return domain.TimeWindow{}, err
	}
	err = s.write(ctx, table, func(ctx context.Context, tx tarifftx.Repository) error {
		if err := checkWindow(ctx, tx, w.Kind, c); err != nil {
			return err
		}
		return tx.InsertWindow(ctx, &w)
	})
	if err != nil {
		return domain.TimeWindow{}, err
	}
	return w, nil
}

// UpdateWindow replaces a window; the window itself is ignored by the overlap check.
func (s *Service) UpdateWindow(ctx context.Context, w domain.TimeWindow) (domain.TimeWindow, error) {
	if err := requireID(string(w.Kind)+" window", w.ID); err != nil {
		return domain.TimeWindow{}, err
	}
	table, c, err := prepareWindow(&w)
	if err != nil {
		return domain.TimeWindow{}, err
	}
	err = s.write(ctx, table, func(ctx context.Context, tx tarifftx.Repository) error {
		if err := checkWindow(ctx, tx, w.Kind, c); err != nil {
			return err
		}
		ok, err := tx.UpdateWindow(ctx, w)
		return updateResult(ok, err, string(w.Kind)+" window", w.ID)
	})
	if err != nil {
		return domain.TimeWindow{}, err
	}
	return w, nil
}

// DeleteWindow removes a window of kind.
func (s *Service) DeleteWindow(ctx context.Context, kind domain.WindowKind, id int64) error {
	if !kind.Valid() {
		return invalidKind(kind)
	}
	return s.remove(ctx, string(kind)+" window", id, func(ctx context.Context) (bool, error) {
		return s.store.DeleteWindow(ctx, kind, id)
	})
}

// prepareWindow validates the input and normalizes Start and End to the
// canonical clock form.
func prepareWindow(w *domain.TimeWindow) (tarifftx.Table, pricing.Window, error) {
	table, ok := tarifftx.WindowTable(w.Kind)
	if !ok {
		return "", pricing.Window{}, invalidKind(w.Kind)
	}
	start, err := domain.ParseClock(w.Start)
	if err != nil {
		return "", pricing.Window{}, fmt.Errorf("%w: start_time: %v", apperr.ErrInvalid, err)
	}
	end, err := domain.ParseClock(w.End)
	if err != nil {
		return "", pricing.Window{}, fmt.Errorf("%w: end_time: %v", apperr.ErrInvalid, err)
	}
	if err := requireNonNegative("percentage", w.Percentage); err != nil {
		return "", pricing.Window{}, err
	}
	w.Start, w.End = start.String(), end.String()
	return table, pricing.Window{ID: w.ID, Start: start, End: end, Percentage: w.Percentage}, nil
}

func checkWindow(ctx context.Context, tx tarifftx.Repository, kind domain.WindowKind, c pricing.Window) error {
	stored, err := tx.ListWindows(ctx, kind)
	if err != nil {
		return err
	}
	existing := make([]pricing.Window, 0, len(stored))
	for _, tw := range stored {
		w, err := pricing.ParseWindow(tw)
		if err != nil {
			continue
		}
		existing = append(existing, w)
	}
	return pricing.ValidateWindow(c, existing, c.ID)
}

func invalidKind(kind domain.WindowKind) error {
	return fmt.Errorf("%w: unknown window kind %q", apperr.ErrInvalid, kind)
}

func updateResult(ok bool, err error, what string, id int64) error {
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", what, id, apperr.ErrNotFound)
	}
	return nil
}
