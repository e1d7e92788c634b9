package tariff

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"delivery-fee-service/internal/apperr"
	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/logx"
	"delivery-fee-service/internal/metrics"
	"delivery-fee-service/internal/ports/tarifftx"
)

// Service manages the tariff tables and delivery settings.
type Service struct {
	store            Store
	cache            Invalidator
	operationTimeout time.Duration
	logger           logx.Logger
	metrics          *metrics.Pricing
}

// NewService creates a tariff Service. cache and m may be nil.
func NewService(store Store, cache Invalidator, timeout time.Duration, logger logx.Logger, m *metrics.Pricing) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		store:            store,
		cache:            cache,
		operationTimeout: timeout,
		logger:           logger,
		metrics:          m,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// write runs fn in a transaction holding the writer lock on table, so the
// overlap check and the write see the same rows.
func (s *Service) write(ctx context.Context, table tarifftx.Table, fn func(ctx context.Context, tx tarifftx.Repository) error) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.store.WithTx(ctx, func(tx tarifftx.Repository) error {
		if err := tx.Lock(ctx, table); err != nil {
			return err
		}
		return fn(ctx, tx)
	})
	if err != nil {
		if reason, ok := apperr.Reason(err); ok {
			s.conflict(table, reason)
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) conflict(table tarifftx.Table, reason string) {
	s.logger.Info("tariff write rejected",
		logx.String("table", string(table)),
		logx.String("reason", reason),
	)
	if s.metrics != nil {
		s.metrics.TariffConflicts.WithLabelValues(string(table)).Inc()
	}
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("tariff cache invalidation failed", logx.Err(err))
	}
}

func (s *Service) remove(ctx context.Context, what string, id int64, del func(ctx context.Context) (bool, error)) error {
	if err := requireID(what, id); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := del(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", what, id, apperr.ErrNotFound)
	}
	s.invalidate(ctx)
	return nil
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperr.ErrInvalid, field)
	}
	return nil
}

func requireID(what string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be positive", apperr.ErrInvalid, what)
	}
	return nil
}

// Settings returns the current settings, or the defaults when none are stored.
func (s *Service) Settings(ctx context.Context) (domain.DeliverySettings, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cur, err := s.store.LatestSettings(ctx)
	if err != nil {
		return domain.DeliverySettings{}, err
	}
	if cur == nil {
		return domain.DefaultSettings(), nil
	}
	return *cur, nil
}

// UpdateSettings stores in as the new current settings row.
func (s *Service) UpdateSettings(ctx context.Context, in domain.DeliverySettings) (domain.DeliverySettings, error) {
	if in.MinimumFee < 0 {
		return domain.DeliverySettings{}, fmt.Errorf("%w: minimum_fee must not be negative", apperr.ErrInvalid)
	}
	if err := requireNonNegative("weather_fee", in.WeatherFee); err != nil {
		return domain.DeliverySettings{}, err
	}
	if err := requireNonNegative("priority_percentage", in.PriorityPercentage); err != nil {
		return domain.DeliverySettings{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	in.ID = 0
	if err := s.store.InsertSettings(ctx, &in); err != nil {
		return domain.DeliverySettings{}, err
	}
	s.invalidate(ctx)
	return in, nil
}
