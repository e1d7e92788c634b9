package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-fee-service/internal/apperr"
	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/logx"
	"delivery-fee-service/internal/metrics"
	"delivery-fee-service/internal/pricing"
)

// Service computes delivery quotes against the current tariff snapshot.
type Service struct {
	snapshots        SnapshotSource
	engine           *pricing.Engine
	location         *time.Location
	operationTimeout time.Duration
	logger           logx.Logger
	metrics          *metrics.Pricing
	now              func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithMetrics records quote outcomes and totals.
func WithMetrics(m *metrics.Pricing) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService creates a quote Service. A nil location means UTC.
func NewService(src SnapshotSource, engine *pricing.Engine, loc *time.Location, timeout time.Duration, logger logx.Logger, opts ...Option) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if engine == nil {
		engine = pricing.NewEngine(logger)
	}
	s := &Service{
		snapshots:        src,
		engine:           engine,
		location:         loc,
		operationTimeout: timeout,
		logger:           logger,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Quote prices req; a request without delivery time is priced at the current
// time of day in the service location.
func (s *Service) Quote(ctx context.Context, req domain.PricingRequest) (domain.PricingResult, error) {
	return s.QuoteAt(ctx, req, s.now())
}

// QuoteAt prices req as if it were made at the instant at.
func (s *Service) QuoteAt(ctx context.Context, req domain.PricingRequest, at time.Time) (domain.PricingResult, error) {
	if !req.DistanceKm.IsPositive() {
		s.observe("invalid", nil)
		return domain.PricingResult{}, fmt.Errorf("%w: distance_km must be greater than zero", apperr.ErrInvalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	snap, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		s.observe("error", nil)
		s.logger.Error("load tariff snapshot", logx.Err(err))
		return domain.PricingResult{}, fmt.Errorf("load tariff snapshot: %w", err)
	}

	res, err := s.engine.Compute(req, snap, at.In(s.location))
	if err != nil {
		if errors.Is(err, apperr.ErrInvalid) {
			s.observe("invalid", nil)
		} else {
			s.observe("error", nil)
		}
		return domain.PricingResult{}, err
	}
	s.observe("ok", &res)
	return res, nil
}

func (s *Service) observe(outcome string, res *domain.PricingResult) {
	if s.metrics == nil {
		return
	}
	s.metrics.Quotes.WithLabelValues(outcome).Inc()
	if res != nil {
		s.metrics.QuoteTotal.Observe(res.Total.InexactFloat64())
	}
}
