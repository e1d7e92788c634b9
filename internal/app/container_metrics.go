package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"delivery-fee-service/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	Pricing                *metrics.Pricing
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

// provideMetrics registers the service collectors on the default registry.
// Collectors that are already registered are reused, so building a second
// container in the same process does not fail.
func provideMetrics() (metricsOut, error) {
	var out metricsOut
	var err error

	if out.RateLimitExceededTotal, err = registerOrReuse("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}

	p := metrics.NewPricing()
	if p.Quotes, err = registerOrReuse("delivery_quotes_total", p.Quotes); err != nil {
		return metricsOut{}, err
	}
	if p.QuoteTotal, err = registerOrReuse("delivery_quote_total_amount", p.QuoteTotal); err != nil {
		return metricsOut{}, err
	}
	if p.TariffConflicts, err = registerOrReuse("tariff_validation_conflicts_total", p.TariffConflicts); err != nil {
		return metricsOut{}, err
	}
	if p.SnapshotCache, err = registerOrReuse("tariff_snapshot_cache_total", p.SnapshotCache); err != nil {
		return metricsOut{}, err
	}
	out.Pricing = p
	return out, nil
}

func registerOrReuse[T prometheus.Collector](name string, c T) (T, error) {
	err := prometheus.DefaultRegisterer.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("register %s: %w", name, err)
}
