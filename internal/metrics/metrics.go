package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a counter of quote requests rejected by the rate limiter.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// Pricing groups the counters of the quote and tariff services.
type Pricing struct {
	Quotes          *prometheus.CounterVec
	QuoteTotal      prometheus.Histogram
	TariffConflicts *prometheus.CounterVec
	SnapshotCache   *prometheus.CounterVec
}

// NewPricing creates unregistered pricing metrics.
func NewPricing() *Pricing {
	return &Pricing{
		Quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "delivery_quotes_total",
			Help: "Delivery quotes computed, by outcome",
		}, []string{"outcome"}),
		QuoteTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "delivery_quote_total_amount",
			Help:    "Distribution of quoted delivery totals",
			Buckets: []float64{100, 150, 200, 300, 500, 750, 1000, 2000, 5000},
		}),
		TariffConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tariff_validation_conflicts_total",
			Help: "Tariff writes rejected by range validation, by table",
		}, []string{"table"}),
		SnapshotCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tariff_snapshot_cache_total",
			Help: "Tariff snapshot cache lookups, by result",
		}, []string{"result"}),
	}
}

// Collectors lists everything that must be registered.
func (p *Pricing) Collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Quotes, p.QuoteTotal, p.TariffConflicts, p.SnapshotCache}
}

// Register registers the pricing metrics on reg.
func (p *Pricing) Register(reg prometheus.Registerer) error {
	for _, c := range p.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
