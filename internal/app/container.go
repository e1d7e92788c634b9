package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"delivery-fee-service/internal/cache"
	"delivery-fee-service/internal/config"
	"delivery-fee-service/internal/http/handlers"
	"delivery-fee-service/internal/http/router"
	"delivery-fee-service/internal/logx"
	"delivery-fee-service/internal/metrics"
	"delivery-fee-service/internal/pricing"
	"delivery-fee-service/internal/repository"
	"delivery-fee-service/internal/service/quote"
	"delivery-fee-service/internal/service/tariff"
)

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

// cacheCloser releases the snapshot cache connection; nil when the cache is disabled.
type cacheCloser func() error

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		logFatalf:  log.Fatalf,
	}
}

// WithConfigLoader sets the configuration source
func (b *ContainerBuilder) WithConfigLoader(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the API container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the order event worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) base(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the API container with default settings.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container with default settings.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		func(cfg *config.Config) logx.Logger { return NewLogger(cfg.LogLevel) },
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, logger logx.Logger, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type snapshotOut struct {
	dig.Out

	Source      quote.SnapshotSource
	Invalidator tariff.Invalidator
	Closer      cacheCloser
}

// provideSnapshots puts the Redis cache in front of the tariff tables when configured.
func provideSnapshots(cfg *config.Config, repo *repository.TariffRepo, logger logx.Logger, m *metrics.Pricing) snapshotOut {
	if !cfg.Redis.Enabled() {
		logger.Info("tariff snapshot cache disabled")
		return snapshotOut{Source: repo}
	}
	client := cache.NewClient(cfg.Redis.Addr, cfg.Redis.DB)
	c := cache.NewSnapshotCache(client, repo, cfg.Redis.CacheTTL, logger, m.SnapshotCache)
	logger.Info("tariff snapshot cache enabled",
		logx.String("addr", cfg.Redis.Addr),
		logx.Duration("ttl", cfg.Redis.CacheTTL),
	)
	return snapshotOut{Source: c, Invalidator: c, Closer: client.Close}
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewTariffRepo,
		repository.NewQuoteRepo,
		pricing.NewEngine,
		provideSnapshots,
		func(
			src quote.SnapshotSource,
			engine *pricing.Engine,
			cfg *config.Config,
			logger logx.Logger,
			m *metrics.Pricing,
		) *quote.Service {
			return quote.NewService(src, engine, cfg.Pricing.Location, cfg.Pricing.OperationTimeout, logger,
				quote.WithMetrics(m))
		},
		func(
			repo *repository.TariffRepo,
			inv tariff.Invalidator,
			cfg *config.Config,
			logger logx.Logger,
			m *metrics.Pricing,
		) *tariff.Service {
			return tariff.NewService(repo, inv, cfg.Pricing.OperationTimeout, logger, m)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(logger logx.Logger, svc *quote.Service) *handlers.QuoteHandler {
			return handlers.NewQuoteHandler(logger, svc)
		},
		func(logger logx.Logger, svc *tariff.Service) *handlers.TariffHandler {
			return handlers.NewTariffHandler(logger, svc)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}
