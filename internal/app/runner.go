package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"delivery-fee-service/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP server
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP server using the provided DI container and blocks
// until the container context is done.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := loggerFrom(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Info("startup aborted: startup timeout exceeded")
	default:
		log.Fatalf("run error: %v", err)
	}
}

func loggerFrom(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.Nop()
	}
	return logger
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(
	ctx context.Context,
	server *http.Server,
	pool *pgxpool.Pool,
	logger logx.Logger,
	closeCache cacheCloser,
) error {
	errCh := startServer(server, logger)

	select {
	case <-ctx.Done():
		logger.Info("shutting down service-pricing")
	case err := <-errCh:
		closeResources(pool, closeCache, logger)
		return err
	}

	gracefulShutdown(server, logger, shutdownTimeout)
	closeResources(pool, closeCache, logger)
	return ctx.Err()
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("service-pricing listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, closeCache cacheCloser, logger logx.Logger) {
	if closeCache != nil {
		if err := closeCache(); err != nil {
			logger.Error("cache close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
