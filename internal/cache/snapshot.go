// Package cache keeps the tariff snapshot in Redis between admin writes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/logx"
)

// SnapshotKey prefixes the Redis keys holding serialized snapshots. Each
// generation gets its own key, SnapshotKey:<generation>.
const SnapshotKey = "delivery-fee:tariff-snapshot"

// GenerationKey holds the counter bumped by every Invalidate.
const GenerationKey = "delivery-fee:tariff-generation"

// Client is the part of a go-redis client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// Loader reads a fresh snapshot from the configuration store.
type Loader interface {
	LoadSnapshot(ctx context.Context) (domain.TariffSnapshot, error)
}

// SnapshotCache is a read-through cache in front of a Loader.
// Redis failures degrade to reading the store directly.
type SnapshotCache struct {
	client  Client
	loader  Loader
	ttl     time.Duration
	logger  logx.Logger
	lookups *prometheus.CounterVec
}

// NewSnapshotCache creates a new SnapshotCache. lookups may be nil.
func NewSnapshotCache(client Client, loader Loader, ttl time.Duration, logger logx.Logger, lookups *prometheus.CounterVec) *SnapshotCache {
	if logger == nil {
		logger = logx.Nop()
	}
	return &SnapshotCache{client: client, loader: loader, ttl: ttl, logger: logger, lookups: lookups}
}

// SnapshotKeyFor returns the key of the snapshot cached for generation gen.
func SnapshotKeyFor(gen int64) string {
	return fmt.Sprintf("%s:%d", SnapshotKey, gen)
}

// LoadSnapshot returns the cached snapshot or loads and caches a fresh one.
// The generation is read before the loader runs, so a load that races an
// Invalidate is stored under a generation no reader asks for again.
func (c *SnapshotCache) LoadSnapshot(ctx context.Context) (domain.TariffSnapshot, error) {
	gen, err := c.client.Get(ctx, GenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.count("error")
		c.logger.Warn("snapshot cache read failed", logx.Err(err))
		return c.loader.LoadSnapshot(ctx)
	}
	key := SnapshotKeyFor(gen)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var snap domain.TariffSnapshot
		uerr := json.Unmarshal(raw, &snap)
		if uerr == nil {
			c.count("hit")
			return snap, nil
		}
		c.logger.Warn("discarding unreadable cached snapshot", logx.Err(uerr))
		c.count("miss")
	case errors.Is(err, redis.Nil):
		c.count("miss")
	default:
		c.count("error")
		c.logger.Warn("snapshot cache read failed", logx.Err(err))
	}

	snap, err := c.loader.LoadSnapshot(ctx)
	if err != nil {
		return domain.TariffSnapshot{}, err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("snapshot cache encode failed", logx.Err(err))
		return snap, nil
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("snapshot cache write failed", logx.Err(err))
	}
	return snap, nil
}

// Invalidate moves readers to a new generation; the next read reloads.
// Snapshots of older generations expire with their TTL.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, GenerationKey).Err()
}

func (c *SnapshotCache) count(result string) {
	if c.lookups != nil {
		c.lookups.WithLabelValues(result).Inc()
	}
}

// NewClient creates a go-redis client for addr and db.
func NewClient(addr string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, DB: db})
}
