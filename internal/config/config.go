package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // pricing timezone must resolve on minimal images

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service and worker settings.
type Config struct {
	Port      int
	LogLevel  string
	DB        DB
	Redis     Redis
	Kafka     Kafka
	RateLimit RateLimit
	Pricing   Pricing
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN renders a pgx connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Redis stores the tariff snapshot cache settings. An empty Addr disables the cache.
type Redis struct {
	Addr     string
	DB       int
	CacheTTL time.Duration
}

// Enabled reports whether a Redis address is configured.
func (r Redis) Enabled() bool { return strings.TrimSpace(r.Addr) != "" }

// Kafka stores the order event stream settings.
type Kafka struct {
	Brokers     []string
	OrdersTopic string
	GroupID     string
}

// RateLimit stores per-client limits for the quote endpoint.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pricing stores quote computation settings.
type Pricing struct {
	Timezone         string
	Location         *time.Location
	OperationTimeout time.Duration
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs is Load with explicit command line arguments.
func LoadArgs(args []string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		LogLevel:  envOr("LOG_LEVEL", defaultLogLevel),
		DB:        defaultDB,
		Redis:     defaultRedis,
		Kafka:     defaultKafka,
		RateLimit: defaultRateLimit,
		Pricing: Pricing{
			Timezone:         envOr("PRICING_TIMEZONE", defaultTimezone),
			OperationTimeout: defaultOperationTimeout,
		},
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if err := loadDB(&cfg.DB); err != nil {
		return nil, err
	}
	if err := loadRedis(&cfg.Redis); err != nil {
		return nil, err
	}
	loadKafka(&cfg.Kafka)
	if err := loadRateLimit(&cfg.RateLimit); err != nil {
		return nil, err
	}
	if cfg.Pricing.OperationTimeout, err = envDuration("PRICING_OPERATION_TIMEOUT", cfg.Pricing.OperationTimeout); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("delivery-fee-service", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Pricing.Timezone, "timezone", cfg.Pricing.Timezone, "IANA zone used when a quote has no delivery time")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	loc, err := time.LoadLocation(cfg.Pricing.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICING_TIMEZONE %q: %w", cfg.Pricing.Timezone, err)
	}
	cfg.Pricing.Location = loc
	return cfg, nil
}

func loadDB(db *DB) error {
	db.Host = envOr("POSTGRES_HOST", db.Host)
	db.Port = envOr("POSTGRES_PORT", db.Port)
	db.User = envOr("POSTGRES_USER", db.User)
	db.Pass = envOr("POSTGRES_PASSWORD", db.Pass)
	db.Name = envOr("POSTGRES_DB", db.Name)
	if p, err := strconv.Atoi(db.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid POSTGRES_PORT: %q", db.Port)
	}
	return nil
}

func loadRedis(r *Redis) error {
	r.Addr = envOr("REDIS_ADDR", r.Addr)
	var err error
	if r.DB, err = envInt("REDIS_DB", r.DB); err != nil {
		return err
	}
	if r.CacheTTL, err = envDuration("PRICING_CACHE_TTL", r.CacheTTL); err != nil {
		return err
	}
	return nil
}

func loadKafka(k *Kafka) {
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		k.Brokers = nil
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				k.Brokers = append(k.Brokers, b)
			}
		}
	}
	k.OrdersTopic = envOr("KAFKA_ORDERS_TOPIC", k.OrdersTopic)
	k.GroupID = envOr("KAFKA_GROUP_ID", k.GroupID)
}

func loadRateLimit(rl *RateLimit) error {
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_ENABLED: %q", v)
		}
		rl.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_RPS: %q", v)
		}
		rl.Rate = f
	}
	var err error
	if rl.Burst, err = envInt("RATE_LIMIT_BURST", rl.Burst); err != nil {
		return err
	}
	if rl.TTL, err = envDuration("RATE_LIMIT_TTL", rl.TTL); err != nil {
		return err
	}
	if rl.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets); err != nil {
		return err
	}
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}
