package config

import "time"

const defaultPort = 8080

const defaultLogLevel = "info"

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultRedis = Redis{
	Addr:     "",
	DB:       0,
	CacheTTL: 30 * time.Second,
}

var defaultKafka = Kafka{
	Brokers:     nil,
	OrdersTopic: "orders.events",
	GroupID:     "delivery-fee-worker",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

const defaultTimezone = "Africa/Nairobi"

const defaultOperationTimeout = 3 * time.Second

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRedis returns the default snapshot cache settings (cache disabled).
func DefaultRedis() Redis {
	return defaultRedis
}

// DefaultKafka returns the default order stream settings (no brokers).
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default quote rate limit.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
