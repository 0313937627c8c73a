package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Storage backend identifiers.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	RedisAddress         string
	DatabaseURI          string
	IdentityProviderURL  string
	TokenSecret          string
	TrackPollInterval    time.Duration
	CourierPrepDelay     time.Duration
	CourierDeliveryDelay time.Duration
	SimulateCourier      bool
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultTokenSecret          = "change-me-in-production"
	defaultTrackPollInterval    = 5 * time.Second
	defaultCourierPrepDelay     = 15 * time.Second
	defaultCourierDeliveryDelay = 45 * time.Second
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		RedisAddress:         getString(lookup, "REDIS_ADDRESS", ""),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		IdentityProviderURL:  getString(lookup, "IDENTITY_PROVIDER_ADDRESS", ""),
		TokenSecret:          getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		TrackPollInterval:    getDuration(lookup, "TRACK_POLL_INTERVAL", defaultTrackPollInterval),
		CourierPrepDelay:     getDuration(lookup, "COURIER_PREP_DELAY", defaultCourierPrepDelay),
		CourierDeliveryDelay: getDuration(lookup, "COURIER_DELIVERY_DELAY", defaultCourierDeliveryDelay),
		SimulateCourier:      getBool(lookup, "SIMULATE_COURIER", true),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orderd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.TrackPollInterval.String()
		prepDelayStr       = cfg.CourierPrepDelay.String()
		deliveryDelayStr   = cfg.CourierDeliveryDelay.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "Redis address for the KV store")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the KV store")
	fs.StringVar(&cfg.IdentityProviderURL, "i", cfg.IdentityProviderURL, "Identity provider base URL")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for verifying bearer tokens locally")
	fs.BoolVar(&cfg.SimulateCourier, "simulate-courier", cfg.SimulateCourier, "Drive order status with the built-in courier simulation")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between tracking polls")
	fs.StringVar(&prepDelayStr, "prep-delay", prepDelayStr, "Simulated delay before an order leaves the kitchen")
	fs.StringVar(&deliveryDelayStr, "delivery-delay", deliveryDelayStr, "Simulated delay before an order is delivered")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TrackPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}
	if cfg.CourierPrepDelay, err = time.ParseDuration(prepDelayStr); err != nil {
		return nil, fmt.Errorf("invalid prep delay: %w", err)
	}
	if cfg.CourierDeliveryDelay, err = time.ParseDuration(deliveryDelayStr); err != nil {
		return nil, fmt.Errorf("invalid delivery delay: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.TrackPollInterval <= 0 {
		cfg.TrackPollInterval = defaultTrackPollInterval
	}
	if cfg.CourierPrepDelay <= 0 {
		cfg.CourierPrepDelay = defaultCourierPrepDelay
	}
	if cfg.CourierDeliveryDelay <= cfg.CourierPrepDelay {
		cfg.CourierDeliveryDelay = cfg.CourierPrepDelay + defaultCourierPrepDelay
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.IdentityProviderURL == "" && cfg.TokenSecret == "" {
		return nil, fmt.Errorf("either identity provider address or token secret must be provided")
	}

	return cfg, nil
}

// StorageBackend picks the KV backend from the configured addresses. Redis
// wins when both are set because it offers the atomic index prepend.
func (c *Config) StorageBackend() string {
	switch {
	case c.RedisAddress != "":
		return StorageRedis
	case c.DatabaseURI != "":
		return StoragePostgres
	default:
		return StorageMemory
	}
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
