package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.TokenSecret != defaultTokenSecret {
		t.Errorf("expected default token secret %q, got %q", defaultTokenSecret, cfg.TokenSecret)
	}
	if cfg.TrackPollInterval != defaultTrackPollInterval {
		t.Errorf("expected default poll interval %v, got %v", defaultTrackPollInterval, cfg.TrackPollInterval)
	}
	if cfg.CourierPrepDelay != defaultCourierPrepDelay {
		t.Errorf("expected default prep delay %v, got %v", defaultCourierPrepDelay, cfg.CourierPrepDelay)
	}
	if !cfg.SimulateCourier {
		t.Errorf("expected courier simulation enabled by default")
	}
	if cfg.StorageBackend() != StorageMemory {
		t.Errorf("expected memory backend with no addresses, got %s", cfg.StorageBackend())
	}
}

func TestLoadWithFlagOverrides(t *testing.T) {
	env := map[string]string{
		"REDIS_ADDRESS":       "localhost:6379",
		"TRACK_POLL_INTERVAL": "2s",
		"SIMULATE_COURIER":    "false",
	}

	args := []string{
		"-a", ":9090",
		"-i", "http://identity.local",
		"--poll-interval", "7s",
		"--prep-delay", "3s",
		"--delivery-delay", "9s",
		"--shutdown-timeout", "20s",
		"--token-secret", "flag-secret",
	}

	cfg, err := load(args, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.IdentityProviderURL != "http://identity.local" {
		t.Errorf("expected identity provider override, got %q", cfg.IdentityProviderURL)
	}
	if cfg.TrackPollInterval != 7*time.Second {
		t.Errorf("expected poll interval 7s, got %v", cfg.TrackPollInterval)
	}
	if cfg.CourierPrepDelay != 3*time.Second {
		t.Errorf("expected prep delay 3s, got %v", cfg.CourierPrepDelay)
	}
	if cfg.CourierDeliveryDelay != 9*time.Second {
		t.Errorf("expected delivery delay 9s, got %v", cfg.CourierDeliveryDelay)
	}
	if cfg.ShutdownTimeout != 20*time.Second {
		t.Errorf("expected shutdown timeout 20s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.TokenSecret != "flag-secret" {
		t.Errorf("expected token secret override, got %q", cfg.TokenSecret)
	}
	if cfg.SimulateCourier {
		t.Errorf("expected courier simulation disabled via env")
	}
	if cfg.StorageBackend() != StorageRedis {
		t.Errorf("expected redis backend, got %s", cfg.StorageBackend())
	}
}

func TestStorageBackendSelection(t *testing.T) {
	cases := []struct {
		name  string
		redis string
		dsn   string
		want  string
	}{
		{"memory", "", "", StorageMemory},
		{"postgres", "", "postgres://db", StoragePostgres},
		{"redis", "localhost:6379", "", StorageRedis},
		{"redis wins over postgres", "localhost:6379", "postgres://db", StorageRedis},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{RedisAddress: tc.redis, DatabaseURI: tc.dsn}
			if got := cfg.StorageBackend(); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestLoadValidationErrors(t *testing.T) {
	_, err := load([]string{"--poll-interval", "bad"}, func(string) (string, bool) { return "", false })
	if err == nil || !strings.Contains(err.Error(), "invalid poll interval") {
		t.Fatalf("expected poll interval error, got %v", err)
	}

	_, err = load([]string{"--shutdown-timeout", "bad"}, func(string) (string, bool) { return "", false })
	if err == nil || !strings.Contains(err.Error(), "invalid shutdown timeout") {
		t.Fatalf("expected shutdown timeout error, got %v", err)
	}
}

func TestLoadDeliveryDelayMustFollowPrepDelay(t *testing.T) {
	cfg, err := load([]string{"--prep-delay", "10s", "--delivery-delay", "5s"}, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if cfg.CourierDeliveryDelay <= cfg.CourierPrepDelay {
		t.Fatalf("expected delivery delay to be pushed past prep delay, got %v <= %v", cfg.CourierDeliveryDelay, cfg.CourierPrepDelay)
	}
}

func TestLoadTokenSecretFromFile(t *testing.T) {
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "secret")
	if err := os.WriteFile(secretPath, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	env := map[string]string{"TOKEN_SECRET_FILE": secretPath}
	cfg, err := load(nil, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if cfg.TokenSecret != "file-secret" {
		t.Fatalf("expected secret from file, got %q", cfg.TokenSecret)
	}
}
