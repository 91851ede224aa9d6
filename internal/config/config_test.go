package config

import (
	"os"
	"testing"
	"time"
)

var envVars = []string{
	"SERVER_PORT",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSL_MODE",
	"DB_MAX_CONNS",
	"DB_MIN_CONNS",
	"RUN_MIGRATIONS",
	"EVENT_BUS",
	"OUTBOX_POLL_INTERVAL",
	"OUTBOX_BATCH_SIZE",
	"OUTBOX_MAX_ATTEMPTS",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"LOG_LEVEL",
}

// clearEnv unsets all config variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envVars {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "blog_cms" {
			t.Errorf("DBName = %v, want blog_cms", cfg.DBName)
		}
		if cfg.DBMaxConns != 25 {
			t.Errorf("DBMaxConns = %v, want 25", cfg.DBMaxConns)
		}
		if !cfg.RunMigrations {
			t.Errorf("RunMigrations = false, want true")
		}
		if cfg.EventBus != EventBusInProcess {
			t.Errorf("EventBus = %v, want %v", cfg.EventBus, EventBusInProcess)
		}
		if cfg.OutboxPollInterval != 2*time.Second {
			t.Errorf("OutboxPollInterval = %v, want 2s", cfg.OutboxPollInterval)
		}
		if cfg.OutboxBatchSize != 100 {
			t.Errorf("OutboxBatchSize = %v, want 100", cfg.OutboxBatchSize)
		}
		if cfg.OutboxMaxAttempts != 5 {
			t.Errorf("OutboxMaxAttempts = %v, want 5", cfg.OutboxMaxAttempts)
		}
		if cfg.RateLimitRPS != 20 {
			t.Errorf("RateLimitRPS = %v, want 20", cfg.RateLimitRPS)
		}
		if cfg.RateLimitBurst != 40 {
			t.Errorf("RateLimitBurst = %v, want 40", cfg.RateLimitBurst)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("RUN_MIGRATIONS", "false")
		t.Setenv("EVENT_BUS", "OUTBOX")
		t.Setenv("OUTBOX_POLL_INTERVAL", "500ms")
		t.Setenv("OUTBOX_BATCH_SIZE", "25")
		t.Setenv("OUTBOX_MAX_ATTEMPTS", "3")
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "5")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.RunMigrations {
			t.Errorf("RunMigrations = true, want false")
		}
		if cfg.EventBus != EventBusOutbox {
			t.Errorf("EventBus = %v, want %v", cfg.EventBus, EventBusOutbox)
		}
		if cfg.OutboxPollInterval != 500*time.Millisecond {
			t.Errorf("OutboxPollInterval = %v, want 500ms", cfg.OutboxPollInterval)
		}
		if cfg.OutboxBatchSize != 25 {
			t.Errorf("OutboxBatchSize = %v, want 25", cfg.OutboxBatchSize)
		}
		if cfg.OutboxMaxAttempts != 3 {
			t.Errorf("OutboxMaxAttempts = %v, want 3", cfg.OutboxMaxAttempts)
		}
		if cfg.RateLimitRPS != 2.5 {
			t.Errorf("RateLimitRPS = %v, want 2.5", cfg.RateLimitRPS)
		}
		if cfg.RateLimitBurst != 5 {
			t.Errorf("RateLimitBurst = %v, want 5", cfg.RateLimitBurst)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_PORT", "not-a-port")
		t.Setenv("OUTBOX_POLL_INTERVAL", "soon")
		t.Setenv("RUN_MIGRATIONS", "maybe")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.OutboxPollInterval != 2*time.Second {
			t.Errorf("OutboxPollInterval = %v, want 2s", cfg.OutboxPollInterval)
		}
		if !cfg.RunMigrations {
			t.Errorf("RunMigrations = false, want true")
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DBMaxConnIdleTime != 30*time.Minute {
			t.Errorf("DBMaxConnIdleTime = %v, want 30m", cfg.DBMaxConnIdleTime)
		}
		if cfg.DBHealthCheckPeriod != time.Minute {
			t.Errorf("DBHealthCheckPeriod = %v, want 1m", cfg.DBHealthCheckPeriod)
		}
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown event bus", "EVENT_BUS", "kafka"},
		{"zero outbox batch", "OUTBOX_BATCH_SIZE", "0"},
		{"zero outbox attempts", "OUTBOX_MAX_ATTEMPTS", "0"},
		{"negative poll interval", "OUTBOX_POLL_INTERVAL", "-1s"},
		{"zero rate", "RATE_LIMIT_RPS", "0"},
		{"zero burst", "RATE_LIMIT_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s: expected error", tt.key, tt.val)
			}
		})
	}
}
