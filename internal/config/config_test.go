package config

import (
	"testing"
	"time"

	"github.com/gridironlab/playenrich/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected app env %q", cfg.AppEnv)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level %v", cfg.LogLevel)
	}
	if cfg.ESPNTimeout != 30*time.Second {
		t.Fatalf("unexpected espn timeout %v", cfg.ESPNTimeout)
	}
	if cfg.ESPNMinRequestInterval != 500*time.Millisecond {
		t.Fatalf("unexpected min request interval %v", cfg.ESPNMinRequestInterval)
	}
	if !cfg.ESPNCacheEnabled {
		t.Fatal("cache must default to enabled")
	}
	if cfg.BatchWorkers != 4 {
		t.Fatalf("unexpected batch workers %d", cfg.BatchWorkers)
	}
	if cfg.MappingCachePath != "output/game_mappings.json" {
		t.Fatalf("unexpected mapping cache path %q", cfg.MappingCachePath)
	}
	if cfg.UptraceEnabled || cfg.PyroscopeEnabled {
		t.Fatal("observability must default to disabled")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ESPN_MIN_REQUEST_INTERVAL", "2s")
	t.Setenv("BATCH_WORKERS", "8")
	t.Setenv("ESPN_CACHE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppEnv != EnvProd {
		t.Fatalf("unexpected app env %q", cfg.AppEnv)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level %v", cfg.LogLevel)
	}
	if cfg.ESPNMinRequestInterval != 2*time.Second {
		t.Fatalf("unexpected interval %v", cfg.ESPNMinRequestInterval)
	}
	if cfg.BatchWorkers != 8 {
		t.Fatalf("unexpected workers %d", cfg.BatchWorkers)
	}
	if cfg.ESPNCacheEnabled {
		t.Fatal("cache override not applied")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad app env", key: "APP_ENV", value: "staging-west"},
		{name: "bad log level", key: "LOG_LEVEL", value: "loud"},
		{name: "bad interval", key: "ESPN_MIN_REQUEST_INTERVAL", value: "fast"},
		{name: "zero workers", key: "BATCH_WORKERS", value: "0"},
		{name: "bad cache flag", key: "ESPN_CACHE_ENABLED", value: "maybe"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoadRequiresDSNWhenUptraceEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when uptrace is enabled without a DSN")
	}

	t.Setenv("UPTRACE_DSN", "https://token@uptrace.example.com/1")
	if _, err := Load(); err != nil {
		t.Fatalf("load with dsn: %v", err)
	}
}

func TestLoadRequiresServerWhenPyroscopeEnabled(t *testing.T) {
	t.Setenv("PYROSCOPE_ENABLED", "true")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when pyroscope is enabled without a server")
	}

	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope.example.com:4040")
	if _, err := Load(); err != nil {
		t.Fatalf("load with server: %v", err)
	}
}
