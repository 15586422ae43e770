package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.HorizonDays != defaultHorizonDays {
		t.Fatalf("HorizonDays = %d", cfg.HorizonDays)
	}
	if cfg.RefreshInterval != 0 {
		t.Fatalf("RefreshInterval = %v", cfg.RefreshInterval)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("metrics should default off")
	}
	if cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("Metrics.Port = %q", cfg.Metrics.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envHorizonDays, "7")
	t.Setenv(envRefreshInterval, "5m")
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envESPNBaseURL, "https://stub.test/espn")
	t.Setenv(envSportsDBKey, "123456")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.HorizonDays != 7 {
		t.Fatalf("HorizonDays = %d", cfg.HorizonDays)
	}
	if cfg.RefreshInterval != 5*time.Minute {
		t.Fatalf("RefreshInterval = %v", cfg.RefreshInterval)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("metrics should be enabled")
	}
	if cfg.Feeds.ESPNBaseURL != "https://stub.test/espn" {
		t.Fatalf("ESPNBaseURL = %q", cfg.Feeds.ESPNBaseURL)
	}
	if cfg.Feeds.SportsDBAPIKey != "123456" {
		t.Fatalf("SportsDBAPIKey = %q", cfg.Feeds.SportsDBAPIKey)
	}
}

func TestIntEnvOrDefaultRejectsBadValues(t *testing.T) {
	t.Setenv(envHorizonDays, "not-a-number")
	if got := intEnvOrDefault(envHorizonDays, 30); got != 30 {
		t.Fatalf("garbage int = %d", got)
	}

	t.Setenv(envHorizonDays, "-3")
	if got := intEnvOrDefault(envHorizonDays, 30); got != 30 {
		t.Fatalf("negative int = %d", got)
	}
}

func TestDurationEnvOrDefaultRejectsBadValues(t *testing.T) {
	t.Setenv(envRefreshInterval, "soon")
	if got := durationEnvOrDefault(envRefreshInterval, time.Minute); got != time.Minute {
		t.Fatalf("garbage duration = %v", got)
	}

	t.Setenv(envRefreshInterval, "-10s")
	if got := durationEnvOrDefault(envRefreshInterval, time.Minute); got != time.Minute {
		t.Fatalf("negative duration = %v", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"TRUE":  true,
		"yes":   true,
		"0":     false,
		"false": false,
		"no":    false,
	}
	for raw, want := range cases {
		t.Setenv(envMetricsOn, raw)
		if got := boolEnvOrDefault(envMetricsOn, !want); got != want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}

	t.Setenv(envMetricsOn, "maybe")
	if got := boolEnvOrDefault(envMetricsOn, true); got != true {
		t.Fatalf("unparseable bool should keep the default")
	}
}
