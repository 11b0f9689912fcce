package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBName != "connectedu" {
		t.Errorf("DBName = %q, want connectedu", cfg.DBName)
	}
	if cfg.RecalcInterval != time.Hour {
		t.Errorf("RecalcInterval = %v, want 1h", cfg.RecalcInterval)
	}
	if cfg.ExpiryScanInterval != 6*time.Hour {
		t.Errorf("ExpiryScanInterval = %v, want 6h", cfg.ExpiryScanInterval)
	}
	if cfg.RequestMaxAgeDays != 3 {
		t.Errorf("RequestMaxAgeDays = %d, want 3", cfg.RequestMaxAgeDays)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("PORT", "3000")
	t.Setenv("LEADERBOARD_RECALC_INTERVAL", "30m")
	t.Setenv("REQUEST_MAX_AGE_DAYS", "7")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.RecalcInterval != 30*time.Minute {
		t.Errorf("RecalcInterval = %v, want 30m", cfg.RecalcInterval)
	}
	if cfg.RequestMaxAgeDays != 7 {
		t.Errorf("RequestMaxAgeDays = %d, want 7", cfg.RequestMaxAgeDays)
	}
}

func TestLoadConfigRequiresPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when DB_PASSWORD is empty")
	}
}
