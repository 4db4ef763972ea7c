package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port == "" {
		t.Fatal("expected a default port")
	}
	if cfg.AccessTokenTTL != 192*time.Hour {
		t.Fatalf("expected 8-day default token TTL, got %v", cfg.AccessTokenTTL)
	}
	if cfg.DBTimeout <= 0 {
		t.Fatalf("expected positive default DB timeout, got %v", cfg.DBTimeout)
	}
	if cfg.LogRetentionDays != 30 {
		t.Fatalf("expected 30-day default log retention, got %d", cfg.LogRetentionDays)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "1h")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_NAME", "override_db")

	cfg := Load()

	if cfg.AccessTokenTTL != time.Hour {
		t.Fatalf("expected 1h TTL, got %v", cfg.AccessTokenTTL)
	}
	if cfg.Environment != "production" {
		t.Fatalf("expected production environment, got %q", cfg.Environment)
	}
	if cfg.DBName != "override_db" {
		t.Fatalf("expected override_db, got %q", cfg.DBName)
	}
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "not-a-duration")

	cfg := Load()
	if cfg.AccessTokenTTL != 192*time.Hour {
		t.Fatalf("expected fallback TTL, got %v", cfg.AccessTokenTTL)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "svc",
		DBPassword: "pw",
		DBName:     "research",
		DBSSLMode:  "require",
	}

	want := "host=db.internal user=svc password=pw dbname=research port=5433 sslmode=require TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN mismatch:\ngot  %q\nwant %q", got, want)
	}
}
