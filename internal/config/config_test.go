package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("requires_supabase_settings", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "")
		t.Setenv("SUPABASE_KEY", "")

		if _, err := Load(); err == nil {
			t.Fatal("expected error when Supabase settings are missing")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "https://demo.supabase.co/")
		t.Setenv("SUPABASE_KEY", "secret")
		t.Setenv("PORT", "")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_EXPIRES_IN", "")
		t.Setenv("OPERATION_TIMEOUT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "3000" {
			t.Errorf("expected port 3000, got %s", cfg.Port)
		}
		if cfg.TokenIssuer() != "https://demo.supabase.co/auth/v1" {
			t.Errorf("unexpected issuer %s", cfg.TokenIssuer())
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected 24h expiry, got %s", cfg.JWTExpirationDur)
		}
		if cfg.OperationTimeout != 15*time.Second {
			t.Errorf("expected 15s timeout, got %s", cfg.OperationTimeout)
		}
	})

	t.Run("invalid_duration_falls_back", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
		t.Setenv("SUPABASE_KEY", "secret")
		t.Setenv("JWT_EXPIRES_IN", "forever")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected fallback to 24h, got %s", cfg.JWTExpirationDur)
		}
	})
}

func TestPostgresURL(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "require"}
	if got := cfg.PostgresURL(); got != "postgres://u:p@h:5432/d?sslmode=require" {
		t.Errorf("unexpected url %s", got)
	}

	cfg.DatabaseURL = "postgres://override"
	if got := cfg.PostgresURL(); got != "postgres://override" {
		t.Errorf("expected DATABASE_URL to win, got %s", got)
	}
}
