package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_FailsWithoutJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 720*time.Hour {
		t.Fatalf("expected default token ttl 720h, got %v", cfg.TokenTTL)
	}
	if cfg.Mongo.Database != "farm_management" {
		t.Fatalf("expected default database, got %q", cfg.Mongo.Database)
	}
	if cfg.SMTP.Enabled {
		t.Fatalf("smtp should be disabled by default")
	}
	if cfg.NotifyWorkers != 4 {
		t.Fatalf("expected 4 notify workers, got %d", cfg.NotifyWorkers)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("MONGO_DB", "farm_test")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "9090" || cfg.TokenTTL != 24*time.Hour || cfg.Mongo.Database != "farm_test" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "0s")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for zero token ttl")
	}
}
