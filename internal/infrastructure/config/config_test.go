package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("expected 1h token ttl, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Session.Cookie != "oficina_session" {
		t.Errorf("unexpected cookie name %q", cfg.Session.Cookie)
	}
	if cfg.Audit.Workers != 4 {
		t.Errorf("expected 4 audit workers, got %d", cfg.Audit.Workers)
	}
	if cfg.IsProduction() {
		t.Error("default env is development")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":     "s3cret",
		"ENV":            "production",
		"TOKEN_TTL":      "30m",
		"REDIS_DB":       "2",
		"SESSION_SECURE": "true",
		"DATABASE_DSN":   "host=db user=app dbname=oficina",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() || cfg.Auth.TokenTTL != 30*time.Minute || cfg.Redis.DB != 2 || !cfg.Session.Secure {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Database.DSN != "host=db user=app dbname=oficina" {
		t.Errorf("unexpected dsn %q", cfg.Database.DSN)
	}
}

func TestLoadWith_RequiresSecret(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatal("expected an error without JWT_SECRET")
	}
}
