package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":5000" {
		t.Errorf("HTTPAddr = %q, want :5000", cfg.HTTPAddr)
	}
	if cfg.MongoDB != "studyDB" {
		t.Errorf("MongoDB = %q, want studyDB", cfg.MongoDB)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want 1h", cfg.TokenTTL)
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoad_MissingMongoURI(t *testing.T) {
	setRequired(t)
	t.Setenv("MONGO_URI", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing MONGO_URI")
	}
}

func TestLoad_MissingStripeKey(t *testing.T) {
	setRequired(t)
	t.Setenv("STRIPE_SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing STRIPE_SECRET_KEY")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("MONGO_DB", "studyDB_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL = %v, want 30m", cfg.TokenTTL)
	}
	if cfg.MongoDB != "studyDB_test" {
		t.Errorf("MongoDB = %q, want studyDB_test", cfg.MongoDB)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed TOKEN_TTL")
	}
}
