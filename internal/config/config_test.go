package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/market")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "development" {
		t.Fatalf("expected development default, got %q", cfg.Environment)
	}
	if cfg.HTTP.Host != "0.0.0.0" || cfg.HTTP.Port != 7091 {
		t.Fatalf("unexpected http defaults: %+v", cfg.HTTP)
	}
	if cfg.Billing.DepositCapRatio != 0.25 {
		t.Fatalf("expected deposit cap 0.25, got %v", cfg.Billing.DepositCapRatio)
	}
}

func TestLoadMissingDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing DB_DSN")
	}
}

func TestLoadCapRatioValidation(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/market")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("BILLING_DEPOSIT_CAP_RATIO", "1.5")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for cap ratio above 1")
	}
}
