package config

import (
	"testing"
	"time"
)

func TestTokenTimeoutFallback(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"empty", "", DefaultTokenTimeout},
		{"zero", "0", DefaultTokenTimeout},
		{"negative", "-5", DefaultTokenTimeout},
		{"not a number", "soon", DefaultTokenTimeout},
		{"valid", "7200", 7200 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TOKEN_TIMEOUT", tt.value)
			cfg := Load()
			if cfg.TokenTimeout != tt.want {
				t.Errorf("TokenTimeout = %v, want %v", cfg.TokenTimeout, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3001" {
		t.Errorf("Port = %q, want 3001", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.AppSecret != DefaultAppSecret {
		t.Errorf("AppSecret = %q, want the default", cfg.AppSecret)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8443")
	t.Setenv("APP_SECRET", "production-secret")
	t.Setenv("MONGO_DB", "notable_test")

	cfg := Load()

	if cfg.Port != "8443" {
		t.Errorf("Port = %q, want 8443", cfg.Port)
	}
	if cfg.AppSecret != "production-secret" {
		t.Errorf("AppSecret = %q", cfg.AppSecret)
	}
	if cfg.MongoDB != "notable_test" {
		t.Errorf("MongoDB = %q", cfg.MongoDB)
	}
}
