package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "5000")
	}
	if cfg.DatabaseName != "bistroDB" {
		t.Errorf("DatabaseName = %q, want %q", cfg.DatabaseName, "bistroDB")
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q, want local default", cfg.MongoURI)
	}
}

func TestLoad_RequiresSecrets(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		stripe string
	}{
		{"missing token secret", "", "sk_test_123"},
		{"missing stripe key", "s3cret", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ACCESS_TOKEN_SECRET", tt.token)
			t.Setenv("STRIPE_SECRET_KEY", tt.stripe)

			if _, err := Load(); err == nil {
				t.Error("Load() should fail when a secret is missing")
			}
		})
	}
}
