package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withRequiredSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD", "test-admin-pass")
}

func TestLoadConfigDefaults(t *testing.T) {
	withRequiredSecrets(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q", cfg.Server.Port)
	}
	if cfg.Database.DBName != "campushub" {
		t.Errorf("Database.DBName = %q", cfg.Database.DBName)
	}
	if cfg.JWT.TokenExpiry != "720h" {
		t.Errorf("JWT.TokenExpiry = %q", cfg.JWT.TokenExpiry)
	}
	if cfg.JWT.Issuer != "campushub" {
		t.Errorf("JWT.Issuer = %q", cfg.JWT.Issuer)
	}
	if cfg.Admin.Email != "admin@campushub.local" {
		t.Errorf("Admin.Email = %q", cfg.Admin.Email)
	}
	if cfg.RateLimit.PerMinute != 120 {
		t.Errorf("RateLimit.PerMinute = %d", cfg.RateLimit.PerMinute)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	withRequiredSecrets(t)
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("RATE_LIMIT_PER_MIN", "10")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("Server.Port = %q, want env override 9999", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q", cfg.Database.Host)
	}
	if cfg.RateLimit.PerMinute != 10 {
		t.Errorf("RateLimit.PerMinute = %d", cfg.RateLimit.PerMinute)
	}
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	withRequiredSecrets(t)
	t.Setenv("SERVER_PORT", "7070")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: \"6060\"\n  mode: production\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	// env beats file
	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want 7070", cfg.Server.Port)
	}
	if cfg.Server.Mode != "production" {
		t.Errorf("Server.Mode = %q, want production from file", cfg.Server.Mode)
	}
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "x")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "x")
	t.Setenv("ADMIN_PASSWORD", "")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error without ADMIN_PASSWORD")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "campushub"

	want := "postgres://app:pw@localhost:5432/campushub?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
}
