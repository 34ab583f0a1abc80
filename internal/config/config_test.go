package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("unexpected default base URL: %q", cfg.API.BaseURL)
	}
	if cfg.LoginTimeout() != 10*time.Second {
		t.Errorf("unexpected default login timeout: %v", cfg.LoginTimeout())
	}
	if cfg.CacheFreshFor() != 5*time.Minute {
		t.Errorf("unexpected default freshness window: %v", cfg.CacheFreshFor())
	}
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
api:
  base_url: https://api.center.vn
  login_timeout: 8s
cache:
  fresh_for: 2m
logging:
  level: debug
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// Env beats file
	t.Setenv("CACHE_FRESH_FOR", "90s")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://api.center.vn" {
		t.Errorf("file value not applied: %q", cfg.API.BaseURL)
	}
	if cfg.LoginTimeout() != 8*time.Second {
		t.Errorf("file value not applied: %v", cfg.LoginTimeout())
	}
	if cfg.CacheFreshFor() != 90*time.Second {
		t.Errorf("env override not applied: %v", cfg.CacheFreshFor())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("file value not applied: %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_RejectsBadDurations(t *testing.T) {
	t.Setenv("API_LOGIN_TIMEOUT", "soon")

	if _, err := LoadConfig("does-not-exist.yaml"); err == nil {
		t.Fatal("expected an invalid configuration error")
	}
}
