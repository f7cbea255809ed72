package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "service:\n  name: radar\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != defaultServicePort {
		t.Errorf("Port = %d, want default %d", cfg.Service.Port, defaultServicePort)
	}
	if cfg.Service.Concurrency != defaultConcurrency {
		t.Errorf("Concurrency = %d, want default %d", cfg.Service.Concurrency, defaultConcurrency)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json defaults", cfg.Logging)
	}
	if cfg.Source.RequestsPerSecond != defaultSourceRPS {
		t.Errorf("RequestsPerSecond = %v, want %v", cfg.Source.RequestsPerSecond, defaultSourceRPS)
	}
	if cfg.Cache.TTL != defaultCacheTTL {
		t.Errorf("Cache TTL = %v, want %v", cfg.Cache.TTL, defaultCacheTTL)
	}
}

func TestLoadFileValuesOverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
service:
  port: 9090
  shutdown_timeout: 30s
source:
  base_url: https://api.example.test
  max_comments: 200
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Service.Port)
	}
	if cfg.Service.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.Service.ShutdownTimeout)
	}
	if cfg.Source.BaseURL != "https://api.example.test" {
		t.Errorf("BaseURL = %q", cfg.Source.BaseURL)
	}
	if cfg.Source.MaxComments != 200 {
		t.Errorf("MaxComments = %d, want 200", cfg.Source.MaxComments)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestEnvOverridesWin(t *testing.T) {
	path := writeConfig(t, "service:\n  port: 9090\n")
	t.Setenv("RADAR_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != 7070 {
		t.Errorf("Port = %d, want env override 7070", cfg.Service.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want env override warn", cfg.Logging.Level)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestGetConfigPath(t *testing.T) {
	if got := GetConfigPath("config.yml"); got != "config.yml" {
		t.Errorf("default path = %q", got)
	}
	t.Setenv("CONFIG_PATH", "/etc/radar/config.yml")
	if got := GetConfigPath("config.yml"); got != "/etc/radar/config.yml" {
		t.Errorf("env path = %q", got)
	}
}
