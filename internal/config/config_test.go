// Package config tests for configuration loading.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("DataDir = %q, want ./data", cfg.DataDir)
	}
	if cfg.Listen != "127.0.0.1:8090" {
		t.Errorf("Listen = %q, want localhost default", cfg.Listen)
	}
	if cfg.Mirror.ServiceURL != "" || cfg.Mirror.APIKey != "" {
		t.Error("mirror should be unconfigured by default")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kraamlog.yaml")
	content := `
data_dir: /var/lib/kraamlog
log_level: DEBUG
mirror:
  service_url: https://mirror.example.com
  api_key: secret
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/var/lib/kraamlog" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Mirror.ServiceURL != "https://mirror.example.com" || cfg.Mirror.APIKey != "secret" {
		t.Errorf("Mirror = %+v", cfg.Mirror)
	}
	// File values without an override keep the default.
	if cfg.Listen != "127.0.0.1:8090" {
		t.Errorf("Listen = %q, want default", cfg.Listen)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KRAAMLOG_DATA_DIR", "/tmp/elsewhere")
	t.Setenv("KRAAMLOG_MIRROR_URL", "https://env.example.com")
	t.Setenv("KRAAMLOG_MIRROR_KEY", "env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/tmp/elsewhere" {
		t.Errorf("DataDir = %q, want env override", cfg.DataDir)
	}
	if cfg.Mirror.ServiceURL != "https://env.example.com" || cfg.Mirror.APIKey != "env-key" {
		t.Errorf("Mirror = %+v, want env overrides", cfg.Mirror)
	}
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("data_dir: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for unparseable config")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}
