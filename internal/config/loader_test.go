package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Backup.DefaultFile != DefaultBackupFile {
		t.Errorf("expected defaults, got %+v", cfg.Backup)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Path != "nonexistent/config.yaml" {
		t.Errorf("expected path 'nonexistent/config.yaml', got %q", loadErr.Path)
	}
	if loadErr.Message != "config file not found" {
		t.Errorf("expected message 'config file not found', got %q", loadErr.Message)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
backup:
  fallback_dir: /srv/backups
  default_file: latest.json
  pattern: "export-*.json"

log:
  level: DEBUG
  file: /tmp/humane.log
  json: true
  max_files: 3
  max_age: 24h

ui:
  alt_screen: false
  capitalize_categories: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Backup.FallbackDir != "/srv/backups" {
		t.Errorf("expected fallback_dir '/srv/backups', got %q", cfg.Backup.FallbackDir)
	}
	if cfg.Backup.DefaultFile != "latest.json" {
		t.Errorf("expected default_file 'latest.json', got %q", cfg.Backup.DefaultFile)
	}
	if cfg.Backup.Pattern != "export-*.json" {
		t.Errorf("expected pattern 'export-*.json', got %q", cfg.Backup.Pattern)
	}
	if cfg.Log.Level != LogLevelDebug {
		t.Errorf("expected level normalized to debug, got %q", cfg.Log.Level)
	}
	if cfg.Log.File != "/tmp/humane.log" || !cfg.Log.JSON {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Log.MaxFiles != 3 {
		t.Errorf("expected max_files 3, got %d", cfg.Log.MaxFiles)
	}
	if cfg.Log.MaxAge != 24*time.Hour {
		t.Errorf("expected max_age 24h, got %v", cfg.Log.MaxAge)
	}
	if cfg.UI.AltScreen || cfg.UI.CapitalizeCategories {
		t.Errorf("expected UI flags false, got %+v", cfg.UI)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
log:
  level: warning
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Log.Level != LogLevelWarn {
		t.Errorf("expected warning to map to warn, got %q", cfg.Log.Level)
	}
	if cfg.Backup.Pattern != DefaultBackupPattern {
		t.Errorf("expected default pattern, got %q", cfg.Backup.Pattern)
	}
	if !cfg.UI.AltScreen {
		t.Error("unset alt_screen should keep its default of true")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "log:\n  level: [unterminated\n")

	_, err := Load(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
	if loadErr.Message != "failed to read config file" {
		t.Errorf("unexpected message %q", loadErr.Message)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, "log:\n  level: chatty\n")

	_, err := Load(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Message != "configuration validation failed" {
		t.Errorf("unexpected message %q", loadErr.Message)
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Error("validation errors should be unwrappable")
	}
}

func TestLoadError_Error(t *testing.T) {
	withCause := &LoadError{Path: "c.yaml", Message: "boom", Err: errors.New("cause")}
	if got := withCause.Error(); got != "c.yaml: boom: cause" {
		t.Errorf("Error() = %q", got)
	}
	noCause := &LoadError{Path: "c.yaml", Message: "boom"}
	if got := noCause.Error(); got != "c.yaml: boom" {
		t.Errorf("Error() = %q", got)
	}
}
