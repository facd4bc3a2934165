package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Backup.DefaultFile != DefaultBackupFile {
		t.Errorf("expected default file %q, got %q", DefaultBackupFile, cfg.Backup.DefaultFile)
	}
	if cfg.Backup.Pattern != DefaultBackupPattern {
		t.Errorf("expected pattern %q, got %q", DefaultBackupPattern, cfg.Backup.Pattern)
	}
	if cfg.Log.Level != LogLevelInfo {
		t.Errorf("expected log level info, got %q", cfg.Log.Level)
	}
	if cfg.Log.Enabled() {
		t.Error("logging should be disabled by default")
	}
	if !cfg.UI.AltScreen || !cfg.UI.CapitalizeCategories {
		t.Error("UI flags should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Backup.DefaultFile != DefaultBackupFile {
		t.Errorf("expected default file, got %q", cfg.Backup.DefaultFile)
	}
	if cfg.Log.Level != LogLevelInfo {
		t.Errorf("expected info level, got %q", cfg.Log.Level)
	}
	if cfg.Log.MaxFiles != DefaultMaxLogFiles {
		t.Errorf("expected %d max files, got %d", DefaultMaxLogFiles, cfg.Log.MaxFiles)
	}
	if cfg.Log.MaxAge != DefaultMaxLogAge {
		t.Errorf("expected %v max age, got %v", DefaultMaxLogAge, cfg.Log.MaxAge)
	}
}

func TestLogConfigEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  LogConfig
		want bool
	}{
		{"none", LogConfig{}, false},
		{"dir", LogConfig{Dir: "/tmp/logs"}, true},
		{"file", LogConfig{File: "/tmp/humane.log"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			modify: func(c *Config) {},
		},
		{
			name:    "bad level",
			modify:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "log.level",
		},
		{
			name:    "negative max files",
			modify:  func(c *Config) { c.Log.MaxFiles = -1 },
			wantErr: "log.max_files",
		},
		{
			name:    "negative max age",
			modify:  func(c *Config) { c.Log.MaxAge = -time.Hour },
			wantErr: "log.max_age",
		},
		{
			name:    "empty pattern",
			modify:  func(c *Config) { c.Backup.Pattern = " " },
			wantErr: "backup.pattern",
		},
		{
			name:    "default file with path",
			modify:  func(c *Config) { c.Backup.DefaultFile = "../backup.json" },
			wantErr: "backup.default_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateMultipleErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Log.Level = "nope"
	cfg.Backup.Pattern = ""

	err := cfg.Validate()
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d", len(errs))
	}
	if !strings.Contains(err.Error(), "multiple validation errors") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
