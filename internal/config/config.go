// Package config provides configuration data structures for humane.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the complete humane configuration.
type Config struct {
	Backup BackupConfig `mapstructure:"backup" yaml:"backup" json:"backup"`
	Log    LogConfig    `mapstructure:"log"    yaml:"log"    json:"log"`
	UI     UIConfig     `mapstructure:"ui"     yaml:"ui"     json:"ui"`
}

// BackupConfig configures where a backup is looked for when no path is given.
type BackupConfig struct {
	// FallbackDir is searched when no path is given. Empty means the parent
	// of the directory holding the executable.
	FallbackDir string `mapstructure:"fallback_dir" yaml:"fallback_dir" json:"fallback_dir"`
	// DefaultFile is the file name tried first in FallbackDir.
	DefaultFile string `mapstructure:"default_file" yaml:"default_file" json:"default_file"`
	// Pattern is the glob tried in FallbackDir when DefaultFile is missing.
	// The lexically greatest match wins, which is the newest dated export.
	Pattern string `mapstructure:"pattern" yaml:"pattern" json:"pattern"`
}

// LogLevel is the minimum level written to the log file.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogConfig configures logging. Nothing is written unless Dir or File is set.
type LogConfig struct {
	Level LogLevel `mapstructure:"level" yaml:"level" json:"level"`
	// Dir receives timestamped log files, rotated by MaxFiles and MaxAge.
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
	// File is a single log file; it takes precedence over Dir.
	File     string        `mapstructure:"file"      yaml:"file"      json:"file"`
	JSON     bool          `mapstructure:"json"      yaml:"json"      json:"json"`
	MaxFiles int           `mapstructure:"max_files" yaml:"max_files" json:"max_files"`
	MaxAge   time.Duration `mapstructure:"max_age"   yaml:"max_age"   json:"max_age"`
}

// Enabled reports whether a log destination is configured.
func (l LogConfig) Enabled() bool {
	return l.Dir != "" || l.File != ""
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	// AltScreen runs the browser in the terminal's alternate screen.
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen" json:"alt_screen"`
	// CapitalizeCategories capitalizes category names for display.
	CapitalizeCategories bool `mapstructure:"capitalize_categories" yaml:"capitalize_categories" json:"capitalize_categories"`
}

// Default values.
const (
	DefaultBackupFile    = "humane-tracker-backup-2025-11-29.json"
	DefaultBackupPattern = "humane-tracker-backup-*.json"
	DefaultMaxLogFiles   = 10
	DefaultMaxLogAge     = 7 * 24 * time.Hour
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Backup: BackupConfig{
			DefaultFile: DefaultBackupFile,
			Pattern:     DefaultBackupPattern,
		},
		Log: LogConfig{
			Level:    LogLevelInfo,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
		},
		UI: UIConfig{
			AltScreen:            true,
			CapitalizeCategories: true,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Backup.DefaultFile == "" {
		c.Backup.DefaultFile = defaults.Backup.DefaultFile
	}
	if c.Backup.Pattern == "" {
		c.Backup.Pattern = defaults.Backup.Pattern
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaults.Log.MaxAge
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	switch c.Log.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be 'debug', 'info', 'warn', or 'error' (got %q)", c.Log.Level),
		})
	}
	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: "must be non-negative"})
	}

	if strings.TrimSpace(c.Backup.Pattern) == "" {
		errs = append(errs, &ValidationError{Field: "backup.pattern", Message: "must not be empty"})
	}
	if strings.ContainsAny(c.Backup.DefaultFile, `/\`) {
		errs = append(errs, &ValidationError{Field: "backup.default_file", Message: "must be a file name, not a path"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
