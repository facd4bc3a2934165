// Package config provides configuration loading and management for humane.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Loader handles loading configuration from a YAML file.
// Environment variables are not consulted.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// and validates the result. An empty path yields the defaults.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		cfg := NewConfig()
		return cfg, cfg.Validate()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// Start with defaults so unset keys keep them.
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// viperDecodeHook composes the standard mapstructure hooks with ours.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(LogLevel("")):
			level := strings.ToLower(strings.TrimSpace(data.(string)))
			if level == "warning" {
				level = string(LogLevelWarn)
			}
			return LogLevel(level), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
