// Package logging provides structured logging for humane.
// Logs go to a file only; the terminal belongs to the browser.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents log severity levels.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" to a Level.
// Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// toSlogLevel converts our Level to slog.Level.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures the logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// File is a log file to append to. It takes precedence over LogDir.
	File string
	// LogDir is a directory for timestamped humane_*.log files.
	LogDir string
	// MaxLogFiles is the maximum number of log files to keep in LogDir.
	MaxLogFiles int
	// MaxLogAge is the maximum age of log files in LogDir before cleanup.
	MaxLogAge time.Duration
	// Console also writes to stderr. Never enable it while the TUI runs.
	Console bool
	// JSONFormat uses JSON output format for structured logs.
	JSONFormat bool
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour, // 7 days
	}
}

// Logger is a structured logger for humane.
type Logger struct {
	slog    *slog.Logger
	config  *Config
	logFile *os.File
	logPath string
	mu      sync.Mutex
}

const (
	logFilePrefix = "humane_"
	logFileSuffix = ".log"
)

// New creates a new logger with the given configuration.
// Exactly one of File or LogDir should be set; with neither, New fails.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	logPath := config.File
	if logPath == "" {
		if config.LogDir == "" {
			return nil, fmt.Errorf("no log file or log directory configured")
		}
		logPath = filepath.Join(config.LogDir, fmt.Sprintf("%s%s%s", logFilePrefix, time.Now().Format("20060102_150405"), logFileSuffix))
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := &Logger{
		config:  config,
		logFile: logFile,
		logPath: logPath,
	}

	writers := []io.Writer{logFile}
	if config.Console {
		writers = append(writers, os.Stderr)
	}
	logger.slog = slog.New(newHandler(io.MultiWriter(writers...), config))

	if config.File == "" {
		if err := logger.Cleanup(); err != nil {
			logger.Warn("log cleanup failed", "error", err)
		}
	}

	return logger, nil
}

// NewWithWriter creates a logger that writes to w. Useful in tests.
func NewWithWriter(w io.Writer, config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	return &Logger{
		slog:   slog.New(newHandler(w, config)),
		config: config,
	}
}

// NewNoop creates a no-op logger that discards all output.
func NewNoop() *Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return &Logger{
		slog:   slog.New(handler),
		config: DefaultConfig(),
	}
}

func newHandler(w io.Writer, config *Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}
	if config.JSONFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// LogPath returns the path to the current log file.
func (l *Logger) LogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logPath
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		return l.logFile.Close()
	}
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a new logger with the given attributes added.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:    l.slog.With(args...),
		config:  l.config,
		logFile: l.logFile,
		logPath: l.logPath,
	}
}

// Cleanup removes old humane_*.log files from LogDir based on MaxLogFiles
// and MaxLogAge. The current log file is never removed.
func (l *Logger) Cleanup() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config.LogDir == "" {
		return nil
	}

	entries, err := os.ReadDir(l.config.LogDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, logFileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(l.config.LogDir, name),
			modTime: info.ModTime(),
		})
	}

	// Newest first
	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.After(logFiles[j].modTime)
	})

	now := time.Now()
	var removed int

	for i, lf := range logFiles {
		if lf.path == l.logPath {
			continue
		}

		shouldRemove := false
		if l.config.MaxLogFiles > 0 && i >= l.config.MaxLogFiles {
			shouldRemove = true
		}
		if l.config.MaxLogAge > 0 && now.Sub(lf.modTime) > l.config.MaxLogAge {
			shouldRemove = true
		}

		if shouldRemove {
			if err := os.Remove(lf.path); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		l.slog.Debug("cleaned up old log files", "count", removed)
	}

	return nil
}
