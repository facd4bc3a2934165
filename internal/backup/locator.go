// Package backup locates the habit backup file to browse.
package backup

import (
	"os"
	"path/filepath"
	"sort"

	herrors "github.com/wexinc/humane/internal/errors"
)

// Locator resolves the backup path from the command line, falling back to
// a well-known file in FallbackDir.
type Locator struct {
	// FallbackDir is searched when no path is given.
	FallbackDir string
	// DefaultFile is the exact file name tried first in FallbackDir.
	DefaultFile string
	// Pattern is the glob tried when DefaultFile is absent. The lexically
	// greatest match is chosen; for dated exports that is the newest.
	Pattern string
}

// NewLocator creates a Locator. An empty fallbackDir means the parent of
// the directory holding the running executable.
func NewLocator(fallbackDir, defaultFile, pattern string) *Locator {
	if fallbackDir == "" {
		fallbackDir = ExecutableParentDir()
	}
	return &Locator{
		FallbackDir: fallbackDir,
		DefaultFile: defaultFile,
		Pattern:     pattern,
	}
}

// ExecutableParentDir returns the parent of the directory holding the
// executable, or "." if the executable cannot be found.
func ExecutableParentDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe))
}

// Resolve returns the backup path to load.
// A non-empty arg is used as given and must name an existing regular file.
// An empty arg searches FallbackDir; finding nothing is an ErrNotFound error
// whose suggestion carries the usage line.
func (l *Locator) Resolve(arg string) (string, error) {
	if arg != "" {
		if !isFile(arg) {
			return "", herrors.BackupNotFound(arg)
		}
		return arg, nil
	}

	if l.DefaultFile != "" {
		path := filepath.Join(l.FallbackDir, l.DefaultFile)
		if isFile(path) {
			return path, nil
		}
	}

	if path := l.newestMatch(); path != "" {
		return path, nil
	}

	return "", herrors.NoBackupFile(l.FallbackDir, l.displayName())
}

// newestMatch returns the lexically greatest regular file matching Pattern.
func (l *Locator) newestMatch() string {
	if l.Pattern == "" {
		return ""
	}
	matches, err := filepath.Glob(filepath.Join(l.FallbackDir, l.Pattern))
	if err != nil {
		return ""
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	for _, m := range matches {
		if isFile(m) {
			return m
		}
	}
	return ""
}

func (l *Locator) displayName() string {
	if l.DefaultFile != "" {
		return l.DefaultFile
	}
	return l.Pattern
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
