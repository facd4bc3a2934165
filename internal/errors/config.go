// Package errors provides error types for humane.
// This file contains configuration and backup loading errors.
package errors

import (
	"fmt"
)

// NoDataSource creates an error for an accessor built without a file path
// or in-memory snapshot.
func NoDataSource() *HumaneError {
	return &HumaneError{
		Kind:       ErrConfig,
		Message:    "must provide either a backup file path or snapshot data",
		Suggestion: "Pass exactly one of Path or Snapshot when creating the data accessor.",
	}
}

// AmbiguousDataSource creates an error for an accessor built with both a
// file path and an in-memory snapshot.
func AmbiguousDataSource(path string) *HumaneError {
	return &HumaneError{
		Kind:    ErrConfig,
		Message: "cannot load from both a backup file and snapshot data",
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Pass exactly one of Path or Snapshot when creating the data accessor.",
	}
}

// NoBackupFile creates an error for when no path was given and no default
// backup could be found in the fallback directory.
func NoBackupFile(fallbackDir, pattern string) *HumaneError {
	return &HumaneError{
		Kind:    ErrNotFound,
		Message: "no backup file given",
		Details: map[string]string{
			"fallback_dir": fallbackDir,
		},
		Suggestion: fmt.Sprintf(`Usage: humane <backup-file.json>
       or place %s in %s`, pattern, fallbackDir),
	}
}

// BackupNotFound creates an error for a backup path that does not exist.
func BackupNotFound(path string) *HumaneError {
	return &HumaneError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("File not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check the path, or export a fresh backup from the habit tracker.",
	}
}

// BackupReadError creates an error for a backup file that could not be read.
func BackupReadError(path string, cause error) *HumaneError {
	return &HumaneError{
		Kind:    ErrLoad,
		Message: fmt.Sprintf("failed to read backup: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Make sure the file is readable by the current user.",
	}
}

// BackupParseError creates an error for a backup file that is not valid JSON.
func BackupParseError(path string, cause error) *HumaneError {
	return &HumaneError{
		Kind:    ErrLoad,
		Message: fmt.Sprintf("failed to parse backup: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `The backup must be a JSON object with "habits" and "entries" arrays.
  Re-export the backup if the file was truncated or edited by hand.`,
	}
}
