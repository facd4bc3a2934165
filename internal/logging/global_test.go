package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGlobal(t *testing.T) {
	SetGlobal(nil)
	defer SetGlobal(nil)

	l := Global()
	if l == nil {
		t.Fatal("Global() returned nil")
	}
	if Global() != l {
		t.Error("Global() should return the same noop logger on repeated calls")
	}
}

func TestSetGlobal(t *testing.T) {
	defer SetGlobal(nil)

	custom := NewNoop()
	SetGlobal(custom)

	if Global() != custom {
		t.Error("Global() should return the logger passed to SetGlobal")
	}
}

func TestInitGlobal(t *testing.T) {
	defer SetGlobal(nil)

	path := filepath.Join(t.TempDir(), "humane.log")
	if err := InitGlobal(&Config{Level: LevelDebug, File: path}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	Debug("global debug", "n", 1)
	Info("global info")
	Warn("global warn")
	Error("global error")
	With("screen", "categories").Info("with attrs")

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	for _, want := range []string{"global debug", "global info", "global warn", "global error", "screen=categories"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log file missing %q", want)
		}
	}
}

func TestInitGlobalError(t *testing.T) {
	defer SetGlobal(nil)

	if err := InitGlobal(&Config{}); err == nil {
		t.Error("InitGlobal() should fail without a destination")
	}
}

func TestCloseGlobalWhenNil(t *testing.T) {
	SetGlobal(nil)

	if err := CloseGlobal(); err != nil {
		t.Errorf("CloseGlobal() with nil logger = %v", err)
	}
}
