package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewHeader(t *testing.T) {
	h := NewHeader()
	if h == nil {
		t.Fatal("NewHeader returned nil")
	}

	view := h.View()
	for _, want := range []string{AppTitle, AppSubtitle, "Habits: 0", "Entries: 0", "Categories: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("Header should contain %q, got %q", want, view)
		}
	}
}

func TestHeaderSetData(t *testing.T) {
	h := NewHeader()
	h.SetData(HeaderData{Habits: 3, Entries: 42, Categories: 2})

	view := h.View()
	for _, want := range []string{"Habits: 3", "Entries: 42", "Categories: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("Header should contain %q, got %q", want, view)
		}
	}
}

func TestHeaderWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"wide", 120},
		{"narrow", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader()
			h.SetData(HeaderData{Habits: 1, Entries: 1, Categories: 1})
			h.SetWidth(tt.width)

			if got := lipgloss.Width(h.View()); got != tt.width {
				t.Errorf("header width = %d, want %d", got, tt.width)
			}
		})
	}
}
