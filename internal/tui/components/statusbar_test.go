package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestStatusBarView(t *testing.T) {
	s := NewStatusBar()
	s.SetData(StatusBarData{
		Breadcrumb: []string{"Categories", "Habits: Fitness"},
		Position:   2,
		Total:      5,
	})

	view := ansi.Strip(s.View())
	for _, want := range []string{"Categories › Habits: Fitness", "2/5"} {
		if !strings.Contains(view, want) {
			t.Errorf("status bar missing %q: %q", want, view)
		}
	}
}

func TestStatusBarEmpty(t *testing.T) {
	s := NewStatusBar()
	s.SetData(StatusBarData{Breadcrumb: []string{"Categories"}})

	if view := ansi.Strip(s.View()); !strings.Contains(view, "0/0") {
		t.Errorf("empty list should show 0/0, got %q", view)
	}
}

func TestStatusBarWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"wide", 100},
		{"narrow", 30},
		{"tiny", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStatusBar()
			s.SetData(StatusBarData{
				Breadcrumb: []string{"Categories", "Habits: Fitness", "Entries: Morning Run"},
				Position:   12,
				Total:      340,
			})
			s.SetWidth(tt.width)

			view := s.View()
			if got := lipgloss.Width(view); got > tt.width && tt.width >= 12 {
				t.Errorf("width = %d, want <= %d", got, tt.width)
			}
			if !strings.Contains(ansi.Strip(view), "12/340") {
				t.Errorf("position should always be shown: %q", ansi.Strip(view))
			}
		})
	}
}

func TestStatusBarKeepsDeepestScreen(t *testing.T) {
	s := NewStatusBar()
	s.SetData(StatusBarData{
		Breadcrumb: []string{"Categories", "Habits: Fitness", "Entries: Morning Run"},
		Position:   1,
		Total:      2,
	})
	s.SetWidth(32)

	view := ansi.Strip(s.View())
	if !strings.Contains(view, "Morning Run") {
		t.Errorf("truncated breadcrumb should keep the deepest title: %q", view)
	}
	if !strings.HasPrefix(strings.TrimSpace(view), "…") {
		t.Errorf("truncated breadcrumb should start with an ellipsis: %q", view)
	}
}
