package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wexinc/humane/internal/tui/styles"
)

// breadcrumbSep separates screen titles in the breadcrumb.
const breadcrumbSep = " › "

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	// Breadcrumb lists the titles of the screens on the stack, root first.
	Breadcrumb []string
	// Position is the 1-based cursor row; zero when the list is empty.
	Position int
	Total    int
}

// StatusBar shows where the user is: the breadcrumb on the left and the
// cursor position on the right.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	right := styles.StatusPositionStyle.Render(fmt.Sprintf("%d/%d", s.data.Position, s.data.Total))
	left := styles.StatusBreadcrumbStyle.Render(strings.Join(s.data.Breadcrumb, breadcrumbSep))

	if s.width <= 0 {
		return styles.StatusBarStyle.Render(left + "  " + right)
	}

	// -2 for container padding, -2 for the gap
	room := s.width - 2 - lipgloss.Width(right) - 2
	if room < 1 {
		return styles.StatusBarStyle.Render(right)
	}
	container := styles.StatusBarStyle.Width(s.width)
	if lipgloss.Width(left) > room {
		// Keep the deepest screens visible.
		left = "…" + ansi.TruncateLeft(left, lipgloss.Width(left)-room+1, "")
	}
	gap := s.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	return container.Render(left + strings.Repeat(" ", max(gap, 2)) + right)
}
