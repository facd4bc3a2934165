// Package components provides reusable TUI components for humane.
package components

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/wexinc/humane/internal/tui/styles"
)

// Header titles.
const (
	AppTitle    = "HUMANE TRACKER"
	AppSubtitle = "Habit Backup Explorer"
)

// HeaderData contains the counts shown in the header.
type HeaderData struct {
	Habits     int
	Entries    int
	Categories int
}

// Header is a one-line bar with the application title and backup totals.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	sep := styles.HeaderSeparatorStyle.Render(" │ ")

	content := styles.TitleStyle.Render(AppTitle) +
		sep + styles.SubtitleStyle.Render(AppSubtitle) +
		sep + h.count("Categories", h.data.Categories) +
		h.gap() + h.count("Habits", h.data.Habits) +
		h.gap() + h.count("Entries", h.data.Entries)

	style := styles.HeaderStyle
	if h.width > 0 {
		// Leave room for the horizontal padding.
		if inner := h.width - 2; inner > 0 && ansi.StringWidth(content) > inner {
			content = ansi.Truncate(content, inner, "…")
		}
		style = style.Width(h.width)
	}
	return style.Render(content)
}

func (h *Header) count(label string, n int) string {
	return styles.HeaderLabelStyle.Render(label+": ") +
		styles.HeaderValueStyle.Render(fmt.Sprintf("%d", n))
}

func (h *Header) gap() string {
	return styles.HeaderLabelStyle.Render("  ")
}
