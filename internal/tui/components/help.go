package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/humane/internal/tui/styles"
)

// Shortcut represents a keyboard shortcut. A Shortcut with an empty Key is
// rendered as a plain line of text.
type Shortcut struct {
	Key  string
	Desc string
}

// ShortcutGroup represents a group of related shortcuts.
type ShortcutGroup struct {
	Title     string
	Shortcuts []Shortcut
}

// HelpOverlay renders the keybinding reference. Whether it is shown is
// decided by the navigation controller.
type HelpOverlay struct {
	width  int
	height int
	groups []ShortcutGroup
}

// NewHelpOverlay creates a new HelpOverlay listing groups.
func NewHelpOverlay(groups []ShortcutGroup) *HelpOverlay {
	return &HelpOverlay{
		groups: groups,
	}
}

// SetGroups sets the shortcut groups.
func (h *HelpOverlay) SetGroups(groups []ShortcutGroup) {
	h.groups = groups
}

// Groups returns the shortcut groups.
func (h *HelpOverlay) Groups() []ShortcutGroup {
	return h.groups
}

// SetSize sets the area the overlay is centered in.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	keyWidth := 0
	for _, g := range h.groups {
		for _, s := range g.Shortcuts {
			keyWidth = max(keyWidth, lipgloss.Width(s.Key))
		}
	}

	var b strings.Builder
	for i, group := range h.groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderGroup(group, keyWidth))
	}

	box := styles.HelpBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
	if h.width <= 0 || h.height <= 0 {
		return box
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}

// renderGroup renders a single shortcut group.
func renderGroup(group ShortcutGroup, keyWidth int) string {
	var b strings.Builder

	b.WriteString(styles.HelpGroupStyle.Render(group.Title))
	b.WriteString("\n")

	keyStyle := styles.KeyStyle.Width(keyWidth)
	for _, s := range group.Shortcuts {
		b.WriteString("  ")
		if s.Key != "" {
			b.WriteString(keyStyle.Render(s.Key))
			b.WriteString("  ")
		}
		b.WriteString(styles.HelpStyle.Render(s.Desc))
		b.WriteString("\n")
	}

	return b.String()
}
