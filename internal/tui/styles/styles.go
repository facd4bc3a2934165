// Package styles provides Lip Gloss styles for the humane TUI.
package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#0F766E") // Teal
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Accent      = lipgloss.Color("#F59E0B") // Amber
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	// HeaderStyle is the header bar container.
	HeaderStyle = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Foreground).
			Padding(0, 1)

	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true)

	// SubtitleStyle follows the title in the header.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight).
				Background(Primary)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Primary).
				Bold(true)

	// HeaderSeparatorStyle renders the " │ " between header items.
	HeaderSeparatorStyle = lipgloss.NewStyle().
				Foreground(MutedLight).
				Background(Primary)
)

// Screen styles.
var (
	// ScreenTitleStyle is the title line above the table.
	ScreenTitleStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				Padding(0, 1)

	// EmptyStyle is for the message shown when a list has no rows.
	EmptyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			Padding(0, 1)

	// StatusBarStyle is the status line container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// StatusBreadcrumbStyle is for the screen breadcrumb.
	StatusBreadcrumbStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// StatusPositionStyle is for the cursor position.
	StatusPositionStyle = lipgloss.NewStyle().
				Foreground(Secondary)

	// FooterStyle wraps the short help line.
	FooterStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// Help overlay styles.
var (
	// HelpBoxStyle is the border around the keybinding reference.
	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// HelpGroupStyle is for shortcut group titles.
	HelpGroupStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedLight)
)

// TableStyles returns the styles for the list tables.
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		BorderBottom(true).
		Foreground(Secondary).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(Foreground).
		Background(Primary).
		Bold(true)
	return s
}
