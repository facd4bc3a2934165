package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/humane/internal/nav"
	"github.com/wexinc/humane/internal/tui/components"
)

// KeyMap defines the key bindings for the browser.
type KeyMap struct {
	Down   key.Binding
	Up     key.Binding
	Top    key.Binding // Entries screens only.
	Bottom key.Binding // Entries screens only.
	Select key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
	// ForceQuit quits from anywhere, including Help.
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in vi-style key binding set.
var DefaultKeyMap = KeyMap{
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter/l", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "esc", "backspace"),
		key.WithHelp("h/esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Action maps a key press to a navigation action. While Help is open, q
// closes the overlay instead of quitting.
func (k KeyMap) Action(msg tea.KeyMsg, helpOpen bool) nav.Action {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return nav.ActionQuit
	case key.Matches(msg, k.Quit):
		if helpOpen {
			return nav.ActionBack
		}
		return nav.ActionQuit
	case key.Matches(msg, k.Help):
		return nav.ActionShowHelp
	case key.Matches(msg, k.Back):
		return nav.ActionBack
	case key.Matches(msg, k.Select):
		return nav.ActionSelect
	case key.Matches(msg, k.Down):
		return nav.ActionMoveDown
	case key.Matches(msg, k.Up):
		return nav.ActionMoveUp
	case key.Matches(msg, k.Top):
		return nav.ActionGoTop
	case key.Matches(msg, k.Bottom):
		return nav.ActionGoBottom
	}
	return nav.ActionNone
}

// footerBindings returns the footer bindings for what is on screen.
func (k KeyMap) footerBindings(kind nav.Kind, helpOpen bool) []key.Binding {
	if helpOpen {
		closeHelp := key.NewBinding(key.WithKeys("?", "q", "esc"), key.WithHelp("?/q/esc", "close help"))
		return []key.Binding{closeHelp, k.ForceQuit}
	}
	switch kind {
	case nav.KindEntries:
		return []key.Binding{k.Down, k.Up, k.Top, k.Bottom, k.Back, k.Help, k.Quit}
	case nav.KindCategories:
		return []key.Binding{k.Down, k.Up, k.Select, k.Help, k.Quit}
	default:
		return []key.Binding{k.Down, k.Up, k.Select, k.Back, k.Help, k.Quit}
	}
}

// HelpGroups returns the keybinding reference shown on the Help screen.
func (k KeyMap) HelpGroups() []components.ShortcutGroup {
	return []components.ShortcutGroup{
		{
			Title: "Navigation",
			Shortcuts: []components.Shortcut{
				shortcut(k.Down, "Move down"),
				shortcut(k.Up, "Move up"),
				shortcut(k.Top, "Go to top"),
				shortcut(k.Bottom, "Go to bottom"),
			},
		},
		{
			Title: "Selection",
			Shortcuts: []components.Shortcut{
				shortcut(k.Select, "Select / Enter"),
				shortcut(k.Back, "Go back"),
			},
		},
		{
			Title: "General",
			Shortcuts: []components.Shortcut{
				shortcut(k.Help, "Show this help"),
				shortcut(k.Quit, "Quit"),
			},
		},
		{
			Title: "Screens",
			Shortcuts: []components.Shortcut{
				{Desc: "Categories → Habits → Entries"},
				{Desc: "Navigate with h/l or Enter/Esc"},
			},
		},
	}
}

func shortcut(b key.Binding, desc string) components.Shortcut {
	return components.Shortcut{Key: b.Help().Key, Desc: desc}
}
