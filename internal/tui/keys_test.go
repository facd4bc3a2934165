package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/humane/internal/nav"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		helpOpen bool
		want     nav.Action
	}{
		{"j", runeKey("j"), false, nav.ActionMoveDown},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, false, nav.ActionMoveDown},
		{"k", runeKey("k"), false, nav.ActionMoveUp},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, false, nav.ActionMoveUp},
		{"g", runeKey("g"), false, nav.ActionGoTop},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, false, nav.ActionGoTop},
		{"G", runeKey("G"), false, nav.ActionGoBottom},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, false, nav.ActionGoBottom},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, false, nav.ActionSelect},
		{"l", runeKey("l"), false, nav.ActionSelect},
		{"h", runeKey("h"), false, nav.ActionBack},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false, nav.ActionBack},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, false, nav.ActionBack},
		{"?", runeKey("?"), false, nav.ActionShowHelp},
		{"? on help", runeKey("?"), true, nav.ActionShowHelp},
		{"q", runeKey("q"), false, nav.ActionQuit},
		{"q on help", runeKey("q"), true, nav.ActionBack},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false, nav.ActionQuit},
		{"ctrl+c on help", tea.KeyMsg{Type: tea.KeyCtrlC}, true, nav.ActionQuit},
		{"unbound", runeKey("x"), false, nav.ActionNone},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, false, nav.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultKeyMap.Action(tt.msg, tt.helpOpen); got != tt.want {
				t.Errorf("Action(%q, help=%v) = %v, want %v", tt.msg.String(), tt.helpOpen, got, tt.want)
			}
		})
	}
}

func TestHelpGroups(t *testing.T) {
	groups := DefaultKeyMap.HelpGroups()

	wantTitles := []string{"Navigation", "Selection", "General", "Screens"}
	if len(groups) != len(wantTitles) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantTitles))
	}
	for i, g := range groups {
		if g.Title != wantTitles[i] {
			t.Errorf("group %d = %q, want %q", i, g.Title, wantTitles[i])
		}
		if len(g.Shortcuts) == 0 {
			t.Errorf("group %q has no shortcuts", g.Title)
		}
	}

	if got := groups[0].Shortcuts[0].Key; got != "j/↓" {
		t.Errorf("first shortcut key = %q, want j/↓", got)
	}
}

func TestFooterBindings(t *testing.T) {
	k := DefaultKeyMap

	hasKey := func(t *testing.T, kind nav.Kind, helpOpen bool, want string) bool {
		t.Helper()
		for _, b := range k.footerBindings(kind, helpOpen) {
			if b.Help().Key == want {
				return true
			}
		}
		return false
	}

	if !hasKey(t, nav.KindEntries, false, "g") {
		t.Error("entries footer should offer go to top")
	}
	if hasKey(t, nav.KindCategories, false, "g") {
		t.Error("categories footer should not offer go to top")
	}
	if hasKey(t, nav.KindEntries, false, "enter/l") {
		t.Error("entries footer should not offer select")
	}
	if !hasKey(t, nav.KindHabits, true, "?/q/esc") {
		t.Error("help footer should offer closing help")
	}
}
