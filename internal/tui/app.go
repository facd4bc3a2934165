// Package tui provides the terminal user interface for humane.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/humane/internal/habit"
	"github.com/wexinc/humane/internal/logging"
	"github.com/wexinc/humane/internal/nav"
	"github.com/wexinc/humane/internal/tui/components"
	"github.com/wexinc/humane/internal/tui/styles"
)

// Source is the data the browser needs: the screen queries plus the totals
// shown in the header.
type Source interface {
	nav.Source
	Summary() habit.Summary
}

// Options configures the browser.
type Options struct {
	// AltScreen runs the program in the terminal's alternate screen.
	AltScreen bool
	// CapitalizeCategories capitalizes category names for display.
	CapitalizeCategories bool
	// KeyMap overrides DefaultKeyMap when non-nil.
	KeyMap *KeyMap
	// Logger receives navigation events at debug level. Nil uses the
	// global logger.
	Logger *logging.Logger
	// ProgramOptions are passed through to tea.NewProgram.
	ProgramOptions []tea.ProgramOption
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		AltScreen:            true,
		CapitalizeCategories: true,
	}
}

// Model is the Bubble Tea model for the backup browser.
type Model struct {
	ctrl *nav.Controller
	keys KeyMap
	log  *logging.Logger

	// Components
	header      *components.Header
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay
	table       table.Model
	help        help.Model

	// Window dimensions
	width  int
	height int

	// shown is the screen last copied into the table.
	shown *nav.Screen
}

// New creates a browser model positioned on the Categories screen.
func New(src Source, opts Options) *Model {
	keys := DefaultKeyMap
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	log := opts.Logger
	if log == nil {
		log = logging.Global()
	}

	summary := src.Summary()
	header := components.NewHeader()
	header.SetData(components.HeaderData{
		Habits:     summary.Habits,
		Entries:    summary.Entries,
		Categories: summary.Categories,
	})

	t := table.New(table.WithFocused(true))
	t.SetStyles(styles.TableStyles())

	m := &Model{
		ctrl:        nav.New(src, nav.WithCapitalizedCategories(opts.CapitalizeCategories)),
		keys:        keys,
		log:         log.With("component", "tui"),
		header:      header,
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(keys.HelpGroups()),
		table:       t,
		help:        help.New(),
	}
	m.syncTable()
	return m
}

// Controller returns the navigation controller driving the model.
func (m *Model) Controller() *nav.Controller {
	return m.ctrl
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.help.Width = max(msg.Width-2, 0)
		m.helpOverlay.SetSize(msg.Width, m.bodyHeight())
		m.shown = nil
		m.syncTable()
		return m, nil
	}

	return m, nil
}

// handleKeyPress maps a key to an action and applies it.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg, m.ctrl.HelpVisible())
	if action == nav.ActionNone {
		return m, nil
	}

	tr := m.ctrl.Apply(action)
	if tr != nav.TransitionNone {
		cur := m.ctrl.Current()
		m.log.Debug("navigation",
			"key", msg.String(),
			"action", action.String(),
			"transition", tr.String(),
			"screen", cur.Kind.String(),
			"depth", m.ctrl.Depth(),
			"cursor", cur.Cursor,
		)
	}

	if tr == nav.TransitionQuit {
		return m, tea.Quit
	}
	m.syncTable()
	return m, nil
}

// Run starts the browser and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, src Source, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	programOpts = append(programOpts, opts.ProgramOptions...)

	p := tea.NewProgram(New(src, opts), programOpts...)
	if _, err := p.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctxErr
		}
		return err
	}
	return nil
}
