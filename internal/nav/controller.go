package nav

// Action is an input-independent navigation command.
type Action int

const (
	// ActionNone does nothing.
	ActionNone Action = iota
	// ActionMoveDown moves the cursor one row down.
	ActionMoveDown
	// ActionMoveUp moves the cursor one row up.
	ActionMoveUp
	// ActionGoTop jumps to the first row of an Entries screen.
	ActionGoTop
	// ActionGoBottom jumps to the last row of an Entries screen.
	ActionGoBottom
	// ActionSelect drills into the row under the cursor.
	ActionSelect
	// ActionBack returns to the previous screen or closes Help.
	ActionBack
	// ActionShowHelp opens Help, or closes it when already open.
	ActionShowHelp
	// ActionQuit ends the session.
	ActionQuit
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveDown:
		return "move_down"
	case ActionMoveUp:
		return "move_up"
	case ActionGoTop:
		return "go_top"
	case ActionGoBottom:
		return "go_bottom"
	case ActionSelect:
		return "select"
	case ActionBack:
		return "back"
	case ActionShowHelp:
		return "show_help"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Transition describes what an Apply call did.
type Transition int

const (
	// TransitionNone means the action was a no-op.
	TransitionNone Transition = iota
	// TransitionMoved means the cursor moved.
	TransitionMoved
	// TransitionPushed means a screen was pushed.
	TransitionPushed
	// TransitionPopped means a screen was popped.
	TransitionPopped
	// TransitionHelpOpened means the Help overlay was opened.
	TransitionHelpOpened
	// TransitionHelpClosed means the Help overlay was closed.
	TransitionHelpClosed
	// TransitionQuit means the session should end.
	TransitionQuit
)

// String returns the string representation of the transition.
func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionMoved:
		return "moved"
	case TransitionPushed:
		return "pushed"
	case TransitionPopped:
		return "popped"
	case TransitionHelpOpened:
		return "help_opened"
	case TransitionHelpClosed:
		return "help_closed"
	case TransitionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithCapitalizedCategories controls whether category names are capitalized
// for display. The default is true.
func WithCapitalizedCategories(enabled bool) Option {
	return func(c *Controller) {
		c.builder.capitalize = enabled
	}
}

// Controller is the navigation state machine. The visible screen is the top
// of the stack unless the Help overlay is open, in which case Help covers
// the screen it remembers.
//
// Controller is not safe for concurrent use; the TUI drives it from a single
// goroutine.
type Controller struct {
	builder screenBuilder
	stack   []*Screen
	// helpOver is the screen Help was opened over, nil when Help is closed.
	helpOver *Screen
	quitting bool
}

// New creates a Controller showing the Categories screen.
func New(src Source, opts ...Option) *Controller {
	c := &Controller{
		builder: screenBuilder{src: src, capitalize: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.stack = []*Screen{c.builder.categories()}
	return c
}

// Current returns the screen on top of the stack. While Help is open this
// is the screen beneath it.
func (c *Controller) Current() *Screen {
	return c.stack[len(c.stack)-1]
}

// Depth returns the number of screens on the stack.
func (c *Controller) Depth() int {
	return len(c.stack)
}

// Stack returns the screens from root to top.
func (c *Controller) Stack() []*Screen {
	return append([]*Screen(nil), c.stack...)
}

// HelpVisible reports whether the Help overlay is open.
func (c *Controller) HelpVisible() bool {
	return c.helpOver != nil
}

// HelpOver returns the screen the Help overlay remembers, or nil.
func (c *Controller) HelpOver() *Screen {
	return c.helpOver
}

// Quitting reports whether Quit has been applied.
func (c *Controller) Quitting() bool {
	return c.quitting
}

// Apply processes one action to completion.
func (c *Controller) Apply(a Action) Transition {
	if c.quitting {
		return TransitionNone
	}
	if a == ActionQuit {
		c.quitting = true
		return TransitionQuit
	}
	if c.helpOver != nil {
		return c.applyHelp(a)
	}

	screen := c.Current()
	switch a {
	case ActionMoveDown:
		return moved(screen.moveBy(1))
	case ActionMoveUp:
		return moved(screen.moveBy(-1))
	case ActionGoTop:
		if screen.Kind != KindEntries {
			return TransitionNone
		}
		return moved(screen.moveTo(0))
	case ActionGoBottom:
		if screen.Kind != KindEntries {
			return TransitionNone
		}
		return moved(screen.moveTo(screen.Len() - 1))
	case ActionSelect:
		return c.selectRow(screen)
	case ActionBack:
		if len(c.stack) == 1 {
			return TransitionNone
		}
		c.stack = c.stack[:len(c.stack)-1]
		return TransitionPopped
	case ActionShowHelp:
		c.helpOver = screen
		return TransitionHelpOpened
	}
	return TransitionNone
}

// applyHelp handles actions while Help is open. Only closing actions have
// an effect.
func (c *Controller) applyHelp(a Action) Transition {
	switch a {
	case ActionBack, ActionShowHelp:
		c.helpOver = nil
		return TransitionHelpClosed
	}
	return TransitionNone
}

// selectRow pushes the screen for the row under the cursor. The target is
// resolved through the row's key, never from the index alone.
func (c *Controller) selectRow(screen *Screen) Transition {
	row, ok := screen.SelectedRow()
	if !ok || row.Placeholder {
		return TransitionNone
	}

	var next *Screen
	switch screen.Kind {
	case KindCategories:
		next = c.builder.habits(row.Key)
	case KindHabits:
		next = c.builder.entries(row.Key)
	default:
		return TransitionNone
	}
	c.stack = append(c.stack, next)
	return TransitionPushed
}

func moved(ok bool) Transition {
	if ok {
		return TransitionMoved
	}
	return TransitionNone
}
