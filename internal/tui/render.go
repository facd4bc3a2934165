package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/wexinc/humane/internal/nav"
	"github.com/wexinc/humane/internal/tui/components"
	"github.com/wexinc/humane/internal/tui/styles"
)

const (
	// helpTitle is the screen title while Help is open.
	helpTitle = "Keybindings"
	// emptyMessage replaces the table when the backup has no habits.
	emptyMessage = "No habits in this backup"
	// chromeHeight is the header, title, status and footer lines around the
	// body.
	chromeHeight = 4
	// minBodyHeight keeps the table usable in tiny terminals.
	minBodyHeight = 3
	// minColumnWidth is the narrowest a column is squeezed to.
	minColumnWidth = 4
	// cellPadding is the horizontal padding table styles add per column.
	cellPadding = 2
	ellipsis    = "…"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.ctrl.Quitting() {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")

	helpOpen := m.ctrl.HelpVisible()
	screen := m.ctrl.Current()

	title := screen.Title
	if helpOpen {
		title = helpTitle
	}
	b.WriteString(styles.ScreenTitleStyle.Render(m.fit(title, 2)))
	b.WriteString("\n")

	switch {
	case helpOpen:
		b.WriteString(m.helpOverlay.View())
	case screen.Len() == 0:
		b.WriteString(styles.EmptyStyle.Render(emptyMessage))
	default:
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")

	if !helpOpen {
		b.WriteString(m.statusBar.View())
		b.WriteString("\n")
	}

	footer := m.help.ShortHelpView(m.keys.footerBindings(screen.Kind, helpOpen))
	b.WriteString(styles.FooterStyle.Render(footer))

	return b.String()
}

// fit truncates s to the window width less padding. Before the first
// WindowSizeMsg the width is unknown and s is returned as is.
func (m *Model) fit(s string, padding int) string {
	if m.width <= 0 {
		return s
	}
	return ansi.Truncate(s, max(m.width-padding, 1), ellipsis)
}

// bodyHeight returns the lines available below the title.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return minBodyHeight
	}
	return max(m.height-chromeHeight, minBodyHeight)
}

// syncTable copies the visible screen into the table. Rows are only rebuilt
// when the screen changes; the cursor is copied every time.
func (m *Model) syncTable() {
	screen := m.ctrl.Current()

	if screen != m.shown {
		widths := columnWidths(screen, m.width)
		cols := make([]table.Column, len(screen.Columns))
		for i, title := range screen.Columns {
			cols[i] = table.Column{Title: ansi.Truncate(title, widths[i], ellipsis), Width: widths[i]}
		}
		// Clear rows first so the table never renders old rows against
		// new columns.
		m.table.SetRows(nil)
		m.table.SetColumns(cols)
		m.table.SetRows(tableRows(screen, widths))
		m.shown = screen
	}

	if m.width > 0 {
		m.table.SetWidth(m.width)
	}
	m.table.SetHeight(m.bodyHeight())
	if screen.Len() > 0 {
		m.table.SetCursor(screen.Cursor)
	}
	m.syncStatus(screen)
}

// syncStatus updates the breadcrumb and cursor position.
func (m *Model) syncStatus(screen *nav.Screen) {
	stack := m.ctrl.Stack()
	crumbs := make([]string, len(stack))
	for i, s := range stack {
		crumbs[i] = s.Title
	}

	pos := 0
	if screen.Len() > 0 {
		pos = screen.Cursor + 1
	}
	m.statusBar.SetData(components.StatusBarData{
		Breadcrumb: crumbs,
		Position:   pos,
		Total:      screen.Len(),
	})
}

// tableRows converts screen rows to table rows, cutting cells to their
// column width.
func tableRows(screen *nav.Screen, widths []int) []table.Row {
	rows := make([]table.Row, len(screen.Rows))
	for i, r := range screen.Rows {
		row := make(table.Row, len(widths))
		for j := range widths {
			if j < len(r.Cells) {
				row[j] = ansi.Truncate(r.Cells[j], widths[j], ellipsis)
			}
		}
		rows[i] = row
	}
	return rows
}

// columnWidths sizes each column to its widest cell or title. When the
// total exceeds the window width the widest column is narrowed first, down
// to minColumnWidth. A zero window width leaves natural widths.
func columnWidths(screen *nav.Screen, windowWidth int) []int {
	widths := make([]int, len(screen.Columns))
	for i, title := range screen.Columns {
		widths[i] = max(ansi.StringWidth(title), minColumnWidth)
	}
	for _, r := range screen.Rows {
		for i := range widths {
			if i < len(r.Cells) {
				widths[i] = max(widths[i], ansi.StringWidth(r.Cells[i]))
			}
		}
	}

	if windowWidth <= 0 {
		return widths
	}

	available := windowWidth - cellPadding*len(widths)
	for sum(widths) > available {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
