// Package nav implements the screen-stack navigation for the backup browser.
// It knows nothing about terminals: the TUI translates keys to Actions and
// renders whatever Screen is current.
package nav

import (
	"fmt"
	"sort"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/wexinc/humane/internal/habit"
)

// Kind identifies a list screen.
type Kind int

const (
	// KindCategories lists every category.
	KindCategories Kind = iota
	// KindHabits lists the habits of one category.
	KindHabits
	// KindEntries lists the entries of one habit.
	KindEntries
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindCategories:
		return "categories"
	case KindHabits:
		return "habits"
	case KindEntries:
		return "entries"
	default:
		return "unknown"
	}
}

// Placeholder cells shown on an Entries screen for a habit with no entries.
var noEntriesCells = []string{"No entries", "-", "-"}

// Row is one rendered line of a list screen.
type Row struct {
	// Key is the entity the row stands for: a category on the Categories
	// screen, a habit ID on the Habits screen, empty otherwise.
	Key string
	// Cells are the display values, one per column.
	Cells []string
	// Placeholder marks the "no data" row.
	Placeholder bool
}

// Screen is one list view on the navigation stack.
type Screen struct {
	Kind Kind
	// Category is set on Habits screens.
	Category string
	// HabitID is set on Entries screens.
	HabitID string
	Title   string
	Columns []string
	Rows    []Row
	// Cursor is the highlighted row index.
	Cursor int
}

// Len returns the number of rows.
func (s *Screen) Len() int {
	return len(s.Rows)
}

// SelectedRow returns the row under the cursor.
func (s *Screen) SelectedRow() (Row, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Rows) {
		return Row{}, false
	}
	return s.Rows[s.Cursor], true
}

// moveBy moves the cursor by delta, clamped to the rows.
func (s *Screen) moveBy(delta int) bool {
	return s.moveTo(s.Cursor + delta)
}

func (s *Screen) moveTo(idx int) bool {
	if len(s.Rows) == 0 {
		return false
	}
	idx = max(0, min(idx, len(s.Rows)-1))
	if idx == s.Cursor {
		return false
	}
	s.Cursor = idx
	return true
}

// Source is the read-only data the screens are built from.
type Source interface {
	CategoryStats() []habit.CategoryStat
	HabitsInCategory(category string) []habit.Habit
	EntriesForHabit(habitID string) []habit.Entry
	HabitName(habitID string) string
}

// screenBuilder derives screens from a Source. Rows are built fresh on every
// call.
type screenBuilder struct {
	src        Source
	capitalize bool
}

func (b screenBuilder) categoryLabel(category string) string {
	if b.capitalize {
		return Capitalize(category)
	}
	return category
}

func (b screenBuilder) categories() *Screen {
	stats := b.src.CategoryStats()
	rows := make([]Row, 0, len(stats))
	for _, st := range stats {
		rows = append(rows, Row{
			Key: st.Category,
			Cells: []string{
				b.categoryLabel(st.Category),
				strconv.Itoa(st.HabitCount),
				strconv.Itoa(st.TotalWeeklyTarget),
			},
		})
	}
	return &Screen{
		Kind:    KindCategories,
		Title:   "Categories",
		Columns: []string{"Category", "Habits", "Weekly Target"},
		Rows:    rows,
	}
}

func (b screenBuilder) habits(category string) *Screen {
	habits := b.src.HabitsInCategory(category)
	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].Name < habits[j].Name
	})

	rows := make([]Row, 0, len(habits))
	for _, h := range habits {
		rows = append(rows, Row{
			Key: h.ID,
			Cells: []string{
				h.Name,
				strconv.Itoa(h.TargetPerWeek),
				strconv.Itoa(len(b.src.EntriesForHabit(h.ID))),
			},
		})
	}
	return &Screen{
		Kind:     KindHabits,
		Category: category,
		Title:    fmt.Sprintf("Habits: %s", b.categoryLabel(category)),
		Columns:  []string{"Name", "Target/Week", "Entries"},
		Rows:     rows,
	}
}

func (b screenBuilder) entries(habitID string) *Screen {
	entries := b.src.EntriesForHabit(habitID)
	// Most recent first; ties keep snapshot order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	rows := make([]Row, 0, max(len(entries), 1))
	for _, e := range entries {
		rows = append(rows, Row{
			Cells: []string{e.Day(), strconv.Itoa(e.Value), e.CreatedDay()},
		})
	}
	if len(rows) == 0 {
		rows = append(rows, Row{Cells: append([]string(nil), noEntriesCells...), Placeholder: true})
	}
	return &Screen{
		Kind:    KindEntries,
		HabitID: habitID,
		Title:   fmt.Sprintf("Entries: %s", b.src.HabitName(habitID)),
		Columns: []string{"Date", "Value", "Created At"},
		Rows:    rows,
	}
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	rest := []rune(s[size:])
	for i, c := range rest {
		rest[i] = unicode.ToLower(c)
	}
	return string(unicode.ToUpper(r)) + string(rest)
}
