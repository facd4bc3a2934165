// Package habit provides the habit-tracker backup data model and the
// read-only accessor that derives the views the browser shows.
package habit

const (
	// UnknownName is shown for habits without a name and for habit IDs
	// that are not in the snapshot.
	UnknownName = "Unknown"
	// Uncategorized is the category bucket for habits without a category.
	Uncategorized = "uncategorized"
)

// Habit is a tracked recurring activity.
type Habit struct {
	// ID identifies the habit; entries reference it through HabitID.
	ID string `json:"id"`
	// Name is the display name (UnknownName if absent).
	Name string `json:"name"`
	// Category is the grouping label (Uncategorized if absent).
	Category string `json:"category"`
	// TargetPerWeek is the weekly target count (0 if absent).
	TargetPerWeek int `json:"targetPerWeek"`
}

// Entry is one logged occurrence of a habit on a given date.
type Entry struct {
	ID        string `json:"id"`
	HabitID   string `json:"habitId"`
	Date      string `json:"date"`
	Value     int    `json:"value"`
	CreatedAt string `json:"createdAt"`
}

// Day returns the calendar-day part of Date.
func (e Entry) Day() string {
	return truncateDay(e.Date)
}

// CreatedDay returns the calendar-day part of CreatedAt.
func (e Entry) CreatedDay() string {
	return truncateDay(e.CreatedAt)
}

// Snapshot is the full content of one backup export.
type Snapshot struct {
	Habits  []Habit `json:"habits"`
	Entries []Entry `json:"entries"`
}

// CategoryStat summarizes the habits of one category.
type CategoryStat struct {
	Category          string
	HabitCount        int
	TotalWeeklyTarget int
}

// Summary holds snapshot-wide counts.
type Summary struct {
	Habits     int
	Entries    int
	Categories int
}

// normalize fills in defaults for absent fields. An empty string counts as
// absent.
func (h Habit) normalize() Habit {
	if h.Name == "" {
		h.Name = UnknownName
	}
	if h.Category == "" {
		h.Category = Uncategorized
	}
	if h.TargetPerWeek < 0 {
		h.TargetPerWeek = 0
	}
	return h
}

// truncateDay keeps the first ten characters of an ISO-8601 date or
// date-time, which is the YYYY-MM-DD part.
func truncateDay(s string) string {
	r := []rune(s)
	if len(r) <= 10 {
		return s
	}
	return string(r[:10])
}
