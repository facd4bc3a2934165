package habit

import (
	"encoding/json"
	"os"
	"slices"
	"sort"

	"github.com/tidwall/jsonc"

	herrors "github.com/wexinc/humane/internal/errors"
)

// Options selects the data source for New. Exactly one of Path or Snapshot
// must be set.
type Options struct {
	// Path is a backup file to read.
	Path string
	// Snapshot is an already-parsed backup, mostly for tests.
	Snapshot *Snapshot
}

// Data is the read-only accessor over one loaded snapshot.
// The snapshot never changes after New returns, so every query is a pure
// function of it.
type Data struct {
	path     string
	snapshot Snapshot
	byID     map[string]Habit
}

// New loads a snapshot from the configured source.
// It fails with an ErrConfig error when neither or both sources are set, and
// with an ErrLoad error when the file cannot be read or parsed.
func New(opts Options) (*Data, error) {
	switch {
	case opts.Path == "" && opts.Snapshot == nil:
		return nil, herrors.NoDataSource()
	case opts.Path != "" && opts.Snapshot != nil:
		return nil, herrors.AmbiguousDataSource(opts.Path)
	}

	if opts.Snapshot != nil {
		return newData("", *opts.Snapshot), nil
	}

	raw, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, herrors.BackupReadError(opts.Path, err)
	}
	snap, err := Parse(raw)
	if err != nil {
		return nil, herrors.BackupParseError(opts.Path, err)
	}
	return newData(opts.Path, snap), nil
}

// Load is a convenience wrapper around New for a backup file.
func Load(path string) (*Data, error) {
	return New(Options{Path: path})
}

// FromSnapshot wraps an in-memory snapshot.
func FromSnapshot(snap Snapshot) *Data {
	return newData("", snap)
}

// Parse decodes a backup export. Comments and trailing commas are
// tolerated; missing "habits" or "entries" keys yield empty lists and
// unknown fields are ignored.
func Parse(raw []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(jsonc.ToJSON(raw), &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func newData(path string, snap Snapshot) *Data {
	d := &Data{
		path: path,
		snapshot: Snapshot{
			Habits:  make([]Habit, len(snap.Habits)),
			Entries: slices.Clone(snap.Entries),
		},
		byID: make(map[string]Habit, len(snap.Habits)),
	}
	if d.snapshot.Entries == nil {
		d.snapshot.Entries = []Entry{}
	}
	for i, h := range snap.Habits {
		h = h.normalize()
		d.snapshot.Habits[i] = h
		// Duplicate IDs: the last habit wins.
		d.byID[h.ID] = h
	}
	return d
}

// Path returns the file the snapshot was loaded from, or "" for in-memory data.
func (d *Data) Path() string {
	return d.path
}

// Habits returns all habits in snapshot order.
func (d *Data) Habits() []Habit {
	return slices.Clone(d.snapshot.Habits)
}

// Habit looks up a habit by ID.
func (d *Data) Habit(id string) (Habit, bool) {
	h, ok := d.byID[id]
	return h, ok
}

// Categories groups all habits by category in order of first appearance.
func (d *Data) Categories() *Groups {
	g := newGroups()
	for _, h := range d.snapshot.Habits {
		g.add(h.Category, h)
	}
	return g
}

// HabitsInCategory returns the habits whose category equals category, in
// snapshot order. Unknown categories yield an empty list.
func (d *Data) HabitsInCategory(category string) []Habit {
	habits := []Habit{}
	for _, h := range d.snapshot.Habits {
		if h.Category == category {
			habits = append(habits, h)
		}
	}
	return habits
}

// EntriesForHabit returns the entries logged for habitID, in snapshot order.
// Unknown IDs yield an empty list.
func (d *Data) EntriesForHabit(habitID string) []Entry {
	entries := []Entry{}
	for _, e := range d.snapshot.Entries {
		if e.HabitID == habitID {
			entries = append(entries, e)
		}
	}
	return entries
}

// HabitName returns the name of habitID, or UnknownName if it is not found.
func (d *Data) HabitName(habitID string) string {
	h, ok := d.byID[habitID]
	if !ok {
		return UnknownName
	}
	return h.Name
}

// CategoryStats returns one row per category sorted by category name.
func (d *Data) CategoryStats() []CategoryStat {
	groups := d.Categories()
	names := groups.Names()
	sort.Strings(names)

	stats := make([]CategoryStat, 0, len(names))
	for _, name := range names {
		habits := groups.Habits(name)
		stat := CategoryStat{Category: name, HabitCount: len(habits)}
		for _, h := range habits {
			stat.TotalWeeklyTarget += h.TargetPerWeek
		}
		stats = append(stats, stat)
	}
	return stats
}

// Summary returns snapshot-wide counts.
func (d *Data) Summary() Summary {
	return Summary{
		Habits:     len(d.snapshot.Habits),
		Entries:    len(d.snapshot.Entries),
		Categories: d.Categories().Len(),
	}
}
