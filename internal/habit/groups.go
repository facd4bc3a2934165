package habit

import "slices"

// Groups is an ordered multimap from category to habits. Categories keep
// the order in which they first appeared.
type Groups struct {
	order  []string
	habits map[string][]Habit
}

func newGroups() *Groups {
	return &Groups{habits: make(map[string][]Habit)}
}

func (g *Groups) add(category string, h Habit) {
	if _, ok := g.habits[category]; !ok {
		g.order = append(g.order, category)
	}
	g.habits[category] = append(g.habits[category], h)
}

// Names returns the categories in first-appearance order.
func (g *Groups) Names() []string {
	return slices.Clone(g.order)
}

// Habits returns the habits of category, or nil if it has none.
func (g *Groups) Habits(category string) []Habit {
	return slices.Clone(g.habits[category])
}

// Has reports whether category has at least one habit.
func (g *Groups) Has(category string) bool {
	_, ok := g.habits[category]
	return ok
}

// Len returns the number of distinct categories.
func (g *Groups) Len() int {
	return len(g.order)
}
