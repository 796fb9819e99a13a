package stats

import (
	"sort"
)

// Total is the accumulated time of one group, in fractional hours.
type Total struct {
	Label string
	Hours float64
}

// Totals is a grouping result. Entries are unique by label and kept in
// report order: names sort lexically, months and days chronologically.
type Totals []Total

func (t Totals) Map() map[string]float64 {
	m := make(map[string]float64, len(t))
	for _, total := range t {
		m[total.Label] = total.Hours
	}
	return m
}

// Hours returns the hours recorded for label and whether the label exists.
func (t Totals) Hours(label string) (float64, bool) {
	for _, total := range t {
		if total.Label == label {
			return total.Hours, true
		}
	}
	return 0, false
}

func (t Totals) Sum() float64 {
	sum := 0.0
	for _, total := range t {
		sum += total.Hours
	}
	return sum
}

func (t Totals) Labels() []string {
	labels := make([]string, 0, len(t))
	for _, total := range t {
		labels = append(labels, total.Label)
	}
	return labels
}

type Summary struct {
	CalendarTitle string
	EventCount    int
	TotalHours    float64
	ByEventName   Totals
	ByMonth       Totals
	ByDay         Totals
}

type StatsRenderer interface {
	RenderStats(stats Summary) (string, error)
}

func sortedKeys[K comparable](m map[K]float64, less func(a, b K) bool) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return less(keys[i], keys[j])
	})
	return keys
}
