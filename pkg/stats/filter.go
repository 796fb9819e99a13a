package stats

import (
	"strings"

	"github.com/klokku/caltally/pkg/calendar"
)

// MatchesPeriod reports whether the event starts within period. A nil
// period matches every event without parsing it.
func MatchesPeriod(event calendar.Event, period *Period) (bool, error) {
	if period == nil {
		return true, nil
	}
	start, err := event.StartTime()
	if err != nil {
		return false, err
	}
	return start.Year() == period.Year && start.Month() == period.Month, nil
}

// ShouldSkip reports whether title starts with any of the prefixes.
func ShouldSkip(title string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}

func FilterEvents(events []calendar.Event, options Options) ([]calendar.Event, error) {
	filtered := make([]calendar.Event, 0, len(events))
	for _, event := range events {
		matches, err := MatchesPeriod(event, options.Period)
		if err != nil {
			return nil, err
		}
		if !matches || ShouldSkip(event.Title, options.SkipPrefixes) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered, nil
}
