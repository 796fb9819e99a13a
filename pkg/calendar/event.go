package calendar

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMixedTimestamps  = errors.New("start and end mix timestamps with and without offset")
	ErrNegativeDuration = errors.New("event ends before it starts")
)

// Event is a single calendar entry. Start and End hold the ISO-8601 date or
// date-time strings exactly as delivered by the source.
type Event struct {
	Title string
	Start string
	End   string
}

func (e Event) StartTime() (time.Time, error) {
	start, err := ParseTimestamp(e.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %q start: %w", e.Title, err)
	}
	return start, nil
}

func (e Event) Duration() (time.Duration, error) {
	start, startNaive, err := parseTimestamp(e.Start)
	if err != nil {
		return 0, fmt.Errorf("event %q start: %w", e.Title, err)
	}
	end, endNaive, err := parseTimestamp(e.End)
	if err != nil {
		return 0, fmt.Errorf("event %q end: %w", e.Title, err)
	}
	if startNaive != endNaive {
		return 0, fmt.Errorf("event %q (%s - %s): %w", e.Title, e.Start, e.End, ErrMixedTimestamps)
	}
	duration := end.Sub(start)
	if duration < 0 {
		return 0, fmt.Errorf("event %q (%s - %s): %w", e.Title, e.Start, e.End, ErrNegativeDuration)
	}
	return duration, nil
}

// Hours is the event duration in fractional hours.
func (e Event) Hours() (float64, error) {
	duration, err := e.Duration()
	if err != nil {
		return 0, err
	}
	return duration.Seconds() / 3600, nil
}
