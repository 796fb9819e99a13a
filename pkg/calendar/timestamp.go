package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTimestamp = errors.New("invalid ISO-8601 timestamp")

type timestampLayout struct {
	layout string
	naive  bool
}

// Fractional seconds are accepted by time.Parse after the seconds field
// even though the layouts don't spell them out.
var timestampLayouts = []timestampLayout{
	{layout: "2006-01-02T15:04:05Z07:00"},
	{layout: "2006-01-02T15:04:05Z0700"},
	{layout: "2006-01-02T15:04Z07:00"},
	{layout: "2006-01-02T15:04Z0700"},
	{layout: "2006-01-02T15:04:05", naive: true},
	{layout: "2006-01-02T15:04", naive: true},
	{layout: "2006-01-02", naive: true},
}

// ParseTimestamp parses a date or date-time string as delivered by a
// calendar feed. Values with an offset keep it, so the calendar date of the
// result is always the date written in the string.
func ParseTimestamp(value string) (time.Time, error) {
	t, _, err := parseTimestamp(value)
	return t, err
}

func parseTimestamp(value string) (time.Time, bool, error) {
	normalized := strings.TrimSpace(value)
	if len(normalized) > 10 && normalized[10] == ' ' {
		normalized = normalized[:10] + "T" + normalized[11:]
	}
	for _, l := range timestampLayouts {
		t, err := time.Parse(l.layout, normalized)
		if err == nil {
			return t, l.naive, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}
