package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidOptions = errors.New("invalid options")

// Period restricts the report to a single calendar month.
type Period struct {
	Year  int
	Month time.Month
}

func (p Period) String() string {
	return MonthLabel(p.Year, p.Month)
}

// Options are the recognized report filters. A nil Period and an empty
// SkipPrefixes disable the respective filter.
type Options struct {
	SkipPrefixes []string
	Period       *Period
}

// NewOptions validates raw CLI input. year and month must be given together
// or not at all.
func NewOptions(skip string, year, month *int) (Options, error) {
	options := Options{SkipPrefixes: ParseSkipList(skip)}

	switch {
	case year == nil && month == nil:
		return options, nil
	case year == nil || month == nil:
		return Options{}, fmt.Errorf("%w: both year and month must be provided", ErrInvalidOptions)
	}

	if *month < 1 || *month > 12 {
		return Options{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidOptions, *month)
	}
	if *year < 1 {
		return Options{}, fmt.Errorf("%w: year must be positive, got %d", ErrInvalidOptions, *year)
	}
	options.Period = &Period{Year: *year, Month: time.Month(*month)}
	return options, nil
}

// ParseSkipList splits a comma-separated prefix list. Items are kept as
// typed, spaces included; empty items are dropped because an empty prefix
// would match every title.
func ParseSkipList(skip string) []string {
	if skip == "" {
		return nil
	}
	var prefixes []string
	for _, prefix := range strings.Split(skip, ",") {
		if prefix == "" {
			continue
		}
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}
