package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/klokku/caltally/pkg/calendar"
)

const dayLabelLayout = "Monday 02 January 2006"

type monthKey struct {
	year  int
	month time.Month
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

// GroupByEventName sums event hours per exact event title.
func GroupByEventName(events []calendar.Event) (Totals, error) {
	byName, err := accumulate(events, func(event calendar.Event) (string, error) {
		return event.Title, nil
	})
	if err != nil {
		return nil, err
	}

	names := sortedKeys(byName, func(a, b string) bool { return a < b })
	totals := make(Totals, 0, len(names))
	for _, name := range names {
		totals = append(totals, Total{Label: name, Hours: byName[name]})
	}
	return totals, nil
}

// GroupByMonth sums event hours per month of the event start, labelled
// like "March-2024".
func GroupByMonth(events []calendar.Event) (Totals, error) {
	byMonth, err := accumulate(events, func(event calendar.Event) (monthKey, error) {
		start, err := event.StartTime()
		if err != nil {
			return monthKey{}, err
		}
		return monthKey{year: start.Year(), month: start.Month()}, nil
	})
	if err != nil {
		return nil, err
	}

	months := sortedKeys(byMonth, func(a, b monthKey) bool {
		if a.year != b.year {
			return a.year < b.year
		}
		return a.month < b.month
	})
	totals := make(Totals, 0, len(months))
	for _, m := range months {
		totals = append(totals, Total{Label: MonthLabel(m.year, m.month), Hours: byMonth[m]})
	}
	return totals, nil
}

// GroupByDay sums event hours per calendar date of the event start, as
// written in the timestamp, labelled like "Thursday 07 March 2024".
func GroupByDay(events []calendar.Event) (Totals, error) {
	byDay, err := accumulate(events, func(event calendar.Event) (dayKey, error) {
		start, err := event.StartTime()
		if err != nil {
			return dayKey{}, err
		}
		year, month, day := start.Date()
		return dayKey{year: year, month: month, day: day}, nil
	})
	if err != nil {
		return nil, err
	}

	days := sortedKeys(byDay, func(a, b dayKey) bool {
		if a.year != b.year {
			return a.year < b.year
		}
		if a.month != b.month {
			return a.month < b.month
		}
		return a.day < b.day
	})
	totals := make(Totals, 0, len(days))
	for _, d := range days {
		date := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
		totals = append(totals, Total{Label: DayLabel(date), Hours: byDay[d]})
	}
	return totals, nil
}

func accumulate[K comparable](events []calendar.Event, keyOf func(calendar.Event) (K, error)) (map[K]float64, error) {
	hoursByKey := make(map[K]float64)
	for _, event := range events {
		hours, err := event.Hours()
		if err != nil {
			return nil, err
		}
		key, err := keyOf(event)
		if err != nil {
			return nil, err
		}
		hoursByKey[key] += hours
	}
	return hoursByKey, nil
}

func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s-%d", month, year)
}

// ParseMonthLabel is the inverse of MonthLabel.
func ParseMonthLabel(label string) (int, time.Month, error) {
	idx := strings.LastIndex(label, "-")
	if idx <= 0 {
		return 0, 0, fmt.Errorf("invalid month label %q", label)
	}
	year, err := strconv.Atoi(label[idx+1:])
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("invalid year in month label %q", label)
	}
	name := label[:idx]
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return year, m, nil
		}
	}
	return 0, 0, fmt.Errorf("invalid month name in month label %q", label)
}

func DayLabel(date time.Time) string {
	return date.Format(dayLabelLayout)
}
