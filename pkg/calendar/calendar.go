package calendar

import (
	"context"
)

// Calendar is a read-only snapshot of a calendar and its events, produced
// once per run by a Source.
type Calendar struct {
	Title  string
	Events []Event
}

type Source interface {
	GetCalendar(ctx context.Context) (Calendar, error)
}
