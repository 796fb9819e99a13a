package google

import (
	"context"

	"github.com/klokku/caltally/pkg/calendar"
)

// Source reads one configured calendar. Authentication happens on the first
// fetch, not at construction.
type Source struct {
	service    Service
	calendarId string
}

func NewSource(service Service, calendarId string) *Source {
	return &Source{
		service:    service,
		calendarId: calendarId,
	}
}

func (s *Source) GetCalendar(ctx context.Context) (calendar.Calendar, error) {
	googleCalendar, err := s.service.GetCalendar(ctx, s.calendarId)
	if err != nil {
		return calendar.Calendar{}, err
	}
	return googleCalendar.GetCalendar(ctx)
}
