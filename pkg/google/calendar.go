package google

import (
	"context"
	"fmt"

	"github.com/klokku/caltally/pkg/calendar"
	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
)

// Calendar is a single Google calendar read through the Calendar API.
type Calendar struct {
	service    *gcal.Service
	calendarId string
}

func newGoogleCalendar(service *gcal.Service, calendarId string) *Calendar {
	return &Calendar{
		service:    service,
		calendarId: calendarId,
	}
}

// GetCalendar fetches the first page of events; pagination is not followed.
func (c *Calendar) GetCalendar(ctx context.Context) (calendar.Calendar, error) {
	log.Debugf("Fetching events of calendar: %s", c.calendarId)
	googleEvents, err := c.service.Events.List(c.calendarId).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %w", err)
		log.Error(err)
		return calendar.Calendar{}, err
	}

	return calendar.Calendar{
		Title:  googleEvents.Summary,
		Events: googleEventsToEvents(googleEvents.Items),
	}, nil
}

func googleEventsToEvents(googleEvents []*gcal.Event) []calendar.Event {
	events := make([]calendar.Event, 0, len(googleEvents))
	for _, item := range googleEvents {
		if item == nil {
			continue
		}
		start := eventDateTime(item.Start)
		end := eventDateTime(item.End)
		if item.Summary == "" || start == "" || end == "" {
			log.Warnf("found calendar event with missing fields - ignoring: %q (%s - %s)", item.Summary, start, end)
			continue
		}

		events = append(events, calendar.Event{
			Title: item.Summary,
			Start: start,
			End:   end,
		})
	}
	return events
}

// eventDateTime prefers the date-time and falls back to the date of
// all-day events.
func eventDateTime(edt *gcal.EventDateTime) string {
	if edt == nil {
		return ""
	}
	if edt.DateTime != "" {
		return edt.DateTime
	}
	return edt.Date
}
