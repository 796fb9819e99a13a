package calendar

import (
	"context"
)

type StubSource struct {
	calendar Calendar
	err      error
	calls    int
}

func NewStubSource(title string, events ...Event) *StubSource {
	return &StubSource{calendar: Calendar{Title: title, Events: events}}
}

func (s *StubSource) GetCalendar(ctx context.Context) (Calendar, error) {
	s.calls++
	if s.err != nil {
		return Calendar{}, s.err
	}
	events := make([]Event, len(s.calendar.Events))
	copy(events, s.calendar.Events)
	return Calendar{Title: s.calendar.Title, Events: events}, nil
}

func (s *StubSource) AddEvent(event Event) {
	s.calendar.Events = append(s.calendar.Events, event)
}

func (s *StubSource) FailWith(err error) {
	s.err = err
}

func (s *StubSource) Calls() int {
	return s.calls
}

func (s *StubSource) Cleanup() {
	s.calendar.Events = nil
	s.err = nil
	s.calls = 0
}
