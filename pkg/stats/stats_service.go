package stats

import (
	"context"
	"fmt"

	"github.com/klokku/caltally/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

type StatsService interface {
	GetStats(ctx context.Context, options Options) (Summary, error)
}

type StatsServiceImpl struct {
	source calendar.Source
}

func NewStatsServiceImpl(source calendar.Source) *StatsServiceImpl {
	return &StatsServiceImpl{
		source: source,
	}
}

func (s *StatsServiceImpl) GetStats(ctx context.Context, options Options) (Summary, error) {
	cal, err := s.source.GetCalendar(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get calendar: %w", err)
	}
	log.Debugf("Fetched %d events from calendar %q", len(cal.Events), cal.Title)

	events, err := FilterEvents(cal.Events, options)
	if err != nil {
		return Summary{}, err
	}
	if options.Period != nil {
		log.Debugf("Period filter: %s", options.Period)
	}
	log.Debugf("%d events left after filtering (skip prefixes: %q)", len(events), options.SkipPrefixes)

	byEventName, err := GroupByEventName(events)
	if err != nil {
		return Summary{}, err
	}
	byMonth, err := GroupByMonth(events)
	if err != nil {
		return Summary{}, err
	}
	byDay, err := GroupByDay(events)
	if err != nil {
		return Summary{}, err
	}
	log.Tracef("Totals by event name: %v", byEventName)

	return Summary{
		CalendarTitle: cal.Title,
		EventCount:    len(events),
		TotalHours:    byEventName.Sum(),
		ByEventName:   byEventName,
		ByMonth:       byMonth,
		ByDay:         byDay,
	}, nil
}
