package ics

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"
	// TZID values must resolve on hosts without a zoneinfo database.
	_ "time/tzdata"

	ical "github.com/arran4/golang-ical"
	"github.com/klokku/caltally/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

const (
	icsDateLayout     = "20060102"
	icsDateTimeLayout = "20060102T150405"
	icsUTCLayout      = "20060102T150405Z"

	isoDateLayout     = "2006-01-02"
	isoDateTimeLayout = "2006-01-02T15:04:05"
)

// icsTime is a DTSTART/DTEND value together with the ISO layout that keeps
// its written form: date-only, naive date-time or date-time with offset.
type icsTime struct {
	t      time.Time
	layout string
}

func (v icsTime) String() string {
	return v.t.Format(v.layout)
}

func (v icsTime) add(d time.Duration, days int) icsTime {
	return icsTime{t: v.t.AddDate(0, 0, days).Add(d), layout: v.layout}
}

// ParseCalendar maps the VEVENTs of an iCalendar document to events.
// Events without a summary or with unusable times are skipped.
func ParseCalendar(name string, body []byte) (calendar.Calendar, error) {
	if len(body) == 0 {
		return calendar.Calendar{}, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		err := fmt.Errorf("unable to parse calendar %s: %w", name, err)
		log.Error(err)
		return calendar.Calendar{}, err
	}

	title := name
	for _, p := range cal.CalendarProperties {
		if p.IANAToken == string(ical.PropertyXWRCalName) && p.Value != "" {
			title = p.Value
		}
	}

	events := make([]calendar.Event, 0)
	for _, ve := range cal.Events() {
		event, err := parseVEvent(ve)
		if err != nil {
			log.Warnf("found calendar event that cannot be used - ignoring: %v", err)
			continue
		}
		events = append(events, event)
	}

	return calendar.Calendar{Title: title, Events: events}, nil
}

func parseVEvent(ve *ical.VEvent) (calendar.Event, error) {
	summary := ""
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}
	if summary == "" {
		return calendar.Event{}, errors.New("missing SUMMARY")
	}

	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil {
		return calendar.Event{}, fmt.Errorf("%q: missing DTSTART", summary)
	}
	start, err := parseIcsTime(startProp.Value, startProp.ICalParameters)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("%q: DTSTART: %w", summary, err)
	}

	var end icsTime
	switch {
	case ve.GetProperty(ical.ComponentPropertyDtEnd) != nil:
		endProp := ve.GetProperty(ical.ComponentPropertyDtEnd)
		end, err = parseIcsTime(endProp.Value, endProp.ICalParameters)
		if err != nil {
			return calendar.Event{}, fmt.Errorf("%q: DTEND: %w", summary, err)
		}
	case ve.GetProperty(ical.ComponentPropertyDuration) != nil:
		days, d, err := parseIcsDuration(ve.GetProperty(ical.ComponentPropertyDuration).Value)
		if err != nil {
			return calendar.Event{}, fmt.Errorf("%q: DURATION: %w", summary, err)
		}
		end = start.add(d, days)
	case start.layout == isoDateLayout:
		// RFC 5545: an all-day event without an end lasts one day.
		end = start.add(0, 1)
	default:
		end = start
	}

	event := calendar.Event{
		Title: summary,
		Start: start.String(),
		End:   end.String(),
	}
	if _, err := event.Duration(); err != nil {
		return calendar.Event{}, err
	}
	return event, nil
}

func parseIcsTime(value string, params map[string][]string) (icsTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return icsTime{}, errors.New("empty time value")
	}

	if isDateValue(value, params) {
		t, err := time.Parse(icsDateLayout, value)
		if err != nil {
			return icsTime{}, err
		}
		return icsTime{t: t, layout: isoDateLayout}, nil
	}

	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse(icsUTCLayout, value)
		if err != nil {
			return icsTime{}, err
		}
		return icsTime{t: t, layout: time.RFC3339}, nil
	}

	if tzid := firstParam(params, "TZID"); tzid != "" {
		loc, err := time.LoadLocation(tzid)
		if err != nil {
			return icsTime{}, fmt.Errorf("unknown TZID %q: %w", tzid, err)
		}
		t, err := time.ParseInLocation(icsDateTimeLayout, value, loc)
		if err != nil {
			return icsTime{}, err
		}
		return icsTime{t: t, layout: time.RFC3339}, nil
	}

	// floating time, no zone information
	t, err := time.Parse(icsDateTimeLayout, value)
	if err != nil {
		return icsTime{}, err
	}
	return icsTime{t: t, layout: isoDateTimeLayout}, nil
}

func isDateValue(value string, params map[string][]string) bool {
	if strings.EqualFold(firstParam(params, "VALUE"), "DATE") {
		return true
	}
	return !strings.Contains(value, "T")
}

func firstParam(params map[string][]string, name string) string {
	if params == nil {
		return ""
	}
	if vs, ok := params[name]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}
