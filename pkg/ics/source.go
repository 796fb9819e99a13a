package ics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klokku/caltally/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// Source reads an iCalendar document from a local file or an http(s) URL.
type Source struct {
	location string
	client   *http.Client
}

func NewSource(location string) *Source {
	return &Source{
		location: location,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *Source) GetCalendar(ctx context.Context) (calendar.Calendar, error) {
	body, err := s.read(ctx)
	if err != nil {
		log.Error(err)
		return calendar.Calendar{}, err
	}
	cal, err := ParseCalendar(s.name(), body)
	if err != nil {
		return calendar.Calendar{}, err
	}
	log.Debugf("Parsed %d events from %s", len(cal.Events), redactURL(s.location))
	return cal, nil
}

func (s *Source) read(ctx context.Context) ([]byte, error) {
	if !isURL(s.location) {
		body, err := os.ReadFile(s.location)
		if err != nil {
			return nil, fmt.Errorf("unable to read calendar file: %w", err)
		}
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build calendar request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch calendar %s: %w", redactURL(s.location), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch calendar %s: unexpected status %s", redactURL(s.location), resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read calendar response: %w", err)
	}
	return body, nil
}

// name is the fallback calendar title when the document has no
// X-WR-CALNAME.
func (s *Source) name() string {
	if isURL(s.location) {
		if u, err := url.Parse(s.location); err == nil {
			return strings.TrimSuffix(filepath.Base(u.Path), filepath.Ext(u.Path))
		}
	}
	base := filepath.Base(s.location)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// redactURL drops the query string, which often carries a private token.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}
	u.RawQuery = ""
	return u.String() + "?…"
}
