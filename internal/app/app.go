package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/klokku/caltally/internal/config"
	"github.com/klokku/caltally/pkg/stats"
	log "github.com/sirupsen/logrus"
)

var ErrListingUnsupported = errors.New("listing calendars is only supported for the google source")

// Application wires configuration and dependencies for a single run.
type Application struct {
	cfg  config.Application
	deps *Dependencies
}

// NewApplication validates the configuration and builds the dependencies.
func NewApplication(cfg config.Application) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	deps, err := BuildDependencies(cfg)
	if err != nil {
		return nil, err
	}
	return &Application{cfg: cfg, deps: deps}, nil
}

// Report fetches the calendar, aggregates it and writes the rendered report.
func (a *Application) Report(ctx context.Context, options stats.Options, out io.Writer) error {
	renderer, err := a.deps.renderer(a.cfg.Report.Format)
	if err != nil {
		return err
	}

	summary, err := a.deps.StatsService.GetStats(ctx, options)
	if err != nil {
		return err
	}
	log.Infof("Aggregated %d events (%.2f hours) from calendar %q", summary.EventCount, summary.TotalHours, summary.CalendarTitle)

	report, err := renderer.RenderStats(summary)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, report)
	return err
}

// ListCalendars writes the id and summary of every calendar of the Google
// account.
func (a *Application) ListCalendars(ctx context.Context, out io.Writer) error {
	if a.deps.GoogleService == nil {
		return ErrListingUnsupported
	}
	calendars, err := a.deps.GoogleService.ListCalendars(ctx)
	if err != nil {
		return err
	}
	for _, cal := range calendars {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", cal.ID, cal.Summary); err != nil {
			return err
		}
	}
	return nil
}
