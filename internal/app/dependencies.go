package app

import (
	"fmt"

	"github.com/klokku/caltally/internal/config"
	"github.com/klokku/caltally/pkg/calendar"
	"github.com/klokku/caltally/pkg/google"
	"github.com/klokku/caltally/pkg/ics"
	"github.com/klokku/caltally/pkg/stats"
)

// Dependencies holds all services and renderers for the application.
type Dependencies struct {
	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service

	CalendarSource calendar.Source

	StatsService      stats.StatsService
	TextStatsRenderer *stats.TextStatsRendererImpl
	CsvStatsRenderer  *stats.CsvStatsRendererImpl
}

// BuildDependencies initializes and wires the calendar source selected in
// the configuration with the stats service and renderers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	switch cfg.Source {
	case config.SourceGoogle:
		auth, err := google.NewGoogleAuth(cfg)
		if err != nil {
			return nil, err
		}
		deps.GoogleAuth = auth
		deps.GoogleService = google.NewService(deps.GoogleAuth)
		deps.CalendarSource = google.NewSource(deps.GoogleService, cfg.CalendarId)
	case config.SourceIcs:
		deps.CalendarSource = ics.NewSource(cfg.Ics.Location)
	default:
		return nil, fmt.Errorf("unsupported calendar source: %s", cfg.Source)
	}

	deps.StatsService = stats.NewStatsServiceImpl(deps.CalendarSource)
	deps.TextStatsRenderer = stats.NewTextStatsRenderer()
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()

	return deps, nil
}

func (d *Dependencies) renderer(format string) (stats.StatsRenderer, error) {
	switch format {
	case config.FormatText:
		return d.TextStatsRenderer, nil
	case config.FormatCsv:
		return d.CsvStatsRenderer, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
