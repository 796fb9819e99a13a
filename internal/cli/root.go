package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/klokku/caltally/internal/app"
	"github.com/klokku/caltally/internal/config"
	"github.com/klokku/caltally/pkg/stats"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "./config/caltally.yaml"

type reportFunc func(ctx context.Context, cfg config.Application, options stats.Options, out io.Writer) error

type listFunc func(ctx context.Context, cfg config.Application, out io.Writer) error

type flags struct {
	configPath string
	skip       string
	year       int
	month      int
	format     string
}

// Execute runs the root command with a context cancelled on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCommand(runReport, runListCalendars).ExecuteContext(ctx)
}

func newRootCommand(report reportFunc, list listFunc) *cobra.Command {
	f := &flags{}
	var options stats.Options

	rootCmd := &cobra.Command{
		Use:   "caltally",
		Short: "Sum up the time spent in calendar events",
		Long: `caltally reads the events of a calendar and prints the total time spent
per event name, per month and per day.

Events can be restricted to a single month with --year and --month, and
excluded by title prefix with --skip.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var year, month *int
			if cmd.Flags().Changed("year") {
				year = &f.year
			}
			if cmd.Flags().Changed("month") {
				month = &f.month
			}
			var err error
			options, err = stats.NewOptions(f.skip, year, month)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			return report(cmd.Context(), cfg, options, cmd.OutOrStdout())
		},
	}
	rootCmd.PersistentFlags().StringVar(&f.configPath, "config", defaultConfigPath, "config file")
	rootCmd.Flags().StringVar(&f.skip, "skip", "", "Comma-separated list of title prefixes to exclude")
	rootCmd.Flags().IntVar(&f.year, "year", 0, "Only count events starting in this year (requires --month)")
	rootCmd.Flags().IntVar(&f.month, "month", 0, "Only count events starting in this month, 1-12 (requires --year)")
	rootCmd.Flags().StringVar(&f.format, "format", "", "Report format: text or csv (default from config, text)")

	calendarsCmd := &cobra.Command{
		Use:   "calendars",
		Short: "List the calendars of the Google account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			return list(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(calendarsCmd)

	return rootCmd
}

func loadConfig(f *flags) (config.Application, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Application{}, err
	}
	if f.format != "" {
		cfg.Report.Format = f.format
	}
	return cfg, nil
}

func runReport(ctx context.Context, cfg config.Application, options stats.Options, out io.Writer) error {
	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	return application.Report(ctx, options, out)
}

func runListCalendars(ctx context.Context, cfg config.Application, out io.Writer) error {
	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	return application.ListCalendars(ctx, out)
}
