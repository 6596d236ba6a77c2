package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"gradecompare/internal/config"
	apperrors "gradecompare/internal/errors"
	"gradecompare/internal/infrastructure"
	"gradecompare/pkg/contracts"
)

// app carries the state shared by every subcommand once the persistent
// pre-run has loaded configuration and telemetry.
type app struct {
	configFile string
	debug      bool

	cfg       *config.Config
	logger    *slog.Logger
	providers *infrastructure.OTelProviders
	metrics   *infrastructure.BusinessMetrics
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradecompare",
		Short: "Compare two gradebook snapshots",
		Long: `gradecompare compares two exports of the same course gradebook taken on
different dates. It computes every student's grade change, flags the most
improved students and the biggest drop, and writes a color coded xlsx report.`,
		Version:       contracts.GetFullVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a YAML config file (default gradecompare.yaml or configs/gradecompare.yaml)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}

	cmd.AddCommand(newCompareCommand(a))
	cmd.AddCommand(newInspectCommand(a))
	cmd.AddCommand(newListCommand(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return apperrors.NewConfigError("failed to load configuration", err)
	}
	if a.debug {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg

	logger, err := infrastructure.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return apperrors.NewConfigError("failed to initialize logger", err)
	}
	slog.SetDefault(logger)
	a.logger = logger

	providers, err := infrastructure.InitializeOTel(cfg.Telemetry, logger)
	if err != nil {
		return apperrors.NewConfigError("failed to initialize telemetry", err)
	}
	a.providers = providers

	metrics, err := infrastructure.CreateBusinessMetrics(providers.Meter)
	if err != nil {
		return apperrors.NewConfigError("failed to create metrics", err)
	}
	a.metrics = metrics

	logger.Debug("Configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("output_dir", cfg.Report.OutputDir),
		slog.String("trace_exporter", cfg.Telemetry.TraceExporter),
		slog.String("metric_exporter", cfg.Telemetry.MetricExporter))
	return nil
}

// teardown flushes telemetry and closes the log file.
func (a *app) teardown(ctx context.Context) error {
	var errs []error
	if a.providers != nil {
		if err := a.providers.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
		a.providers = nil
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// execute runs the command line and tears down telemetry whether or not
// the command succeeded.
func execute() error {
	a := &app{}
	err := newRootCommand(a).Execute()
	if terr := a.teardown(context.Background()); terr != nil && err == nil {
		err = terr
	}
	return err
}
