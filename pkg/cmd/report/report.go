package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/laplog/log"
	"github.com/mpapenbr/laplog/pkg/config"
	"github.com/mpapenbr/laplog/pkg/output"
	"github.com/mpapenbr/laplog/pkg/processing"
	"github.com/mpapenbr/laplog/pkg/sample"
)

var appConfig config.Config // holds processed config values

func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "prints the classification of the bundled session log",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := output.ParseFormat(appConfig.Output)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), cmd.OutOrStdout(), sample.Session())
		},
	}
	cmd.Flags().StringVarP(&appConfig.Output,
		"output",
		"o",
		string(output.FormatText),
		"output format (text, json, yaml)")
	cmd.Flags().BoolVar(&appConfig.CollectErrors,
		"collect-errors",
		false,
		"report all invalid lines instead of stopping at the first one")
	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() (*log.Logger, error) {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true))
	}
	if config.LogConfig != "" {
		cfg, err := log.LoadConfig(config.LogConfig)
		if err != nil {
			return nil, err
		}
		if logger, err = cfg.Apply(logger); err != nil {
			return nil, err
		}
	}
	return logger, nil
}

func runReport(ctx context.Context, w io.Writer, session string) error {
	logger, err := setupLogger()
	if err != nil {
		return err
	}
	log.ResetDefault(logger)
	//nolint:errcheck // nothing to do on sync errors
	defer logger.Sync()

	if config.EnableTelemetry {
		log.Info("Enabling telemetry")
		telemetry, err := config.SetupTelemetry(ctx, os.Stderr)
		if err != nil {
			log.Warn("Could not setup telemetry", log.ErrorField(err))
		} else {
			defer func() {
				if err := telemetry.Shutdown(context.Background()); err != nil {
					log.Warn("Could not shutdown telemetry", log.ErrorField(err))
				}
			}()
		}
	}

	format, err := output.ParseFormat(appConfig.Output)
	if err != nil {
		return err
	}
	ctx = log.AddToContext(ctx, logger)
	proc := processing.NewProcessor(
		processing.WithLogger(logger.Named("processing")),
		processing.WithCollectAll(appConfig.CollectErrors),
	)
	report, err := proc.Process(ctx, processing.SplitLines(session))
	if err != nil {
		return fmt.Errorf("cannot create report: %w", err)
	}
	log.GetFromContext(ctx).Named("report").Debug("report created",
		log.String("runId", report.RunID),
		log.Int("drivers", len(report.Standings)))
	return output.Write(w, format, report)
}
