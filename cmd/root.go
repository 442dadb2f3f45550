package cmd

import (
	"context"
	"fmt"
	"os"

	"ams-coverage/core/config"
	"ams-coverage/core/logger"
	"ams-coverage/feature/coverage"
	"ams-coverage/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare (root) command
	reportFormat  string
	reportOutput  string
	publishReport bool
)

// RootCmd compares a conformance pack against the managed catalogue.
var RootCmd = &cobra.Command{
	Use:   "ams-coverage <conformance-pack.yaml>",
	Short: "AMS Config Rules coverage report",
	Long: `Compares the AWS Config rules declared by a conformance pack with the
catalogue of AMS managed config rules and writes an HTML report.

The pack is either a local file or a name resolved against the configured
source base URL (the awslabs aws-config-rules repository by default).

Examples:
  # Compare a pack from the upstream repository
  ams-coverage Operational-Best-Practices-for-HIPAA-Security.yaml

  # Compare a local pack and write JSON
  ams-coverage ./packs/custom.yaml --format json --output coverage.json

  # Publish the report to the storage bucket
  ams-coverage Operational-Best-Practices-for-CIS.yaml --publish`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Usage()
			return fmt.Errorf("expected exactly one conformance pack, got %d arguments", len(args))
		}
		return nil
	},
	RunE:          runCompare,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().StringVar(&reportFormat, "format", "", "Report format (html, json); overrides REPORT_FORMAT")
	RootCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Report file path; overrides REPORT_PATH")
	RootCmd.Flags().BoolVar(&publishReport, "publish", false, "Upload the report to the storage bucket")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyReportFlags(cmd, cfg)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	framework, locator, pack, err := newFrameworkLoader(cfg, args[0], l)
	if err != nil {
		return err
	}

	deps, err := connectDependencies(cfg, cfg.Report.Publish, l)
	if err != nil {
		return err
	}

	source, err := newCatalogueSource(cfg, deps)
	if err != nil {
		return err
	}

	svc := coverage.NewService(framework, locator, source, l)

	l.Info("Starting comparison", zap.String("pack", pack), zap.String("source", locator.Locate(pack)))
	doc, result, err := svc.Report(ctx, pack, cfg.Report.Format)
	if err != nil {
		return err
	}

	if err := report.WriteFile(cfg.Report.Path, doc); err != nil {
		return err
	}

	l.Info("Report written",
		zap.String("path", cfg.Report.Path),
		zap.String("format", cfg.Report.Format),
		zap.Float64("coverage_percent", result.Summary.CoveragePercent),
	)

	if !cfg.Report.Publish {
		return nil
	}

	publisher := report.NewPublisher(deps.Storage, cfg.Storage.Bucket, cfg.Storage.Region)
	info, err := publisher.Publish(ctx, cfg.Report.ObjectName, doc, report.ContentType(cfg.Report.Format))
	if err != nil {
		return err
	}

	l.Info("Report published",
		zap.String("bucket", info.Bucket),
		zap.String("object", info.Key),
		zap.Int64("size", info.Size),
	)
	return nil
}

// applyReportFlags lets explicit flags win over the environment.
func applyReportFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Report.Format = reportFormat
	}
	if cmd.Flags().Changed("output") {
		cfg.Report.Path = reportOutput
	}
	if cmd.Flags().Changed("publish") {
		cfg.Report.Publish = publishReport
	}
}
