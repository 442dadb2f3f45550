package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"ams-coverage/core/config"
	"ams-coverage/core/database"
	"ams-coverage/core/logger"
	"ams-coverage/feature/catalogue"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for catalogue import command
	yesConfirm bool
	// Flags for catalogue check command
	checkJSON bool
)

// catalogueCmd is the parent command for catalogue maintenance.
var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "Manage the AMS managed config rule catalogue",
}

// catalogueImportCmd loads a catalogue CSV into the database.
var catalogueImportCmd = &cobra.Command{
	Use:   "import [catalogue.csv]",
	Short: "Replace the catalogue table with the rules of a CSV file",
	Long: `Parses a catalogue CSV (name,SourceIdentifier,doc link,service per line)
and replaces the content of the managed_config_rules table with it.

The CSV defaults to CATALOGUE_PATH. Malformed lines are skipped.

Examples:
  # Import with interactive confirmation
  ams-coverage catalogue import ams_config_rules/ams_config_rules.csv

  # Non-interactive
  ams-coverage catalogue import --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogueImport,
}

// catalogueCheckCmd inspects the configured catalogue.
var catalogueCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the configured catalogue for duplicates and incomplete entries",
	Long: `Loads the catalogue through the configured driver (file, storage or database)
and reports duplicated SourceIdentifiers and entries without doc link or service.
Outputs metrics by default or detailed JSON with --json flag.`,
	Args: cobra.NoArgs,
	RunE: runCatalogueCheck,
}

func init() {
	catalogueImportCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm replacing the table (non-interactive)")
	catalogueCheckCmd.Flags().BoolVar(&checkJSON, "json", false, "Save detailed results to a JSON file")

	catalogueCmd.AddCommand(catalogueImportCmd)
	catalogueCmd.AddCommand(catalogueCheckCmd)
	RootCmd.AddCommand(catalogueCmd)
}

func runCatalogueImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	path := cfg.Catalogue.Path
	if len(args) == 1 {
		path = args[0]
	}

	rules, err := catalogue.NewFileSource(path, l).Load(ctx)
	if err != nil {
		return err
	}
	l.Info("Parsed catalogue", zap.String("path", path), zap.Int("rules", len(rules)))

	if !confirmReplace(os.Stdin, len(rules)) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	importer := catalogue.NewImporter(db, l)
	if err := importer.Migrate(ctx); err != nil {
		return err
	}

	count, err := importer.Import(ctx, rules)
	if err != nil {
		return err
	}

	l.Info("Catalogue imported", zap.String("table", catalogue.TableName), zap.Int("count", count))
	return nil
}

// confirmReplace prompts the user for confirmation or uses --yes flag.
func confirmReplace(in io.Reader, count int) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  This replaces every row of %s with %d rules. Type 'yes' to confirm: ", catalogue.TableName, count)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}

func runCatalogueCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	startTime := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	deps, err := connectDependencies(cfg, false, l)
	if err != nil {
		return err
	}
	source, err := newCatalogueSource(cfg, deps)
	if err != nil {
		return err
	}

	rules, err := source.Load(ctx)
	if err != nil {
		return err
	}
	stats := catalogue.Check(rules)

	if checkJSON {
		filename := fmt.Sprintf("catalogue_check_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		l.Info("Detailed JSON report saved", zap.String("file", filename))
	}

	fmt.Println("\n=== Catalogue Metrics ===")
	fmt.Printf("Source: %s\n", source.Describe())
	fmt.Printf("Total Rules: %d\n", stats.Total)
	fmt.Printf("Distinct Identifiers: %d\n", stats.Identifiers)
	fmt.Printf("Duplicated Identifiers: %d\n", len(stats.Duplicates))
	fmt.Printf("Missing Doc Link: %d\n", len(stats.MissingDocLink))
	fmt.Printf("Missing Service: %d\n", len(stats.MissingService))
	for _, id := range stats.DuplicateIDs() {
		fmt.Printf("  %s declared %d times (first entry is used)\n", id, stats.Duplicates[id])
	}

	l.Info("Catalogue check completed",
		zap.Int("total", stats.Total),
		zap.Int("duplicates", len(stats.Duplicates)),
		zap.Int("missing_doc_link", len(stats.MissingDocLink)),
		zap.Int("missing_service", len(stats.MissingService)),
		zap.Duration("execution_time", time.Since(startTime)),
	)
	return nil
}
