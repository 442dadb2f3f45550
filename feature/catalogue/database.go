package catalogue

import (
	"context"
	"fmt"
	"strings"

	"ams-coverage/core/database"
	"ams-coverage/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// importBatchSize bounds the rows inserted per statement.
const importBatchSize = 500

// DatabaseSource reads the catalogue from the managed_config_rules table.
type DatabaseSource struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDatabaseSource creates a database-backed source.
func NewDatabaseSource(db *gorm.DB, logger *zap.Logger) *DatabaseSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatabaseSource{db: db, logger: logger}
}

func (s *DatabaseSource) Describe() string {
	return "table " + TableName
}

// Load returns the rows in insertion (primary key) order.
// Query failures are SourceUnavailableError; a table lacking the expected
// columns is a MalformedSourceError.
func (s *DatabaseSource) Load(ctx context.Context) ([]reconcile.CatalogueRule, error) {
	s.logger.Info("Loading managed config rules", zap.String("table", TableName))

	missing, err := database.MissingColumns(s.db.WithContext(ctx), TableName, requiredColumns)
	if err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: s.Describe(), Err: err}
	}
	if len(missing) > 0 {
		return nil, &reconcile.MalformedSourceError{
			Source: s.Describe(),
			Reason: "missing columns " + strings.Join(missing, ", "),
		}
	}

	var records []RuleRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: s.Describe(), Err: err}
	}

	rules := make([]reconcile.CatalogueRule, 0, len(records))
	for _, record := range records {
		rules = append(rules, record.ToRule())
	}
	return rules, nil
}

// Importer replaces the catalogue table content.
type Importer struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewImporter creates an importer writing to db.
func NewImporter(db *gorm.DB, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{db: db, logger: logger}
}

// Migrate creates or updates the catalogue table.
func (i *Importer) Migrate(ctx context.Context) error {
	if err := i.db.WithContext(ctx).AutoMigrate(&RuleRecord{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// Import deletes every existing row and inserts rules in order, in one transaction.
// It returns the number of rows written.
func (i *Importer) Import(ctx context.Context, rules []reconcile.CatalogueRule) (int, error) {
	records := make([]RuleRecord, 0, len(rules))
	for _, rule := range rules {
		records = append(records, FromRule(rule))
	}

	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RuleRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", TableName, err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, importBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert catalogue rules: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	i.logger.Info("Imported managed config rules", zap.Int("rules", len(records)))
	return len(records), nil
}
