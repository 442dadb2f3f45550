package catalogue

import (
	"context"
	"fmt"
	"os"

	"ams-coverage/core/reconcile"
	"ams-coverage/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Source loads the managed rule catalogue.
type Source interface {
	Load(ctx context.Context) ([]reconcile.CatalogueRule, error)
	// Describe names the location for logs and reports.
	Describe() string
}

// Dependencies are the optional backends a source may need.
type Dependencies struct {
	Storage storage.Client
	Bucket  string
	DB      *gorm.DB
	Logger  *zap.Logger
}

// NewSource returns the source selected by cfg.Driver.
func NewSource(cfg Config, deps Dependencies) (Source, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Driver {
	case DriverFile, "":
		return &FileSource{Path: cfg.Path, logger: logger}, nil
	case DriverStorage:
		if deps.Storage == nil {
			return nil, fmt.Errorf("catalogue driver %q requires a storage client", cfg.Driver)
		}
		return &StorageSource{client: deps.Storage, bucket: deps.Bucket, objectName: cfg.ObjectName, logger: logger}, nil
	case DriverDatabase:
		if deps.DB == nil {
			return nil, fmt.Errorf("catalogue driver %q requires a database connection", cfg.Driver)
		}
		return NewDatabaseSource(deps.DB, logger), nil
	default:
		return nil, fmt.Errorf("unsupported catalogue driver %q", cfg.Driver)
	}
}

// FileSource reads the catalogue from a local CSV file.
type FileSource struct {
	Path   string
	logger *zap.Logger
}

// NewFileSource creates a file source for path.
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSource{Path: path, logger: logger}
}

func (s *FileSource) Describe() string {
	return s.Path
}

// Load parses the file. A missing or unreadable file is a SourceUnavailableError.
func (s *FileSource) Load(ctx context.Context) ([]reconcile.CatalogueRule, error) {
	s.logger.Info("Parsing managed config rules", zap.String("path", s.Path))

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: s.Path, Err: err}
	}
	defer f.Close()

	rules, skipped, err := Parse(f)
	if err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: s.Path, Err: err}
	}
	logSkipped(s.logger, s.Path, skipped)
	return rules, nil
}

// StorageSource reads the catalogue CSV from an object storage bucket.
type StorageSource struct {
	client     storage.Client
	bucket     string
	objectName string
	logger     *zap.Logger
}

func (s *StorageSource) Describe() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.objectName)
}

// Load downloads and parses the object.
func (s *StorageSource) Load(ctx context.Context) ([]reconcile.CatalogueRule, error) {
	location := s.Describe()
	s.logger.Info("Parsing managed config rules", zap.String("object", location))

	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: location, Err: err}
	}
	defer obj.Close()

	// minio reports missing objects on first read, so read errors are availability errors too
	rules, skipped, err := Parse(obj)
	if err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: location, Err: err}
	}
	logSkipped(s.logger, location, skipped)
	return rules, nil
}

func logSkipped(logger *zap.Logger, location string, skipped int) {
	if skipped == 0 {
		return
	}
	logger.Warn("Skipped malformed catalogue lines",
		zap.String("source", location),
		zap.Int("skipped", skipped),
	)
}
