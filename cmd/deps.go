package cmd

import (
	"fmt"

	"ams-coverage/core/config"
	"ams-coverage/core/database"
	"ams-coverage/core/storage"
	"ams-coverage/feature/catalogue"
	"ams-coverage/feature/conformance"

	"go.uber.org/zap"
)

// newFrameworkLoader picks the fetcher for arg: an existing local file is read
// directly, anything else is a pack name resolved against the source base URL.
func newFrameworkLoader(cfg *config.Config, arg string, l *zap.Logger) (*conformance.Loader, conformance.Fetcher, string, error) {
	if conformance.IsLocalFile(arg) {
		fetcher := &conformance.FileFetcher{}
		return conformance.NewLoader(fetcher, l), fetcher, arg, nil
	}

	if err := conformance.ValidateName(arg); err != nil {
		return nil, nil, "", err
	}

	fetcher, err := conformance.NewFetcher(cfg.Source)
	if err != nil {
		return nil, nil, "", err
	}
	return conformance.NewLoader(fetcher, l), fetcher, arg, nil
}

// connectDependencies opens only the backends the configured catalogue driver
// (and publishing, when requested) needs.
func connectDependencies(cfg *config.Config, needStorage bool, l *zap.Logger) (catalogue.Dependencies, error) {
	deps := catalogue.Dependencies{Bucket: cfg.Storage.Bucket, Logger: l}

	if needStorage || cfg.Catalogue.Driver == catalogue.DriverStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return deps, fmt.Errorf("failed to connect to storage: %w", err)
		}
		deps.Storage = client
	}

	if cfg.Catalogue.Driver == catalogue.DriverDatabase {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return deps, fmt.Errorf("failed to connect to database: %w", err)
		}
		deps.DB = db
		l.Info("Connected to catalogue database", zap.String("driver", cfg.Database.Driver))
	}

	return deps, nil
}

func newCatalogueSource(cfg *config.Config, deps catalogue.Dependencies) (catalogue.Source, error) {
	source, err := catalogue.NewSource(cfg.Catalogue, deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalogue source: %w", err)
	}
	return source, nil
}
