package conformance

import (
	"context"
	"fmt"

	"ams-coverage/core/reconcile"

	"go.uber.org/zap"
)

// Loader fetches and parses conformance packs.
type Loader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// NewLoader creates a loader backed by fetcher.
func NewLoader(fetcher Fetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, logger: logger}
}

// Load returns the framework rules declared by the named pack.
func (l *Loader) Load(ctx context.Context, name string) ([]reconcile.FrameworkRule, error) {
	location := l.fetcher.Locate(name)
	l.logger.Info("Downloading and parsing conformance pack", zap.String("location", location))

	data, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conformance pack %s: %w", name, err)
	}

	rules, err := Parse(location, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse conformance pack %s: %w", name, err)
	}

	l.logger.Debug("Extracted framework rules",
		zap.String("pack", name),
		zap.Int("bytes", len(data)),
		zap.Int("rules", len(rules)),
	)
	return rules, nil
}
