package coverage

import (
	"context"
	"fmt"

	"ams-coverage/core/reconcile"
	"ams-coverage/feature/catalogue"
	"ams-coverage/feature/report"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FrameworkLoader loads the framework rules of a named conformance pack.
type FrameworkLoader interface {
	Load(ctx context.Context, name string) ([]reconcile.FrameworkRule, error)
}

// Locator resolves a pack name to the URL or path it is read from.
type Locator interface {
	Locate(name string) string
}

// Service runs comparisons between conformance packs and the managed catalogue.
type Service struct {
	framework FrameworkLoader
	locator   Locator
	catalogue catalogue.Source
	logger    *zap.Logger
	now       func() utc.Time
}

// NewService creates a coverage service. locator may be nil.
func NewService(framework FrameworkLoader, locator Locator, source catalogue.Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		framework: framework,
		locator:   locator,
		catalogue: source,
		logger:    logger,
		now:       utc.Now,
	}
}

// Compare loads both rule sets and reconciles them.
// Loader errors abort the comparison; nothing partial is returned.
func (s *Service) Compare(ctx context.Context, pack string) (*reconcile.Result, error) {
	frameworkRules, err := s.framework.Load(ctx, pack)
	if err != nil {
		return nil, err
	}

	catalogueRules, err := s.catalogue.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue from %s: %w", s.catalogue.Describe(), err)
	}

	s.logger.Info("Comparing rules",
		zap.String("pack", pack),
		zap.Int("framework_rules", len(frameworkRules)),
		zap.Int("catalogue_rules", len(catalogueRules)),
	)

	result, err := reconcile.Reconcile(frameworkRules, catalogueRules)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile %s: %w", pack, err)
	}

	s.logger.Info("Comparison finished",
		zap.String("pack", pack),
		zap.Int("matched", result.Summary.MatchedCount),
		zap.Int("framework_only", result.Summary.FrameworkOnlyCount),
		zap.Int("catalogue_only", result.Summary.CatalogueOnlyCount),
		zap.Float64("coverage_percent", result.Summary.CoveragePercent),
	)
	return result, nil
}

// Report runs a comparison and renders it in format.
func (s *Service) Report(ctx context.Context, pack, format string) ([]byte, *reconcile.Result, error) {
	result, err := s.Compare(ctx, pack)
	if err != nil {
		return nil, nil, err
	}

	doc, err := report.Render(result, s.Meta(pack), format)
	if err != nil {
		return nil, nil, err
	}
	return doc, result, nil
}

// Meta builds the report metadata for a run on pack.
func (s *Service) Meta(pack string) report.Meta {
	meta := report.Meta{
		SourceName:        pack,
		CatalogueLocation: s.catalogue.Describe(),
		GeneratedAt:       s.now(),
		RunID:             uuid.NewString(),
	}
	if s.locator != nil {
		meta.SourceLocation = s.locator.Locate(pack)
	}
	return meta
}
