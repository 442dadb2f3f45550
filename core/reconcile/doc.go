// Package reconcile compares the config rules declared by a compliance framework
// with the catalogue of managed config rules.
//
// Both collections are matched on SourceIdentifier using exact string equality.
// The result is a three-way partition plus aggregate counts:
//
//   - Matched: framework rules covered by the catalogue, each paired with the
//     first catalogue entry (in catalogue order) sharing its identifier.
//   - FrameworkOnly: framework rules whose identifier is absent from the catalogue.
//   - CatalogueOnly: catalogue entries whose identifier is absent from the framework.
//
// Duplicate identifiers are preserved on both sides. Every framework rule lands in
// exactly one of Matched or FrameworkOnly, and CoveragePercent is
// MatchedCount / TotalFramework * 100.
//
// # Errors
//
// Reconcile itself only fails with ErrEmptyInput. The loaders feeding it report
// SourceUnavailableError and MalformedSourceError, defined here so callers can
// classify failures with errors.As regardless of which loader produced them.
//
// # Usage Example
//
//	result, err := reconcile.Reconcile(frameworkRules, catalogueRules)
//	if errors.Is(err, reconcile.ErrEmptyInput) {
//	    // nothing to compare
//	}
//	fmt.Printf("%.2f%%\n", result.Summary.CoveragePercent)
package reconcile
