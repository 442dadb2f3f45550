package reconcile

// FrameworkRule is a config rule declared by a compliance framework (conformance pack).
type FrameworkRule struct {
	// Name is the ConfigRuleName of the declaration.
	Name string `json:"name"`

	// Owner is the rule source owner (e.g. "AWS", "CUSTOM_LAMBDA").
	Owner string `json:"owner"`

	// SourceIdentifier is the managed rule identifier used as the match key.
	SourceIdentifier string `json:"source_identifier"`
}

// CatalogueRule is an entry of the managed config rule catalogue.
type CatalogueRule struct {
	// Name is the catalogue display name of the rule.
	Name string `json:"name"`

	// SourceIdentifier is the managed rule identifier used as the match key.
	SourceIdentifier string `json:"source_identifier"`

	// DocLink points to the documentation of the managed rule.
	DocLink string `json:"doc_link"`

	// Service is the AWS service the rule applies to.
	Service string `json:"service"`
}

// MatchedRule pairs a framework rule with the catalogue entry shown next to it.
type MatchedRule struct {
	Framework FrameworkRule `json:"framework"`
	Catalogue CatalogueRule `json:"catalogue"`
}

// Result is the output of a reconciliation run.
// Every slice keeps the order of the input it was drawn from.
type Result struct {
	// Matched contains framework rules with at least one catalogue entry,
	// paired with the first such entry in catalogue order.
	Matched []MatchedRule `json:"matched"`

	// FrameworkOnly contains framework rules no catalogue entry covers.
	FrameworkOnly []FrameworkRule `json:"framework_only"`

	// CatalogueOnly contains catalogue entries no framework rule references.
	CatalogueOnly []CatalogueRule `json:"catalogue_only"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a reconciliation result.
type Summary struct {
	// TotalFramework is the number of framework rules, duplicates included.
	TotalFramework int `json:"total_framework"`

	// TotalCatalogue is the number of catalogue rules, duplicates included.
	TotalCatalogue int `json:"total_catalogue"`

	// MatchedCount counts framework rules covered by the catalogue.
	MatchedCount int `json:"matched"`

	// FrameworkOnlyCount counts framework rules not covered by the catalogue.
	FrameworkOnlyCount int `json:"framework_only"`

	// CatalogueOnlyCount counts catalogue rules not referenced by the framework.
	CatalogueOnlyCount int `json:"catalogue_only"`

	// CoveragePercent is MatchedCount / TotalFramework * 100.
	CoveragePercent float64 `json:"coverage_percent"`
}
