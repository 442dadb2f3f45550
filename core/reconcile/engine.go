package reconcile

// Reconcile partitions framework and catalogue rules by SourceIdentifier.
//
// Matched pairs each covered framework rule with the first catalogue entry
// carrying the same identifier. FrameworkOnly and CatalogueOnly are pure
// existence tests against the other side, so a catalogue entry that shares an
// identifier with any framework rule never appears in CatalogueOnly, even when
// an earlier duplicate was the one paired.
//
// Reconcile does no I/O and returns ErrEmptyInput when framework is empty.
func Reconcile(framework []FrameworkRule, catalogue []CatalogueRule) (*Result, error) {
	if len(framework) == 0 {
		return nil, ErrEmptyInput
	}

	firstByID := indexCatalogue(catalogue)
	frameworkIDs := indexFramework(framework)

	result := &Result{
		Matched:       []MatchedRule{},
		FrameworkOnly: []FrameworkRule{},
		CatalogueOnly: []CatalogueRule{},
	}

	for _, rule := range framework {
		if entry, ok := firstByID[rule.SourceIdentifier]; ok {
			result.Matched = append(result.Matched, MatchedRule{Framework: rule, Catalogue: entry})
		}
	}

	for _, rule := range framework {
		if _, ok := firstByID[rule.SourceIdentifier]; !ok {
			result.FrameworkOnly = append(result.FrameworkOnly, rule)
		}
	}

	for _, entry := range catalogue {
		if _, ok := frameworkIDs[entry.SourceIdentifier]; !ok {
			result.CatalogueOnly = append(result.CatalogueOnly, entry)
		}
	}

	result.Summary = buildSummary(result, len(framework), len(catalogue))
	return result, nil
}

// indexCatalogue keeps the first catalogue entry per identifier.
func indexCatalogue(catalogue []CatalogueRule) map[string]CatalogueRule {
	index := make(map[string]CatalogueRule, len(catalogue))
	for _, entry := range catalogue {
		if _, seen := index[entry.SourceIdentifier]; !seen {
			index[entry.SourceIdentifier] = entry
		}
	}
	return index
}

func indexFramework(framework []FrameworkRule) map[string]struct{} {
	set := make(map[string]struct{}, len(framework))
	for _, rule := range framework {
		set[rule.SourceIdentifier] = struct{}{}
	}
	return set
}

func buildSummary(result *Result, totalFramework, totalCatalogue int) Summary {
	matched := len(result.Matched)
	return Summary{
		TotalFramework:     totalFramework,
		TotalCatalogue:     totalCatalogue,
		MatchedCount:       matched,
		FrameworkOnlyCount: len(result.FrameworkOnly),
		CatalogueOnlyCount: len(result.CatalogueOnly),
		CoveragePercent:    float64(matched) / float64(totalFramework) * 100,
	}
}
