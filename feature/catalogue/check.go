package catalogue

import (
	"sort"
	"strings"

	"ams-coverage/core/reconcile"
)

// Stats summarises the health of a loaded catalogue.
type Stats struct {
	Total       int `json:"total"`
	Identifiers int `json:"identifiers"`
	// Duplicates maps identifiers declared more than once to their count.
	// Only the first entry of each is paired with framework rules.
	Duplicates map[string]int `json:"duplicates"`
	// MissingDocLink lists identifiers whose entry has no documentation link.
	MissingDocLink []string `json:"missing_doc_link"`
	// MissingService lists identifiers whose entry has no service.
	MissingService []string `json:"missing_service"`
}

// HasIssues reports whether any check found something.
func (s Stats) HasIssues() bool {
	return len(s.Duplicates) > 0 || len(s.MissingDocLink) > 0 || len(s.MissingService) > 0
}

// DuplicateIDs returns the duplicated identifiers sorted.
func (s Stats) DuplicateIDs() []string {
	ids := make([]string, 0, len(s.Duplicates))
	for id := range s.Duplicates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Check inspects rules for duplicates and incomplete entries.
func Check(rules []reconcile.CatalogueRule) Stats {
	stats := Stats{
		Total:          len(rules),
		Duplicates:     map[string]int{},
		MissingDocLink: []string{},
		MissingService: []string{},
	}

	counts := make(map[string]int, len(rules))
	for _, r := range rules {
		counts[r.SourceIdentifier]++
		if strings.TrimSpace(r.DocLink) == "" {
			stats.MissingDocLink = append(stats.MissingDocLink, r.SourceIdentifier)
		}
		if strings.TrimSpace(r.Service) == "" {
			stats.MissingService = append(stats.MissingService, r.SourceIdentifier)
		}
	}

	stats.Identifiers = len(counts)
	for id, n := range counts {
		if n > 1 {
			stats.Duplicates[id] = n
		}
	}
	return stats
}
