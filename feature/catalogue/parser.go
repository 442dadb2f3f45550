package catalogue

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ams-coverage/core/reconcile"
)

// fieldCount is the number of comma separated fields of a catalogue line:
// name, identifier, documentation link, service.
const fieldCount = 4

// Parse reads catalogue rules from a flat comma separated table.
// Lines are trimmed and split on every comma; there is no header, quoting or
// escaping. Lines that do not have exactly four fields are skipped and counted.
func Parse(r io.Reader) ([]reconcile.CatalogueRule, int, error) {
	var (
		rules   []reconcile.CatalogueRule
		skipped int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		parts := strings.Split(strings.TrimSpace(scanner.Text()), ",")
		if len(parts) != fieldCount {
			skipped++
			continue
		}
		rules = append(rules, reconcile.CatalogueRule{
			Name:             parts[0],
			SourceIdentifier: parts[1],
			DocLink:          parts[2],
			Service:          parts[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read catalogue: %w", err)
	}

	return rules, skipped, nil
}
