package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"ams-coverage/core/reconcile"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(t *testing.T) *reconcile.Result {
	t.Helper()
	result, err := reconcile.Reconcile(
		[]reconcile.FrameworkRule{
			{Name: "rule-a", Owner: "AWS", SourceIdentifier: "A"},
			{Name: "rule-b", Owner: "AWS", SourceIdentifier: "B"},
			{Name: "rule-<c>", Owner: "CUSTOM_LAMBDA", SourceIdentifier: "C"},
		},
		[]reconcile.CatalogueRule{
			{Name: "ams-b", SourceIdentifier: "B", DocLink: "https://docs/b", Service: "S3"},
			{Name: "ams-d", SourceIdentifier: "D", DocLink: "https://docs/d", Service: "EC2"},
		},
	)
	require.NoError(t, err)
	return result
}

func sampleMeta() Meta {
	return Meta{
		SourceName:  "Operational-Best-Practices-for-CIS.yaml",
		GeneratedAt: utc.Time{Time: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)},
		RunID:       "run-1",
	}
}

func TestRender_HTML(t *testing.T) {
	doc, err := Render(sampleResult(t), sampleMeta(), FormatHTML)
	require.NoError(t, err)
	html := string(doc)

	assert.Contains(t, html, "<title>AMS Config Rules Comparison</title>")
	assert.Contains(t, html, "<b>Operational-Best-Practices-for-CIS.yaml</b>")
	assert.Contains(t, html, "2026-10-18 09:30:00 UTC")
	assert.Contains(t, html, `<a href="https://docs/b">rule-b</a>`)
	assert.Contains(t, html, "Rules not matched with AMS Config Rules:")
	assert.Contains(t, html, "Additional AMS Config Rules:")
	assert.Contains(t, html, `<a href="https://docs/d">ams-d</a>`)
	assert.Contains(t, html, "rule-&lt;c&gt;", "values are escaped")
	assert.Contains(t, html, "Total Config Rules in your Compliance Framework: 3")
	assert.Contains(t, html, "Total Rules covered by AMS Config Rules: 1")
	assert.Contains(t, html, "Percentage covered by AMS Config Rules: 33.33%")
	assert.Contains(t, html, "Remaining Rules not in AMS Config Rules: 2")
	assert.Contains(t, html, "Additional AMS Rules: 1")
	assert.Contains(t, html, "Total AMS Config Rules: 2")

	// Sections appear in order: matched, framework-only, catalogue-only
	matched := strings.Index(html, `class="matched"`)
	frameworkOnly := strings.Index(html, `class="framework-only"`)
	catalogueOnly := strings.Index(html, `class="catalogue-only"`)
	assert.True(t, matched < frameworkOnly && frameworkOnly < catalogueOnly)
}

func TestRender_HTMLEmptyCatalogue(t *testing.T) {
	result, err := reconcile.Reconcile([]reconcile.FrameworkRule{{Name: "a", SourceIdentifier: "A"}}, nil)
	require.NoError(t, err)

	doc, err := Render(result, sampleMeta(), "")
	require.NoError(t, err)
	assert.Contains(t, string(doc), "Percentage covered by AMS Config Rules: 0.00%")
	assert.NotContains(t, string(doc), `class="matched"`)
}

func TestRender_JSON(t *testing.T) {
	doc, err := Render(sampleResult(t), sampleMeta(), FormatJSON)
	require.NoError(t, err)

	var decoded struct {
		Meta struct {
			SourceName string `json:"source_name"`
			RunID      string `json:"run_id"`
		} `json:"meta"`
		Summary       reconcile.Summary         `json:"summary"`
		Matched       []reconcile.MatchedRule   `json:"matched"`
		FrameworkOnly []reconcile.FrameworkRule `json:"framework_only"`
		CatalogueOnly []reconcile.CatalogueRule `json:"catalogue_only"`
	}
	require.NoError(t, json.Unmarshal(doc, &decoded))

	assert.Equal(t, "Operational-Best-Practices-for-CIS.yaml", decoded.Meta.SourceName)
	assert.Equal(t, "run-1", decoded.Meta.RunID)
	assert.Equal(t, 33.33, decoded.Summary.CoveragePercent)
	assert.Equal(t, 3, decoded.Summary.TotalFramework)
	require.Len(t, decoded.Matched, 1)
	assert.Equal(t, "S3", decoded.Matched[0].Catalogue.Service)
	assert.Len(t, decoded.FrameworkOnly, 2)
	assert.Len(t, decoded.CatalogueOnly, 1)
}

func TestRender_Errors(t *testing.T) {
	_, err := Render(nil, sampleMeta(), FormatHTML)
	assert.Error(t, err)

	_, err = Render(sampleResult(t), sampleMeta(), "pdf")
	assert.EqualError(t, err, `unsupported report format "pdf"`)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", ContentType(FormatJSON))
	assert.Equal(t, "text/html; charset=utf-8", ContentType(FormatHTML))
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 66.67, roundPercent(200.0/3))
	assert.Equal(t, 100.0, roundPercent(100))
	assert.Equal(t, "66.67", formatPercent(200.0/3))
}
