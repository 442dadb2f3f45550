package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"math"

	"ams-coverage/core/reconcile"

	"github.com/agentstation/utc"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var htmlTemplate = template.Must(template.New("report.html.tmpl").
	Funcs(template.FuncMap{"percent": formatPercent}).
	ParseFS(templateFS, "templates/report.html.tmpl"))

// Meta describes the run a report belongs to.
type Meta struct {
	// SourceName is the conformance pack the framework rules came from.
	SourceName string `json:"source_name"`
	// SourceLocation is the URL or path the pack was read from.
	SourceLocation string `json:"source_location,omitempty"`
	// CatalogueLocation describes where the catalogue was loaded from.
	CatalogueLocation string `json:"catalogue_location,omitempty"`
	// GeneratedAt is when the comparison ran.
	GeneratedAt utc.Time `json:"generated_at"`
	// RunID identifies the run in logs and published reports.
	RunID string `json:"run_id,omitempty"`
}

// ContentType returns the MIME type of a report format.
func ContentType(format string) string {
	if format == FormatJSON {
		return "application/json"
	}
	return "text/html; charset=utf-8"
}

// Render formats result as a report document.
func Render(result *reconcile.Result, meta Meta, format string) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("cannot render a nil result")
	}

	switch format {
	case FormatHTML, "":
		return renderHTML(result, meta)
	case FormatJSON:
		return renderJSON(result, meta)
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

type htmlView struct {
	Meta        Meta
	GeneratedAt string
	Result      *reconcile.Result
}

func renderHTML(result *reconcile.Result, meta Meta) ([]byte, error) {
	view := htmlView{
		Meta:        meta,
		GeneratedAt: meta.GeneratedAt.Format("2006-01-02 15:04:05 UTC"),
		Result:      result,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render html report: %w", err)
	}
	return buf.Bytes(), nil
}

type jsonDocument struct {
	Meta          Meta                      `json:"meta"`
	Summary       reconcile.Summary         `json:"summary"`
	Matched       []reconcile.MatchedRule   `json:"matched"`
	FrameworkOnly []reconcile.FrameworkRule `json:"framework_only"`
	CatalogueOnly []reconcile.CatalogueRule `json:"catalogue_only"`
}

func renderJSON(result *reconcile.Result, meta Meta) ([]byte, error) {
	summary := result.Summary
	summary.CoveragePercent = roundPercent(summary.CoveragePercent)

	doc := jsonDocument{
		Meta:          meta,
		Summary:       summary,
		Matched:       result.Matched,
		FrameworkOnly: result.FrameworkOnly,
		CatalogueOnly: result.CatalogueOnly,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render json report: %w", err)
	}
	return append(data, '\n'), nil
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
