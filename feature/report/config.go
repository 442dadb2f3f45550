package report

const (
	FormatHTML = "html"
	FormatJSON = "json"
)

// Config holds configuration for rendering and writing the report.
type Config struct {
	// Path is the fixed location the report is written to, overwritten on each run.
	Path string `mapstructure:"path" default:"ams_config_rules_comparison.html"`
	// Format is the report format (html, json).
	Format string `mapstructure:"format" default:"html"`
	// Publish uploads the report to the storage bucket after writing it.
	Publish bool `mapstructure:"publish" default:"false"`
	// ObjectName is the object key used when publishing.
	ObjectName string `mapstructure:"object_name" default:"reports/ams_config_rules_comparison.html"`
}
