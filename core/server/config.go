package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// CacheTTLSeconds is how long fetched conformance packs are reused.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// ReportFormat is the default format served by the report endpoint.
	ReportFormat string `mapstructure:"report_format" default:"html"`
}

const (
	FormatHTML = "html"
	FormatJSON = "json"
)

// IsValidReportFormat checks if the configured report format is supported.
func (c Config) IsValidReportFormat() bool {
	switch c.ReportFormat {
	case FormatHTML, FormatJSON:
		return true
	default:
		return false
	}
}
