package conformance

// DefaultBaseURL is the published location of the AWS conformance pack templates.
const DefaultBaseURL = "https://raw.githubusercontent.com/awslabs/aws-config-rules/master/aws-config-conformance-packs/"

// Config holds configuration for fetching conformance packs.
type Config struct {
	// BaseURL is joined with the pack name to build the download URL.
	// A file:// URL reads packs from a local directory instead.
	BaseURL string `mapstructure:"base_url" default:"https://raw.githubusercontent.com/awslabs/aws-config-rules/master/aws-config-conformance-packs/"`
	// TimeoutSeconds bounds a single download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
