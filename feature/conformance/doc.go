// Package conformance loads the config rules declared by an AWS Config
// conformance pack template.
//
// A pack is a CloudFormation-style YAML document whose top-level Resources
// mapping holds declarations. Only declarations typed AWS::Config::ConfigRule
// become framework rules; their ConfigRuleName and Source.Owner /
// Source.SourceIdentifier properties are read, in declaration order.
//
// # Components
//
//   - Fetcher: HTTPFetcher downloads packs relative to a base URL (the public
//     aws-config-rules repository by default); FileFetcher reads local files.
//   - Parse: turns template bytes into []reconcile.FrameworkRule.
//   - Loader: Fetch + Parse with logging.
//   - CachedLoader: TTL cache with singleflight, used by the HTTP server.
//
// Transport failures surface as *reconcile.SourceUnavailableError, content that
// is not a mapping with Resources as *reconcile.MalformedSourceError.
package conformance
