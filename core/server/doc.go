// Package server holds the HTTP server configuration and constants.
//
// While the serve command handles the server startup, this package defines the
// configuration structures and valid values for server settings, such as the
// supported report formats.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, the conformance pack cache
// TTL and the default report format (html, json).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the coverage feature to validate requested formats.
package server
