// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports console output for
// interactive runs and JSON output for the long-running server.
//
// # Context Awareness
//
// When serving reports over HTTP, WithRayID extracts the RayID set by the rayid
// middleware from the Fiber context and attaches it to the log entry, so all
// logs of a single request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Comparison finished")
package logger
