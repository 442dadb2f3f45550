// Package coverage orchestrates a comparison run: load the conformance pack,
// load the managed catalogue, reconcile, and render.
//
// The Service is shared by the command line (one run, report written to disk)
// and the HTTP server.
//
// # HTTP Endpoints
//
//   - GET /coverage/:pack : comparison as JSON.
//   - GET /coverage/:pack/report : rendered report (supports ?format=html|json).
//
// Unreachable inputs answer 502, malformed inputs or packs without config rules 422.
package coverage
