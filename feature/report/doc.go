// Package report renders reconciliation results as static documents.
//
// Two formats are supported:
//
//   - html: a single table with the matched rules (linked to the catalogue
//     documentation), a "Rules not matched with AMS Config Rules" section and an
//     "Additional AMS Config Rules" section, followed by the summary statistics.
//   - json: the same data as a machine readable document.
//
// The coverage percentage is always shown with two decimals.
//
// WriteFile replaces the report at its fixed path; Publisher optionally uploads
// the same bytes to the S3/MinIO bucket.
package report
