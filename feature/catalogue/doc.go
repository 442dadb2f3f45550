// Package catalogue loads the managed config rule catalogue.
//
// The catalogue is a flat table, one rule per line with four comma separated
// fields in fixed order: name, source identifier, documentation link, service.
// There is no header row and no quoting, so a field containing a comma breaks
// its line; such lines (any line without exactly four fields) are skipped.
//
// # Sources
//
//   - FileSource: local CSV file (default, catalogue.path).
//   - StorageSource: CSV object in the S3/MinIO bucket (catalogue.object_name).
//   - DatabaseSource: the managed_config_rules table, filled by Importer.
//
// Missing files, objects or tables surface as *reconcile.SourceUnavailableError
// and abort the run; malformed lines never do.
//
// Check reports duplicated identifiers and incomplete entries of a loaded
// catalogue; only the first entry of a duplicated identifier is ever paired.
package catalogue
