// Package config provides configuration management for ams-coverage.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Source: conformance pack base URL and fetch timeout
//   - Catalogue: managed rule catalogue driver (file, storage, database) and location
//   - Report: output path, format and optional publishing
//   - Server: HTTP server settings (port, API key, cache TTL)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: MySQL/SQLite connection details
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Report.Path)
package config
