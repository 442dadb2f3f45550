// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (default) or SQLite
// connections for the managed rule catalogue table.
//
// # Connect
//
// Connect builds the driver-specific DSN, applies pool settings and pings the
// server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the catalogue feature verify that a
// table holds the expected columns before reading rules from it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	missing, err := database.MissingColumns(db, "managed_config_rules", []string{"source_identifier"})
package database
