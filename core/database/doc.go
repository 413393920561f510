// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL, Postgres or SQLite connections from the
// application's configuration.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies pool settings and pings the
// server. SQLite connections are limited to one so that ":memory:" behaves as a single
// database, which is what the tests rely on.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table on any supported dialect, and
// ExpectedColumns lists what GORM expects from a model. The integrity feature
// compares the two.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "matches")
package database
