// Package database handles database connections and schema inspection for the
// progress store.
//
// It wraps GORM to configure MySQL (production) or sqlite (local runs and
// tests) connections from the application's configuration.
//
// # Connect
//
// Connect opens the connection, tunes the pool for the driver and pings the
// server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the user-items feature verify that
// the table it serves from has the columns it writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "user_items", []string{"item_key"})
package database
