// Package database handles database connections and schema inspection for the layout store.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local runs and tests) connections based on the application's configuration.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table so the layout store can verify,
// after auto-migration, that every column it reads and writes is present.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "page_template_layouts")
package database
