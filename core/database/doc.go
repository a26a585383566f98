// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. The initial ping is retried with exponential backoff so the
// seeder can start alongside a database that is still booting.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table. The seed feature uses it to
// check that imported record keys map onto real columns before inserting.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	columns, err := database.GetTableColumns(db, "people")
package database
