package repositories

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the conversion history table if it does not exist.
// The DDL is deliberately portable: the same statement runs on the sqlite
// driver (server) and on postgres (dbtool).
func InitSchema(db *sql.DB) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS conversion_history (
		id         TEXT PRIMARY KEY,
		operation  TEXT NOT NULL,
		input      TEXT NOT NULL,
		output     TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("init schema: create conversion_history table: %w", err)
	}

	return nil
}
