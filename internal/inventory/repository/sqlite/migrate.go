package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	quantity    INTEGER NOT NULL,
	price       REAL NOT NULL,
	description TEXT
);
CREATE INDEX IF NOT EXISTS idx_items_name ON items(name);
`

// Migrate creates the items table if it does not exist yet. The schema is
// additive only; there is no versioning.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply items schema: %w", err)
	}
	return nil
}
