package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB holding derived, in-memory indexes over the content.
// Nothing in it outlives the process.
type DB struct {
	*sql.DB
}

// OpenMemory creates an in-memory SQLite database with the schema applied.
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Each connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    section_id TEXT NOT NULL,
    category_id TEXT NOT NULL,
    section_rank INTEGER NOT NULL,
    category_rank INTEGER NOT NULL,
    position INTEGER NOT NULL,
    text TEXT NOT NULL,
    normalized TEXT NOT NULL,
    source TEXT NOT NULL DEFAULT '',
    note TEXT NOT NULL DEFAULT '',
    repeat_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_items_order ON items(section_rank, category_rank, position);
CREATE INDEX IF NOT EXISTS idx_items_category ON items(section_id, category_id);
`
