package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the wishlist database and ensures its schema. The catalog
// itself never touches the database; the only durable state is the per-slot
// wishlist JSON.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- One wishlist slot per key (slot key = storage key + visitor session).
-- Concurrent writers resolve last-write-wins.
CREATE TABLE IF NOT EXISTS wishlist_slots(
  key        TEXT PRIMARY KEY,
  items_json TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}
