package db

import (
	"database/sql"

	"github.com/cockroachdb/errors"
)

const schemaSQL = `
-- Post-session star ratings
CREATE TABLE IF NOT EXISTS astro_ratings (
  guid TEXT PRIMARY KEY,               -- snowflake id
  session TEXT NOT NULL,               -- session title, e.g. "Astrologer Vikram"
  stars INTEGER NOT NULL CHECK (stars BETWEEN 1 AND 5),
  submitted_at INTEGER NOT NULL        -- unix millis
);

CREATE INDEX IF NOT EXISTS idx_astro_ratings_submitted ON astro_ratings(submitted_at);
`

// InitSchema creates the tables if they do not exist.
func InitSchema(conn *sql.DB) error {
	if _, err := conn.Exec(schemaSQL); err != nil {
		return errors.Wrap(err, "init schema")
	}
	return nil
}
