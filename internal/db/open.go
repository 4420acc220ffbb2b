package db

import (
	"database/sql"
	"path/filepath"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

// OpenDatabase opens (creating if needed) the SQLite database at path and
// ensures the schema.
func OpenDatabase(path string) (*sql.DB, error) {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "set busy timeout")
	}
	if err := InitSchema(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
