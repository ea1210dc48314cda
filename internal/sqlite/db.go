// Package sqlite implements the labdb convenience layer over a single
// SQLite experiment-database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/labdb/pkg/types"
)

// DB is a handle on one experiment-database file. Each handle owns exactly
// one connection; there is no process-wide singleton. DB is meant for a
// single logical caller at a time and adds no locking of its own.
type DB struct {
	path   string
	db     *sql.DB
	closed bool
}

var _ types.Database = (*DB)(nil)

// Open opens the experiment database at path, creating an empty store with
// the fixed schema if the file does not yet exist. A missing or unreachable
// parent directory fails with *types.ConnectionError.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &types.ConnectionError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &types.ConnectionError{Path: path, Err: fmt.Errorf("%s is not a directory", dir)}
	}

	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &types.ConnectionError{Path: path, Err: err}
	}
	// The embedded engine allows one writer; a second pooled connection
	// only buys "database is locked" errors.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &types.ConnectionError{Path: path, Err: err}
	}

	d := &DB{path: path, db: db}

	if fresh {
		if err := d.applySchema(); err != nil {
			db.Close()
			return nil, err
		}
	}

	return d, nil
}

// Close releases the underlying connection. Close is idempotent.
func (d *DB) Close() error {
	if d.closed || d.db == nil {
		return nil
	}
	if err := d.db.Close(); err != nil {
		return err
	}
	d.db = nil
	d.closed = true
	return nil
}

// Ping verifies the connection is alive.
func (d *DB) Ping() error {
	if d.closed || d.db == nil {
		return types.ErrNoConnection
	}
	return d.db.Ping()
}

// Path returns the database file path this handle was opened with.
func (d *DB) Path() string {
	return d.path
}

// conn returns the live connection, or ErrNoConnection after Close.
func (d *DB) conn() (*sql.DB, error) {
	if d.closed || d.db == nil {
		return nil, types.ErrNoConnection
	}
	return d.db, nil
}

// applySchema creates the fixed schema tables and indexes on a fresh store.
func (d *DB) applySchema() error {
	for _, ddl := range schemaDDL {
		if err := d.Exec(ddl); err != nil {
			return err
		}
	}
	for _, ddl := range indexDDL {
		if err := d.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
