// Tests for connection lifecycle: open, close, and the closed-handle guard.
package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/labdb/pkg/types"
)

// newTestDB opens a fresh store in a temp directory.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "experiments.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// newSeededDB opens a fresh store and loads the demo fixture.
func newSeededDB(t *testing.T) *DB {
	t.Helper()
	db := newTestDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return db
}

func TestOpen_CreatesEmptyStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "experiments.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}

	// A fresh store carries the fixed schema.
	tables, err := db.ListTables()
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	want := map[string]bool{
		"experiments": false, "runs": false, "layouts": false, "dependencies": false,
	}
	for _, name := range tables {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("fresh store missing table %s", name)
		}
	}
}

func TestOpen_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "experiments.db")

	_, err := Open(path)
	var connErr *types.ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected *ConnectionError, got %v", err)
	}
	if connErr.Path != path {
		t.Errorf("ConnectionError.Path = %q, want %q", connErr.Path, path)
	}
}

func TestOpen_ExistingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiments.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := db.Exec(`INSERT INTO experiments (name, run_counter) VALUES (?, ?)`, "kept", 0); err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	db.Close()

	// Re-opening must not re-apply the schema or lose data.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer db.Close()

	result, err := db.AllExperiments()
	if err != nil {
		t.Fatalf("AllExperiments failed: %v", err)
	}
	if result.Len() != 1 {
		t.Errorf("expected 1 experiment after reopen, got %d", result.Len())
	}
}

func TestClose_Idempotent(t *testing.T) {
	db := newTestDB(t)

	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close should not error, got %v", err)
	}
}

func TestClosedHandle_ReturnsErrNoConnection(t *testing.T) {
	db := newTestDB(t)
	db.Close()

	if err := db.Ping(); !errors.Is(err, types.ErrNoConnection) {
		t.Errorf("Ping after Close: expected ErrNoConnection, got %v", err)
	}
	if _, err := db.Query(`SELECT 1`); !errors.Is(err, types.ErrNoConnection) {
		t.Errorf("Query after Close: expected ErrNoConnection, got %v", err)
	}
	if err := db.Exec(`SELECT 1`); !errors.Is(err, types.ErrNoConnection) {
		t.Errorf("Exec after Close: expected ErrNoConnection, got %v", err)
	}
	if _, err := db.ListTables(); !errors.Is(err, types.ErrNoConnection) {
		t.Errorf("ListTables after Close: expected ErrNoConnection, got %v", err)
	}
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	if err := db.Ping(); err != nil {
		t.Errorf("Ping on open handle failed: %v", err)
	}
}

func TestPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiments.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}
}
