package sqlite

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/labdb/pkg/types"
)

func TestQuery_MaterializesColumnsAndRows(t *testing.T) {
	db := newTestDB(t)
	if err := db.Exec(`INSERT INTO experiments (name, sample_name, run_counter) VALUES (?, ?, ?)`,
		"exp-a", "sample-a", 2); err != nil {
		t.Fatalf("Exec failed: %v", err)
	}

	result, err := db.Query(`SELECT name, sample_name, run_counter FROM experiments`)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	wantCols := []string{"name", "sample_name", "run_counter"}
	if len(result.Columns) != len(wantCols) {
		t.Fatalf("columns = %v, want %v", result.Columns, wantCols)
	}
	for i, c := range wantCols {
		if result.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, result.Columns[i], c)
		}
	}

	if result.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", result.Len())
	}
	if v, _ := result.Value(0, "name"); v != "exp-a" {
		t.Errorf("name = %v, want exp-a", v)
	}
	if v, _ := result.Value(0, "run_counter"); v != int64(2) {
		t.Errorf("run_counter = %v, want 2", v)
	}
}

func TestQuery_MalformedSQL(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Query(`SELEKT * FROM experiments`)
	var qErr *types.QueryError
	if !errors.As(err, &qErr) {
		t.Fatalf("expected *QueryError, got %v", err)
	}
	if qErr.SQL != `SELEKT * FROM experiments` {
		t.Errorf("QueryError.SQL = %q, want the offending SQL", qErr.SQL)
	}
	if qErr.Unwrap() == nil {
		t.Error("QueryError should wrap the engine error")
	}
}

func TestQuery_MissingTable(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Query(`SELECT * FROM nonexistent`)
	var qErr *types.QueryError
	if !errors.As(err, &qErr) {
		t.Fatalf("expected *QueryError, got %v", err)
	}
}

func TestExec_DDLAndDML(t *testing.T) {
	db := newTestDB(t)

	if err := db.Exec(`CREATE TABLE scratch (id INTEGER PRIMARY KEY, note TEXT)`); err != nil {
		t.Fatalf("DDL failed: %v", err)
	}
	if err := db.Exec(`INSERT INTO scratch (note) VALUES (?)`, "hello"); err != nil {
		t.Fatalf("DML failed: %v", err)
	}

	result, err := db.Query(`SELECT note FROM scratch`)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if result.Len() != 1 {
		t.Errorf("expected 1 row, got %d", result.Len())
	}
}

func TestExec_Malformed(t *testing.T) {
	db := newTestDB(t)

	err := db.Exec(`CREATE TABEL broken (id INTEGER)`)
	var qErr *types.QueryError
	if !errors.As(err, &qErr) {
		t.Fatalf("expected *QueryError, got %v", err)
	}
}
