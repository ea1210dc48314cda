package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/labdb/pkg/types"
)

// ResultData returns up to limit rows from the named result table, ordered
// by its id column. The table name is the one value that cannot be bound
// as a parameter, so it passes the sanitizer and is quoted before
// interpolation. A name that validates but matches no table fails with
// *types.QueryError from the engine.
func (d *DB) ResultData(tableName string, limit int64) (*types.Result, error) {
	name, err := ValidateIdentifier(tableName)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY id LIMIT ?`, QuoteIdentifier(name))
	return d.Query(query, limit)
}

// ResultDataByRunID resolves the run's result table and delegates to
// ResultData. Unlike the direct by-ID lookups this path fails hard:
// ErrRunNotFound when the run does not exist, ErrNoResultTable when the
// run has no result table yet.
func (d *DB) ResultDataByRunID(runID int64, limit int64) (*types.Result, error) {
	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	var tableName sql.NullString
	row := db.QueryRow(`SELECT result_table_name FROM runs WHERE run_id = ?`, runID)
	if err := row.Scan(&tableName); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run %d: %w", runID, types.ErrRunNotFound)
		}
		return nil, &types.QueryError{SQL: "SELECT result_table_name FROM runs WHERE run_id = ?", Err: err}
	}
	if !tableName.Valid || tableName.String == "" {
		return nil, fmt.Errorf("run %d: %w", runID, types.ErrNoResultTable)
	}

	return d.ResultData(tableName.String, limit)
}

// CountResultRows returns the row count of the named result table.
func (d *DB) CountResultRows(tableName string) (int64, error) {
	name, err := ValidateIdentifier(tableName)
	if err != nil {
		return 0, err
	}
	db, err := d.conn()
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, QuoteIdentifier(name))
	var count int64
	if err := db.QueryRow(query).Scan(&count); err != nil {
		return 0, &types.QueryError{SQL: query, Err: err}
	}
	return count, nil
}

// ResultTableName composes the conventional name for a result table.
func ResultTableName(expID, counter int64) string {
	return fmt.Sprintf("%s%d-%d", types.ResultTablePrefix, expID, counter)
}

// CreateResultTable creates a result table for the given experiment and
// counter with an id primary key plus the given measurement columns, and
// returns the table name. Every column name passes the sanitizer; column
// types are always REAL because result tables hold measurements.
func (d *DB) CreateResultTable(expID int64, counter int64, columns []string) (string, error) {
	tableName := ResultTableName(expID, counter)

	defs := make([]string, 0, len(columns)+1)
	defs = append(defs, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	for _, col := range columns {
		name, err := ValidateIdentifier(col)
		if err != nil {
			return "", err
		}
		defs = append(defs, QuoteIdentifier(name)+" REAL")
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", QuoteIdentifier(tableName), strings.Join(defs, ", "))
	if err := d.Exec(ddl); err != nil {
		return "", err
	}
	return tableName, nil
}

// AppendResultRow inserts one measurement row. values bind positionally to
// columns; both table and column names pass the sanitizer.
func (d *DB) AppendResultRow(tableName string, columns []string, values []any) error {
	name, err := ValidateIdentifier(tableName)
	if err != nil {
		return err
	}
	if len(columns) != len(values) {
		return fmt.Errorf("append to %s: %d columns but %d values", tableName, len(columns), len(values))
	}

	quoted := make([]string, 0, len(columns))
	placeholders := make([]string, 0, len(columns))
	for _, col := range columns {
		c, err := ValidateIdentifier(col)
		if err != nil {
			return err
		}
		quoted = append(quoted, QuoteIdentifier(c))
		placeholders = append(placeholders, "?")
	}

	statement := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		QuoteIdentifier(name), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
	return d.Exec(statement, values...)
}
