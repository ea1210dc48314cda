package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/labdb/pkg/types"
)

// ListTables returns every table name from the catalog, alphabetically.
// The engine's own bookkeeping tables (sqlite_*) are excluded.
func (d *DB) ListTables() ([]string, error) {
	return d.tableNames(
		`SELECT name FROM sqlite_master
		 WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		 ORDER BY name`)
}

// ListResultTables returns the table names following the results- naming
// convention, alphabetically.
func (d *DB) ListResultTables() ([]string, error) {
	return d.tableNames(
		`SELECT name FROM sqlite_master
		 WHERE type = 'table' AND name LIKE ? ORDER BY name`,
		types.ResultTablePrefix+"%")
}

func (d *DB) tableNames(query string, args ...any) ([]string, error) {
	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, &types.QueryError{SQL: query, Err: err}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &types.QueryError{SQL: query, Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.QueryError{SQL: query, Err: err}
	}
	return names, nil
}

// TableInfo returns column metadata for the named table: name, declared
// type, nullability, default value and primary-key position, as reported
// by the engine's table_info pragma. A valid name with no matching table
// yields an empty result, not an error.
func (d *DB) TableInfo(tableName string) (*types.Result, error) {
	name, err := ValidateIdentifier(tableName)
	if err != nil {
		return nil, err
	}
	return d.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, QuoteIdentifier(name)))
}
