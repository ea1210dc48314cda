package sqlite

import (
	"github.com/mesh-intelligence/labdb/pkg/types"
)

// Query runs a read query with bound arguments and materializes the result.
// Column order follows the query; row order follows the engine. Failures
// are wrapped in *types.QueryError together with the offending SQL.
func (d *DB) Query(query string, args ...any) (*types.Result, error) {
	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, &types.QueryError{SQL: query, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &types.QueryError{SQL: query, Err: err}
	}

	result := &types.Result{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		targets := make([]any, len(cols))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, &types.QueryError{SQL: query, Err: err}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.QueryError{SQL: query, Err: err}
	}

	return result, nil
}

// Exec runs a DDL/DML statement for its side effects only.
func (d *DB) Exec(statement string, args ...any) error {
	db, err := d.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec(statement, args...); err != nil {
		return &types.QueryError{SQL: statement, Err: err}
	}
	return nil
}
