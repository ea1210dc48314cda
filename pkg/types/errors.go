package types

import (
	"errors"
	"fmt"
)

// Lifecycle and lookup errors.
var (
	ErrNoConnection  = errors.New("database is closed")
	ErrRunNotFound   = errors.New("run not found")
	ErrNoResultTable = errors.New("run has no result table")
)

// ConnectionError reports a failure to open or reach the database file.
// A missing file is not a ConnectionError (an empty store is created);
// a missing or unwritable parent directory is.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// QueryError reports an engine failure during query or statement
// execution. It carries the offending SQL text alongside the engine error.
type QueryError struct {
	SQL string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("executing %q: %v", e.SQL, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// InvalidIdentifierError reports a table or column name rejected by the
// identifier sanitizer. It carries the rejected value for diagnostics.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: only ASCII letters, digits, underscore and hyphen are allowed", e.Name)
}
