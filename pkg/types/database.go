package types

// Database is the convenience layer over a single experiment-database file.
// A Database is obtained from sqlite.Open, used by one logical caller at a
// time, and released with Close. All query methods return materialized
// tabular Results; rows are never mapped onto entity structs because the
// per-run result tables have experiment-specific schemas.
//
// Not-found semantics are deliberately asymmetric: direct by-ID lookups
// (ExperimentByID, RunByID) return an empty Result, while the run to
// result-table indirection (ResultDataByRunID) fails with ErrRunNotFound.
type Database interface {
	// Close releases the underlying connection. Close is idempotent;
	// closing an already-closed Database is not an error. After Close,
	// all other methods return ErrNoConnection.
	Close() error

	// Ping verifies the underlying connection is alive.
	Ping() error

	// Path returns the database file path this Database was opened with.
	Path() string

	// Query runs an arbitrary read query with bound arguments and
	// materializes the result. Failures are reported as *QueryError.
	Query(query string, args ...any) (*Result, error)

	// Exec runs a DDL/DML statement for its side effects only.
	// Failures are reported as *QueryError.
	Exec(statement string, args ...any) error

	// AllExperiments returns every row from experiments ordered by
	// exp_id ascending.
	AllExperiments() (*Result, error)

	// ExperimentByID returns the experiment with the given ID, or an
	// empty Result when no such experiment exists.
	ExperimentByID(expID int64) (*Result, error)

	// ExperimentsByName returns experiments whose name contains pattern,
	// ordered by exp_id. An empty pattern matches every experiment.
	ExperimentsByName(pattern string) (*Result, error)

	// AllRuns returns the most recent limit runs ordered by run_id
	// descending. A limit of zero yields an empty Result.
	AllRuns(limit int64) (*Result, error)

	// RunsByExperiment returns the runs belonging to an experiment,
	// ordered by run_id ascending.
	RunsByExperiment(expID int64) (*Result, error)

	// RunByID returns the run with the given ID, or an empty Result when
	// no such run exists.
	RunByID(runID int64) (*Result, error)

	// CompletedRuns returns every completed run ordered by
	// completed_timestamp descending.
	CompletedRuns() (*Result, error)

	// CompletedRunsForExperiment returns the completed runs of one
	// experiment, ordered by completed_timestamp descending.
	CompletedRunsForExperiment(expID int64) (*Result, error)

	// RecentRuns returns runs whose run_timestamp lies within the past
	// hours hours, ordered by run_timestamp descending. Zero hours
	// matches only timestamps strictly in the future.
	RecentRuns(hours int64) (*Result, error)

	// SearchRunsByGUID returns runs whose guid contains pattern, ordered
	// by run_timestamp descending. An empty pattern matches every run.
	SearchRunsByGUID(pattern string) (*Result, error)

	// LayoutsForRun returns the parameter layouts of a run, ordered by
	// layout_id ascending.
	LayoutsForRun(runID int64) (*Result, error)

	// DependenciesForRun returns the parameter dependencies of a run,
	// joined through layouts, ordered by dependent layout then axis_num.
	DependenciesForRun(runID int64) (*Result, error)

	// ResultData returns up to limit rows from the named result table,
	// ordered by id ascending. The name is checked by the identifier
	// sanitizer; a name that passes validation but has no table fails
	// with *QueryError.
	ResultData(tableName string, limit int64) (*Result, error)

	// ResultDataByRunID resolves a run's result table and delegates to
	// ResultData. Fails with ErrRunNotFound when the run does not exist
	// and ErrNoResultTable when the run has no result table yet.
	ResultDataByRunID(runID int64, limit int64) (*Result, error)

	// CountResultRows returns the number of rows in the named result
	// table. The name is checked by the identifier sanitizer.
	CountResultRows(tableName string) (int64, error)

	// CreateResultTable creates a results-<expID>-<counter> table with an
	// id primary key plus the given measurement columns, and returns the
	// table name. Column names are checked by the identifier sanitizer.
	CreateResultTable(expID int64, counter int64, columns []string) (string, error)

	// AppendResultRow inserts one measurement row into a result table.
	// values are bound positionally to columns.
	AppendResultRow(tableName string, columns []string, values []any) error

	// ListTables returns all table names from the catalog, ordered
	// alphabetically.
	ListTables() ([]string, error)

	// ListResultTables returns the table names following the results-
	// naming convention, ordered alphabetically.
	ListResultTables() ([]string, error)

	// TableInfo returns per-column metadata (name, declared type,
	// nullability, default, primary-key flag) for the named table. A
	// valid name with no matching table yields an empty Result.
	TableInfo(tableName string) (*Result, error)

	// ExperimentSummary returns one row per experiment with its run
	// count, completed-run count, and earliest/latest run timestamps.
	// Experiments without runs appear with zero counts.
	ExperimentSummary() (*Result, error)
}
