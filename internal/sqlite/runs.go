package sqlite

import (
	"time"

	"github.com/mesh-intelligence/labdb/pkg/types"
)

// now is the clock used for the recent-runs cutoff; overridable in tests.
var now = time.Now

// AllRuns returns the most recent limit runs ordered by run_id descending.
// A limit of zero yields no rows; a limit beyond the row count yields all.
func (d *DB) AllRuns(limit int64) (*types.Result, error) {
	return d.Query(`SELECT * FROM runs ORDER BY run_id DESC LIMIT ?`, limit)
}

// RunsByExperiment returns the runs of one experiment ordered by run_id
// ascending.
func (d *DB) RunsByExperiment(expID int64) (*types.Result, error) {
	return d.Query(`SELECT * FROM runs WHERE exp_id = ? ORDER BY run_id`, expID)
}

// RunByID returns the run with the given ID. An absent ID yields an empty
// result, not an error.
func (d *DB) RunByID(runID int64) (*types.Result, error) {
	return d.Query(`SELECT * FROM runs WHERE run_id = ?`, runID)
}

// CompletedRuns returns every completed run ordered by completed_timestamp
// descending.
func (d *DB) CompletedRuns() (*types.Result, error) {
	return d.Query(
		`SELECT * FROM runs WHERE is_completed = 1 ORDER BY completed_timestamp DESC`)
}

// CompletedRunsForExperiment returns the completed runs of one experiment
// ordered by completed_timestamp descending.
func (d *DB) CompletedRunsForExperiment(expID int64) (*types.Result, error) {
	return d.Query(
		`SELECT * FROM runs WHERE is_completed = 1 AND exp_id = ? ORDER BY completed_timestamp DESC`,
		expID)
}

// RecentRuns returns runs started within the past hours hours, ordered by
// run_timestamp descending. The cutoff is strict, so zero hours matches
// only timestamps in the future.
func (d *DB) RecentRuns(hours int64) (*types.Result, error) {
	cutoff := now().Add(-time.Duration(hours) * time.Hour).Unix()
	return d.Query(
		`SELECT * FROM runs WHERE run_timestamp > ? ORDER BY run_timestamp DESC`,
		cutoff)
}

// SearchRunsByGUID returns runs whose guid contains pattern, ordered by
// run_timestamp descending. An empty pattern matches all runs.
func (d *DB) SearchRunsByGUID(pattern string) (*types.Result, error) {
	return d.Query(
		`SELECT * FROM runs WHERE guid LIKE '%' || ? || '%' ORDER BY run_timestamp DESC`,
		pattern)
}
