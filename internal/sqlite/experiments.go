package sqlite

import (
	"github.com/mesh-intelligence/labdb/pkg/types"
)

// AllExperiments returns every experiment ordered by exp_id ascending.
func (d *DB) AllExperiments() (*types.Result, error) {
	return d.Query(`SELECT * FROM experiments ORDER BY exp_id`)
}

// ExperimentByID returns the experiment with the given ID. An absent ID
// yields an empty result, not an error.
func (d *DB) ExperimentByID(expID int64) (*types.Result, error) {
	return d.Query(`SELECT * FROM experiments WHERE exp_id = ?`, expID)
}

// ExperimentsByName returns experiments whose name contains pattern,
// ordered by exp_id. An empty pattern matches all experiments.
func (d *DB) ExperimentsByName(pattern string) (*types.Result, error) {
	return d.Query(
		`SELECT * FROM experiments WHERE name LIKE '%' || ? || '%' ORDER BY exp_id`,
		pattern)
}

// ExperimentSummary returns one row per experiment with aggregate run
// statistics. The LEFT JOIN keeps experiments that have no runs; their
// counts come back as zero and their timestamp bounds as NULL.
func (d *DB) ExperimentSummary() (*types.Result, error) {
	return d.Query(`
		SELECT
			e.exp_id,
			e.name,
			e.sample_name,
			e.run_counter,
			COUNT(r.run_id) AS actual_run_count,
			MIN(r.run_timestamp) AS first_run_timestamp,
			MAX(r.run_timestamp) AS last_run_timestamp,
			COALESCE(SUM(r.is_completed), 0) AS completed_run_count
		FROM experiments e
		LEFT JOIN runs r ON r.exp_id = e.exp_id
		GROUP BY e.exp_id, e.name, e.sample_name, e.run_counter
		ORDER BY e.exp_id`)
}
