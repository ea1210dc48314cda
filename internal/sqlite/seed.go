package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Seed populates a store with a small demo dataset: two experiments, three
// runs under the first (one still incomplete, one without a result table)
// and none under the second, plus layouts, dependencies and two result
// tables. Used by the CLI seed command and as a test fixture.
func Seed(d *DB) error {
	base := time.Now().Add(-2 * time.Hour).Unix()

	if err := d.Exec(
		`INSERT INTO experiments (name, sample_name, start_time, format_string, run_counter)
		 VALUES (?, ?, ?, ?, ?)`,
		"qubit spectroscopy", "wafer-7", base, "{}-{}-{}", 3); err != nil {
		return fmt.Errorf("seeding experiments: %w", err)
	}
	if err := d.Exec(
		`INSERT INTO experiments (name, sample_name, start_time, format_string, run_counter)
		 VALUES (?, ?, ?, ?, ?)`,
		"calibration", "wafer-9", base, "{}-{}-{}", 0); err != nil {
		return fmt.Errorf("seeding experiments: %w", err)
	}

	runs := []struct {
		name         string
		counter      int64
		offset       int64 // seconds after base
		completed    bool
		resultTable  bool
		resultValues [][]any
	}{
		{
			name: "frequency sweep", counter: 1, offset: 60,
			completed: true, resultTable: true,
			resultValues: [][]any{
				{4.92e9, 0.013}, {4.94e9, 0.021}, {4.96e9, 0.084}, {4.98e9, 0.017},
			},
		},
		{
			name: "power sweep", counter: 2, offset: 1800,
			completed: true, resultTable: true,
			resultValues: [][]any{
				{-30.0, 0.004}, {-20.0, 0.036}, {-10.0, 0.118},
			},
		},
		{
			// Registered but not started: no result table yet.
			name: "rabi", counter: 3, offset: 3600,
			completed: false, resultTable: false,
		},
	}

	for _, r := range runs {
		ts := base + r.offset
		var tableName any
		var completedTS any
		completed := 0
		if r.completed {
			completed = 1
			completedTS = ts + 300
		}
		if r.resultTable {
			name, err := d.CreateResultTable(1, r.counter, []string{"frequency", "amplitude"})
			if err != nil {
				return fmt.Errorf("seeding result table: %w", err)
			}
			for _, row := range r.resultValues {
				if err := d.AppendResultRow(name, []string{"frequency", "amplitude"}, row); err != nil {
					return fmt.Errorf("seeding result rows: %w", err)
				}
			}
			tableName = name
		}

		if err := d.Exec(
			`INSERT INTO runs (exp_id, name, result_table_name, result_counter,
			                   run_timestamp, completed_timestamp, is_completed, guid)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			1, r.name, tableName, r.counter, ts, completedTS, completed, newGUID()); err != nil {
			return fmt.Errorf("seeding runs: %w", err)
		}
	}

	// Layouts and a dependency for the first run: amplitude measured
	// against frequency.
	if err := d.Exec(
		`INSERT INTO layouts (run_id, parameter, label, unit, inferred_from)
		 VALUES (1, 'frequency', 'Drive frequency', 'Hz', ''),
		        (1, 'amplitude', 'Response amplitude', 'V', '')`); err != nil {
		return fmt.Errorf("seeding layouts: %w", err)
	}
	if err := d.Exec(
		`INSERT INTO dependencies (dependent, independent, axis_num) VALUES (2, 1, 0)`); err != nil {
		return fmt.Errorf("seeding dependencies: %w", err)
	}

	return nil
}

// newGUID generates a run GUID. UUID v7 keeps GUIDs time-ordered; v4 is
// the fallback if v7 generation fails.
func newGUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
