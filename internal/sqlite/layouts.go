package sqlite

import (
	"github.com/mesh-intelligence/labdb/pkg/types"
)

// LayoutsForRun returns the parameter layouts of a run ordered by
// layout_id ascending.
func (d *DB) LayoutsForRun(runID int64) (*types.Result, error) {
	return d.Query(`SELECT * FROM layouts WHERE run_id = ? ORDER BY layout_id`, runID)
}

// DependenciesForRun returns the parameter dependencies of a run. The
// dependencies table references layouts on both sides, so the run filter
// joins through the dependent layout.
func (d *DB) DependenciesForRun(runID int64) (*types.Result, error) {
	return d.Query(`
		SELECT d.dependent, d.independent, d.axis_num
		FROM dependencies d
		JOIN layouts l ON l.layout_id = d.dependent
		WHERE l.run_id = ?
		ORDER BY d.dependent, d.axis_num`, runID)
}
