package sqlite

// Schema DDL for the fixed tables, applied when Open creates a fresh store.
// Result tables are created dynamically and are deliberately absent here.
const (
	createExperiments = `CREATE TABLE experiments (
    exp_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT,
    sample_name TEXT,
    start_time INTEGER,
    end_time INTEGER,
    format_string TEXT,
    run_counter INTEGER
);`

	createRuns = `CREATE TABLE runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    exp_id INTEGER,
    name TEXT,
    result_table_name TEXT,
    result_counter INTEGER,
    run_timestamp INTEGER,
    completed_timestamp INTEGER,
    is_completed INTEGER,
    guid TEXT,
    FOREIGN KEY (exp_id) REFERENCES experiments(exp_id)
);`

	createLayouts = `CREATE TABLE layouts (
    layout_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER,
    parameter TEXT,
    label TEXT,
    unit TEXT,
    inferred_from TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`

	createDependencies = `CREATE TABLE dependencies (
    dependent INTEGER,
    independent INTEGER,
    axis_num INTEGER,
    FOREIGN KEY (dependent) REFERENCES layouts(layout_id),
    FOREIGN KEY (independent) REFERENCES layouts(layout_id)
);`
)

// Index DDL for common lookups.
const (
	idxRunsExp       = `CREATE INDEX idx_runs_exp ON runs(exp_id);`
	idxRunsGUID      = `CREATE INDEX idx_runs_guid ON runs(guid);`
	idxRunsTimestamp = `CREATE INDEX idx_runs_timestamp ON runs(run_timestamp);`
	idxLayoutsRun    = `CREATE INDEX idx_layouts_run ON layouts(run_id);`
	idxDepsDependent = `CREATE INDEX idx_deps_dependent ON dependencies(dependent);`
)

// schemaDDL lists the CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createExperiments,
	createRuns,
	createLayouts,
	createDependencies,
}

// indexDDL lists the CREATE INDEX statements.
var indexDDL = []string{
	idxRunsExp,
	idxRunsGUID,
	idxRunsTimestamp,
	idxLayoutsRun,
	idxDepsDependent,
}
