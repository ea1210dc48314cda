package types

// Fixed schema table names.
const (
	ExperimentsTable  = "experiments"
	RunsTable         = "runs"
	LayoutsTable      = "layouts"
	DependenciesTable = "dependencies"
)

// ResultTablePrefix is the naming-convention prefix shared by all dynamic
// per-run result tables ("results-<exp_id>-<counter>").
const ResultTablePrefix = "results-"

// SchemaTableNames lists the fixed schema tables for enumeration.
var SchemaTableNames = []string{
	ExperimentsTable,
	RunsTable,
	LayoutsTable,
	DependenciesTable,
}
