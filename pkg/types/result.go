package types

// Result is a fully materialized tabular query result: an ordered list of
// column names and the rows that were read, in the order the engine
// produced them. No reordering is imposed beyond the query's own ORDER BY.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (r *Result) Len() int {
	return len(r.Rows)
}

// Empty reports whether the result has no rows.
func (r *Result) Empty() bool {
	return len(r.Rows) == 0
}

// ColumnIndex returns the position of the named column, or -1 when the
// result has no such column.
func (r *Result) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the value at (row, column name). ok is false when the row
// index is out of range or the column does not exist.
func (r *Result) Value(row int, column string) (any, bool) {
	if row < 0 || row >= len(r.Rows) {
		return nil, false
	}
	i := r.ColumnIndex(column)
	if i < 0 || i >= len(r.Rows[row]) {
		return nil, false
	}
	return r.Rows[row][i], true
}

// Maps returns the rows as column-keyed maps, one per row. Used by callers
// that serialize results (the CLI JSON mode) rather than index into them.
func (r *Result) Maps() []map[string]any {
	out := make([]map[string]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		m := make(map[string]any, len(r.Columns))
		for i, c := range r.Columns {
			if i < len(row) {
				m[c] = row[i]
			}
		}
		out = append(out, m)
	}
	return out
}
