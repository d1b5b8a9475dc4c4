package types

// Result is a fully materialized tabular value: named columns in query
// order and row-major data. It is what load and query operations hand back
// to the caller for display or export.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// RowCount returns the number of rows in the result.
func (r *Result) RowCount() int {
	return len(r.Rows)
}

// Truncate returns a result capped at limit rows. A limit of zero or less
// returns the result unchanged.
func (r *Result) Truncate(limit int) *Result {
	if limit <= 0 || len(r.Rows) <= limit {
		return r
	}
	return &Result{Columns: r.Columns, Rows: r.Rows[:limit]}
}
