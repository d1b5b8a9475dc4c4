package engine

import (
	"database/sql"
	"strings"

	"github.com/mesh-intelligence/datapulse/internal/catalog"
	"github.com/mesh-intelligence/datapulse/pkg/types"
)

// Execute runs a SQL string against a fresh in-memory session with every
// cataloged dataset bound. The result set is fully materialized before the
// session is torn down; the session and any attached file handles are
// released on every exit path. Engine errors (bad SQL, unknown relation,
// type mismatch) pass through verbatim.
func Execute(store *catalog.Store, sqlText string, aliases map[string]string) (*types.Result, error) {
	if strings.TrimSpace(sqlText) == "" {
		return nil, types.ErrEmptyQuery
	}

	db, err := openSession()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	cat, err := store.Load()
	if err != nil {
		return nil, err
	}
	if err := Bind(db, cat, aliases); err != nil {
		return nil, err
	}

	rows, err := db.Query(sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRows(rows)
}

// collectRows materializes a full result set into a tabular value.
func collectRows(rows *sql.Rows) (*types.Result, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &types.Result{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
