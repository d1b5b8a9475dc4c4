package types

import "errors"

// Standard errors returned by the catalog store and the query engine.
// Engine-raised errors (bad SQL, unknown relation, type mismatch) are not
// represented here; they pass through to the caller verbatim.
var (
	// ErrNotFound indicates a logical dataset name absent from the catalog.
	ErrNotFound = errors.New("dataset not found")

	// ErrUnsupportedFormat indicates a file extension or catalog-recorded
	// format outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrEmptyQuery indicates a blank SQL string submitted for execution.
	ErrEmptyQuery = errors.New("empty query")

	// ErrNoTables indicates a SQLite dataset that contains no tables.
	ErrNoTables = errors.New("no tables in database")
)
