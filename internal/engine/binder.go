// Package engine binds cataloged datasets into an embedded DuckDB session
// and executes SQL against them. Each query owns a fresh in-memory session;
// sessions are never shared or pooled.
package engine

import (
	"database/sql"
	"fmt"
	"sort"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/mesh-intelligence/datapulse/pkg/types"
)

// attachedSchemaPrefix prefixes the schema name under which a sqlite
// dataset's tables are attached.
const attachedSchemaPrefix = "s_"

// AttachedSchema returns the schema name under which a sqlite dataset is
// attached. The name derives from the logical name, not an alias, so it is
// deterministic across sessions. Queries over sqlite datasets qualify table
// names with this schema.
func AttachedSchema(name string) string {
	return attachedSchemaPrefix + name
}

// openSession opens a fresh in-memory DuckDB session. The connection pool is
// constrained to a single connection: session state (LOAD, ATTACH, views)
// does not propagate across pooled connections.
func openSession() (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Bind constructs one queryable relation per catalog entry inside the
// session, in catalog (name-sorted) order. csv and parquet entries become
// views over the engine's file-reader functions, so each query re-reads the
// backing file; sqlite entries are attached as foreign schemas exposing
// every table in the file. The effective relation name for a view is the
// alias override when one is supplied and non-empty, else the logical name.
//
// File paths are interpolated into the generated SQL verbatim; catalog
// entries are trusted local input. A failed entry stops binding immediately,
// but entries already bound stay bound: there is no rollback.
func Bind(db *sql.DB, cat types.Catalog, aliases map[string]string) error {
	names := make([]string, 0, len(cat))
	for name := range cat {
		names = append(names, name)
	}
	sort.Strings(names)

	sqliteLoaded := false
	for _, name := range names {
		entry := cat[name]

		relation := name
		if alias, ok := aliases[name]; ok && alias != "" {
			relation = alias
		}

		// Stored formats may use the "db" alias; normalize before dispatch.
		format, err := types.ParseFormat(string(entry.Format))
		if err != nil {
			return fmt.Errorf("%w in catalog entry %q", err, name)
		}

		switch format {
		case types.FormatCSV:
			stmt := fmt.Sprintf("CREATE OR REPLACE VIEW %s AS SELECT * FROM read_csv_auto('%s')",
				QuoteIdent(relation), entry.Path)
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("bind %q: %w", name, err)
			}
		case types.FormatParquet:
			stmt := fmt.Sprintf("CREATE OR REPLACE VIEW %s AS SELECT * FROM read_parquet('%s')",
				QuoteIdent(relation), entry.Path)
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("bind %q: %w", name, err)
			}
		case types.FormatSQLite:
			if !sqliteLoaded {
				if _, err := db.Exec("INSTALL sqlite; LOAD sqlite;"); err != nil {
					return fmt.Errorf("load sqlite extension: %w", err)
				}
				sqliteLoaded = true
			}
			stmt := fmt.Sprintf("ATTACH '%s' AS %s (TYPE sqlite)",
				entry.Path, QuoteIdent(AttachedSchema(name)))
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("bind %q: %w", name, err)
			}
		}
	}
	return nil
}
