package engine

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/datapulse/internal/catalog"
	"github.com/mesh-intelligence/datapulse/pkg/types"
)

// event is the row type for parquet test fixtures.
type event struct {
	ID    int64  `parquet:"id"`
	Label string `parquet:"label"`
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeParquet(t *testing.T, dir, name string, rows []event) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	require.NoError(t, err)

	w := parquet.NewGenericWriter[event](f)
	_, err = w.Write(rows)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func writeSQLite(t *testing.T, dir, name string, tables map[string][][2]string) string {
	t.Helper()
	path := filepath.Join(dir, name)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Ping())

	for table, rows := range tables {
		_, err := db.Exec("CREATE TABLE " + QuoteIdent(table) + " (k TEXT, v TEXT)")
		require.NoError(t, err)
		for _, row := range rows {
			_, err := db.Exec("INSERT INTO "+QuoteIdent(table)+" (k, v) VALUES (?, ?)", row[0], row[1])
			require.NoError(t, err)
		}
	}
	return path
}

// newCatalogStore returns a store in its own temp directory plus the data
// directory test files should be written to.
func newCatalogStore(t *testing.T) (*catalog.Store, string) {
	t.Helper()
	base := t.TempDir()
	return catalog.NewStore(filepath.Join(base, ".datapulse")), base
}

func mustPut(t *testing.T, store *catalog.Store, name, path string, format types.Format) {
	t.Helper()
	require.NoError(t, store.Put(name, types.Entry{Path: path, Format: format}))
}
