package notebook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/datapulse/pkg/types"
)

func testCatalog() types.Catalog {
	return types.Catalog{
		"sales":  {Path: "/data/sales.csv", Format: types.FormatCSV},
		"events": {Path: "/data/events.parquet", Format: types.FormatParquet},
		"app":    {Path: "/data/app.sqlite", Format: types.FormatSQLite},
	}
}

// readDoc parses a written notebook back into a generic structure.
func readDoc(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func cellSource(t *testing.T, doc map[string]any, index int) string {
	t.Helper()
	cells, ok := doc["cells"].([]any)
	require.True(t, ok)
	require.Greater(t, len(cells), index)

	cell := cells[index].(map[string]any)
	var source string
	for _, line := range cell["source"].([]any) {
		source += line.(string)
	}
	return source
}

func TestWrite_ProducesValidNotebookDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.ipynb")

	path, err := Write(testCatalog(), "SELECT COUNT(*) FROM sales", out)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	doc := readDoc(t, path)
	assert.EqualValues(t, 4, doc["nbformat"])
	assert.EqualValues(t, 5, doc["nbformat_minor"])

	cells := doc["cells"].([]any)
	require.Len(t, cells, 5)

	seen := map[string]bool{}
	for i, c := range cells {
		cell := c.(map[string]any)
		id, _ := cell["id"].(string)
		assert.NotEmpty(t, id, "cell %d has no id", i)
		assert.False(t, seen[id], "cell %d reuses id %s", i, id)
		seen[id] = true

		if cell["cell_type"] == "code" {
			assert.Nil(t, cell["execution_count"])
			assert.Empty(t, cell["outputs"])
		}
	}
}

func TestWrite_HeaderEmbedsQuery(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.ipynb")

	_, err := Write(testCatalog(), "  SELECT 1 AS one  ", out)
	require.NoError(t, err)

	header := cellSource(t, readDoc(t, out), 0)
	assert.Contains(t, header, "```sql\nSELECT 1 AS one\n```")
	assert.Contains(t, header, "DataPulse Analysis")
}

func TestWrite_SetupCellBindsCatalogSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.ipynb")

	_, err := Write(testCatalog(), "SELECT 1", out)
	require.NoError(t, err)

	setup := cellSource(t, readDoc(t, out), 1)
	assert.Contains(t, setup, `CREATE OR REPLACE VIEW \"sales\" AS SELECT * FROM read_csv_auto('/data/sales.csv')`)
	assert.Contains(t, setup, `CREATE OR REPLACE VIEW \"events\" AS SELECT * FROM read_parquet('/data/events.parquet')`)
	assert.Contains(t, setup, `ATTACH '/data/app.sqlite' AS \"s_app\" (TYPE sqlite)`)
	assert.Contains(t, setup, "INSTALL sqlite; LOAD sqlite;")
}

func TestWrite_QuotedIdentifierSurvivesEmbedding(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.ipynb")
	cat := types.Catalog{
		`my "weird" set`: {Path: "/data/w.csv", Format: types.FormatCSV},
	}

	_, err := Write(cat, "SELECT 1", out)
	require.NoError(t, err)

	setup := cellSource(t, readDoc(t, out), 1)
	// QuoteIdent doubles the embedded quotes, pyString escapes them for python.
	assert.Contains(t, setup, `\"my \"\"weird\"\" set\"`)
}

func TestWrite_DbFormatAliasBindsAsSQLite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.ipynb")
	cat := types.Catalog{
		"legacy": {Path: "/data/legacy.db", Format: types.Format("db")},
	}

	_, err := Write(cat, "SELECT 1", out)
	require.NoError(t, err)

	setup := cellSource(t, readDoc(t, out), 1)
	assert.Contains(t, setup, `ATTACH '/data/legacy.db' AS \"s_legacy\" (TYPE sqlite)`)
}

func TestWrite_UnknownStoredFormatFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.ipynb")
	cat := types.Catalog{
		"bad": {Path: "/data/bad.xlsx", Format: types.Format("excel")},
	}

	_, err := Write(cat, "SELECT 1", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)

	// Nothing is written for a catalog the session could not fully bind.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deep", "nested", "analysis.ipynb")

	path, err := Write(testCatalog(), "SELECT 1", out)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWrite_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	path, err := Write(types.Catalog{}, "SELECT 1", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultOutPath, path)

	_, err = os.Stat(filepath.Join(dir, DefaultOutPath))
	assert.NoError(t, err)
}
