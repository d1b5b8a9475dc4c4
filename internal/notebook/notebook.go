// Package notebook emits a reproducible Jupyter notebook that replays a SQL
// query over the cataloged datasets. The document is plain nbformat 4.5 JSON
// with fixed cell templates; the current catalog snapshot is embedded in the
// setup cell so the notebook binds the same relations the CLI would.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/datapulse/internal/engine"
	"github.com/mesh-intelligence/datapulse/pkg/types"
)

// DefaultOutPath is where the notebook is written when no path is given.
const DefaultOutPath = "notebooks/analysis.ipynb"

// document is an nbformat 4.5 notebook.
type document struct {
	Cells         []any          `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

type markdownCell struct {
	CellType string         `json:"cell_type"`
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
	Source   []string       `json:"source"`
}

type codeCell struct {
	CellType       string         `json:"cell_type"`
	ID             string         `json:"id"`
	Metadata       map[string]any `json:"metadata"`
	ExecutionCount *int           `json:"execution_count"`
	Outputs        []any          `json:"outputs"`
	Source         []string       `json:"source"`
}

func newMarkdownCell(text string) markdownCell {
	return markdownCell{
		CellType: "markdown",
		ID:       uuid.NewString(),
		Metadata: map[string]any{},
		Source:   sourceLines(text),
	}
}

func newCodeCell(code string) codeCell {
	return codeCell{
		CellType: "code",
		ID:       uuid.NewString(),
		Metadata: map[string]any{},
		Outputs:  []any{},
		Source:   sourceLines(code),
	}
}

// sourceLines splits text into the nbformat source convention: one entry per
// line, each entry keeping its trailing newline except the last.
func sourceLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// pyString renders s as a python double-quoted string literal.
func pyString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// headerCell is the markdown preamble naming the query and generation time.
func headerCell(sqlText string) markdownCell {
	text := fmt.Sprintf(`# DataPulse Analysis

**Generated:** %s

**Query**
`+"```sql\n%s\n```"+`

This notebook registers the cataloged datasets as DuckDB relations, executes
the SQL, and renders a quick preview and plot.
`, time.Now().Format("2006-01-02 15:04:05"), strings.TrimSpace(sqlText))
	return newMarkdownCell(text)
}

// setupCell opens an in-memory DuckDB session and binds the catalog snapshot
// with the same statements the query engine generates. An entry whose stored
// format cannot be normalized fails the whole document rather than being
// silently left out of the session.
func setupCell(cat types.Catalog) (codeCell, error) {
	names := make([]string, 0, len(cat))
	for name := range cat {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("import duckdb\n\n")
	b.WriteString(`con = duckdb.connect(database=":memory:")` + "\n")

	sqliteLoaded := false
	for _, name := range names {
		entry := cat[name]

		format, err := types.ParseFormat(string(entry.Format))
		if err != nil {
			return codeCell{}, fmt.Errorf("%w in catalog entry %q", err, name)
		}

		switch format {
		case types.FormatCSV:
			stmt := fmt.Sprintf("CREATE OR REPLACE VIEW %s AS SELECT * FROM read_csv_auto('%s')",
				engine.QuoteIdent(name), entry.Path)
			b.WriteString("con.execute(" + pyString(stmt) + ")\n")
		case types.FormatParquet:
			stmt := fmt.Sprintf("CREATE OR REPLACE VIEW %s AS SELECT * FROM read_parquet('%s')",
				engine.QuoteIdent(name), entry.Path)
			b.WriteString("con.execute(" + pyString(stmt) + ")\n")
		case types.FormatSQLite:
			if !sqliteLoaded {
				b.WriteString(`con.execute("INSTALL sqlite; LOAD sqlite;")` + "\n")
				sqliteLoaded = true
			}
			stmt := fmt.Sprintf("ATTACH '%s' AS %s (TYPE sqlite)",
				entry.Path, engine.QuoteIdent(engine.AttachedSchema(name)))
			b.WriteString("con.execute(" + pyString(stmt) + ")\n")
		}
	}
	b.WriteString(`print("session ready:", ` + fmt.Sprintf("%d", len(names)) + `, "dataset(s) bound")` + "\n")
	return newCodeCell(b.String()), nil
}

// sqlCell holds the query as an editable python string.
func sqlCell(sqlText string) codeCell {
	return newCodeCell(fmt.Sprintf("# Your SQL (editable)\nsql = r\"\"\"%s\"\"\"\n", strings.TrimSpace(sqlText)))
}

// executeCell runs the query and previews the result.
const executeSource = `# Execute query and show results
df = con.execute(sql).df()
print("Rows:", len(df))
df.head(10)
`

// plotCell draws a bar chart from the first categorical and numeric columns.
const plotSource = `# Quick plot: first categorical column against first numeric column
import pandas as pd
import matplotlib.pyplot as plt

num_cols = [c for c in df.columns if pd.api.types.is_numeric_dtype(df[c])]
cat_cols = [c for c in df.columns if not pd.api.types.is_numeric_dtype(df[c])]

if num_cols and cat_cols:
    x, y = cat_cols[0], num_cols[0]
elif len(num_cols) >= 2:
    x, y = num_cols[0], num_cols[1]
else:
    x = y = None

if x is not None:
    ax = df.groupby(x)[y].sum().plot(kind="bar", figsize=(8, 4))
    ax.set_title(f"{y} by {x}")
    plt.tight_layout()
    plt.show()
else:
    print("Not enough columns to auto-plot.")
`

// Write renders the notebook for sqlText over the given catalog snapshot and
// writes it to outPath (DefaultOutPath when empty), creating parent
// directories as needed. Returns the path written.
func Write(cat types.Catalog, sqlText, outPath string) (string, error) {
	if outPath == "" {
		outPath = DefaultOutPath
	}

	setup, err := setupCell(cat)
	if err != nil {
		return "", err
	}

	doc := document{
		Cells: []any{
			headerCell(sqlText),
			setup,
			sqlCell(sqlText),
			newCodeCell(executeSource),
			newCodeCell(plotSource),
		},
		Metadata: map[string]any{
			"language_info": map[string]any{"name": "python"},
		},
		NBFormat:      4,
		NBFormatMinor: 5,
	}

	data, err := json.MarshalIndent(doc, "", " ")
	if err != nil {
		return "", fmt.Errorf("marshal notebook: %w", err)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create notebook dir: %w", err)
		}
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write notebook: %w", err)
	}
	return outPath, nil
}
