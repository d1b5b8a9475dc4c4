package engine

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/datapulse/internal/catalog"
	"github.com/mesh-intelligence/datapulse/pkg/types"
)

// Head materializes a preview of one cataloged dataset. For csv and parquet
// the whole file is read and then truncated to limit rows: a preview, not a
// pushdown. For sqlite the given table is previewed, or, when table is
// empty, the first table in lexicographic order from the file's table
// catalog. A limit of zero or less returns every row.
func Head(store *catalog.Store, name, table string, limit int) (*types.Result, error) {
	entry, err := store.Get(name)
	if err != nil {
		return nil, err
	}

	// Stored formats may use the "db" alias; normalize before dispatch.
	format, err := types.ParseFormat(string(entry.Format))
	if err != nil {
		return nil, fmt.Errorf("%w in catalog entry %q", err, name)
	}

	switch format {
	case types.FormatCSV:
		return headCSV(entry.Path, limit)
	case types.FormatParquet:
		return headParquet(entry.Path, limit)
	default: // types.FormatSQLite; ParseFormat admits nothing else
		return headSQLite(entry.Path, table, limit)
	}
}

// headCSV reads the whole file into memory; the first record is the header.
func headCSV(path string, limit int) (*types.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return &types.Result{Columns: []string{}, Rows: [][]any{}}, nil
	}

	result := &types.Result{Columns: records[0], Rows: make([][]any, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := make([]any, len(record))
		for i, field := range record {
			row[i] = field
		}
		result.Rows = append(result.Rows, row)
	}
	return result.Truncate(limit), nil
}

// headParquet decodes flat leaf columns from every row group in file order.
func headParquet(path string, limit int) (*types.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet: %w", err)
	}
	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}

	fields := pf.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}

	result := &types.Result{Columns: columns, Rows: [][]any{}}
	buf := make([]parquet.Row, 128)
	for _, group := range pf.RowGroups() {
		reader := group.Rows()
		for {
			n, err := reader.ReadRows(buf)
			for _, pqRow := range buf[:n] {
				row := make([]any, len(columns))
				for _, value := range pqRow {
					if col := int(value.Column()); col >= 0 && col < len(row) {
						row[col] = goValue(value)
					}
				}
				result.Rows = append(result.Rows, row)
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				reader.Close()
				return nil, fmt.Errorf("read parquet: %w", err)
			}
		}
		if err := reader.Close(); err != nil {
			return nil, fmt.Errorf("close parquet reader: %w", err)
		}
	}
	return result.Truncate(limit), nil
}

// goValue converts a parquet leaf value to a plain Go value.
func goValue(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return v.Int32()
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return v.Float()
	case parquet.Double:
		return v.Double()
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}

// headSQLite previews one table from a sqlite file through a direct driver
// connection, independent of the DuckDB session path.
func headSQLite(path, table string, limit int) (*types.Result, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if table == "" {
		table, err = firstTable(db)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	query := "SELECT * FROM " + QuoteIdent(table)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRows(rows)
}

// firstTable returns the lexicographically first table name in the file's
// table catalog. Returns ErrNoTables when the file has none.
func firstTable(db *sql.DB) (string, error) {
	row := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name LIMIT 1")

	var name string
	if err := row.Scan(&name); err != nil {
		if err == sql.ErrNoRows {
			return "", types.ErrNoTables
		}
		return "", err
	}
	return name, nil
}
