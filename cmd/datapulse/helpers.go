// Shared helpers for datapulse CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/mesh-intelligence/datapulse/internal/catalog"
	"github.com/mesh-intelligence/datapulse/pkg/types"
)

// openStore resolves the catalog directory and returns a store bound to it.
func openStore() (*catalog.Store, error) {
	catalogDir, err := resolveCatalogDir()
	if err != nil {
		return nil, fmt.Errorf("resolve catalog dir: %w", err)
	}
	return catalog.NewStore(catalogDir), nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// renderResult writes a tabular result as an aligned text table, or as JSON
// when --json is set.
func renderResult(w io.Writer, result *types.Result) error {
	if flagJSON {
		return printJSON(w, result)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for i, col := range result.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)

	for _, row := range result.Rows {
		for i, v := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, formatValue(v))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "(%d row(s))\n", result.RowCount())
	return err
}

// formatValue renders a single cell for text output.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	default:
		return fmt.Sprint(val)
	}
}
