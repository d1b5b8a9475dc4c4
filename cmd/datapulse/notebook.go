// Notebook command generates a reproducible Jupyter notebook for a query.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapulse/internal/notebook"
)

var (
	notebookSQL string
	notebookOut string
)

var notebookCmd = &cobra.Command{
	Use:   "notebook",
	Short: "Generate a Jupyter notebook that replays a SQL query",
	Long: `Notebook writes a static .ipynb document that re-binds the current catalog
in an in-memory DuckDB session, runs the given SQL, and renders a preview
and a quick bar chart.

Example:
  datapulse notebook --sql "SELECT region, SUM(amount) AS total FROM sales GROUP BY region"
  datapulse notebook --sql "SELECT 1" --out reports/check.ipynb`,
	Args: cobra.NoArgs,
	RunE: runNotebook,
}

func init() {
	notebookCmd.Flags().StringVar(&notebookSQL, "sql", "", "SQL to embed in the generated notebook (required)")
	notebookCmd.Flags().StringVar(&notebookOut, "out", notebook.DefaultOutPath, "output notebook path")
	_ = notebookCmd.MarkFlagRequired("sql")
}

func runNotebook(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	cat, err := store.Load()
	if err != nil {
		return err
	}

	out, err := notebook.Write(cat, notebookSQL, notebookOut)
	if err != nil {
		return fmt.Errorf("write notebook: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Notebook written to %s\n", out)
	return nil
}
