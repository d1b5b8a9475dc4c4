// Sql command runs a query across all cataloged datasets.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapulse/internal/engine"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query...>",
	Short: "Run a SQL query across all cataloged datasets",
	Long: `Sql executes a query against a fresh in-memory DuckDB session with every
cataloged dataset bound. CSV and Parquet datasets are views under their
logical names; SQLite datasets are schemas named s_<name>.

Example:
  datapulse sql "SELECT COUNT(*) FROM sales"
  datapulse sql 'SELECT u.v, s.amount FROM "s_app".users u JOIN sales s ON u.k = s.id'`,
	Args: cobra.ArbitraryArgs,
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	sqlText := strings.TrimSpace(strings.Join(args, " "))
	if sqlText == "" {
		fmt.Fprintln(os.Stderr, `Provide a query, e.g.: datapulse sql "SELECT COUNT(*) FROM sales"`)
		os.Exit(exitUsageError)
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	result, err := engine.Execute(store, sqlText, nil)
	if err != nil {
		return err
	}

	return renderResult(cmd.OutOrStdout(), result)
}
