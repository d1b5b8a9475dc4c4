// Add command registers a local file under a logical name.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapulse/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Register a data file under a logical name",
	Long: `Add registers a local CSV, Parquet, or SQLite file in the catalog.

The path must exist; it is resolved to an absolute path and the format is
derived from the file extension (.csv, .parquet, .pq, .sqlite, .db).
Re-adding an existing name overwrites its entry.

Example:
  datapulse add sales ./data/sales.csv
  datapulse add events ./exports/events.parquet
  datapulse add app ./app.db`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	ds, err := store.Add(args[0], args[1])
	if err != nil {
		return fmt.Errorf("add dataset: %w", err)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), ds)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s -> %s (%s)\n", ds.Name, ds.Path, ds.Format)
	if ds.Format == types.FormatSQLite {
		fmt.Fprintf(cmd.OutOrStdout(), "Tables are attached under schema s_%s; qualify them in SQL.\n", ds.Name)
	}
	return nil
}
