// Head command previews the top rows of a dataset.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapulse/internal/engine"
)

var (
	headTable string
	headLimit int
)

var headCmd = &cobra.Command{
	Use:   "head <name>",
	Short: "Preview the top rows of a dataset",
	Long: `Head reads one dataset and shows its first rows.

For SQLite datasets the first table in lexicographic order is previewed
unless --table names one. --limit 0 shows every row.

Example:
  datapulse head sales
  datapulse head app --table users --limit 10`,
	Args: cobra.ExactArgs(1),
	RunE: runHead,
}

func init() {
	headCmd.Flags().StringVar(&headTable, "table", "", "for SQLite datasets, a specific table to preview")
	headCmd.Flags().IntVar(&headLimit, "limit", defaultPreviewLimit, "maximum rows to show (0 = all)")
}

func runHead(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	limit := headLimit
	if !cmd.Flags().Changed("limit") {
		limit = configPreviewLimit
	}

	result, err := engine.Head(store, args[0], headTable, limit)
	if err != nil {
		return fmt.Errorf("head %s: %w", args[0], err)
	}

	return renderResult(cmd.OutOrStdout(), result)
}
