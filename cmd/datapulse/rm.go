// Rm command removes a dataset from the catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a dataset from the catalog",
	Long: `Rm removes a logical name from the catalog. The backing file is not
touched.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Remove(args[0]); err != nil {
		return fmt.Errorf("remove dataset: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	return nil
}
