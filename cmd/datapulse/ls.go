// Ls command lists cataloged datasets.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cataloged datasets",
	Args:  cobra.NoArgs,
	RunE:  runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	datasets, err := store.List()
	if err != nil {
		return fmt.Errorf("list datasets: %w", err)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), datasets)
	}

	if len(datasets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No datasets. Add one with: datapulse add <name> <path>")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFORMAT\tPATH")
	for _, ds := range datasets {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ds.Name, ds.Format, ds.Path)
	}
	return tw.Flush()
}
