// Version command for the datapulse CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapulse/pkg/datapulse"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the datapulse version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "datapulse v%s\n", datapulse.Version)
		return nil
	},
}
