// Root command for the datapulse CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapulse/internal/paths"
	"github.com/mesh-intelligence/datapulse/pkg/datapulse"
)

// Exit codes.
const (
	exitSuccess    = 0
	exitUserError  = 1
	exitUsageError = 2
)

// Global flag values.
var (
	flagConfigDir  string
	flagCatalogDir string
	flagJSON       bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands can
// use them.
var (
	configCatalogDir   string
	configPreviewLimit int
)

var rootCmd = &cobra.Command{
	Use:   "datapulse",
	Short: "DataPulse is a local-first dataset catalog and SQL workbench",
	Long: `DataPulse registers local data files (CSV, Parquet, SQLite) under logical
names and queries them together through an embedded DuckDB session.

CSV and Parquet datasets are bound as views under their logical name.
SQLite datasets are attached as a schema named s_<name>; qualify their
tables in SQL, e.g. SELECT * FROM "s_app".users.`,
	Version:           datapulse.Version,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configCatalogDir = cfg.GetString(cfgKeyCatalogDir)
		configPreviewLimit = cfg.GetInt(cfgKeyPreviewLimit)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagCatalogDir, "catalog-dir", "", "catalog directory (default: $(CWD)/.datapulse)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(headCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(notebookCmd)
}

// resolveCatalogDir returns the catalog directory following the precedence:
// --catalog-dir flag > config.yaml catalog_dir > DATAPULSE_CATALOG_DIR env >
// default $(CWD)/.datapulse.
func resolveCatalogDir() (string, error) {
	return paths.ResolveCatalogDir(flagCatalogDir, configCatalogDir)
}
