// Package main provides the datapulse CLI: a local-first catalog of data
// files (CSV, Parquet, SQLite) queryable through an embedded DuckDB session.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
