// Package types defines the catalog entry types, the tabular result value,
// and standard error types shared by the DataPulse catalog and query engine.
package types
