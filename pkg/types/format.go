package types

import "fmt"

// Format identifies the file format backing a catalog entry. The set is
// closed: binding logic switches exhaustively over these values.
type Format string

// Supported dataset formats.
const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatSQLite  Format = "sqlite"
)

// validFormats is the set of recognized format values.
var validFormats = map[Format]bool{
	FormatCSV:     true,
	FormatParquet: true,
	FormatSQLite:  true,
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return validFormats[f]
}

// ParseFormat converts a stored format string to a Format. The "db" alias
// folds to sqlite. Returns ErrUnsupportedFormat for anything else.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "csv":
		return FormatCSV, nil
	case "parquet":
		return FormatParquet, nil
	case "sqlite", "db":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}
