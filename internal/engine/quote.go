package engine

import "strings"

// QuoteIdent quotes a relation or schema name as a SQL identifier: wrapped
// in double quotes with embedded double quotes doubled. Relation names are
// interpolated into generated SQL text and the engine interface has no
// parameterized-identifier facility, so textual quoting is the only guard
// against names containing spaces or reserved characters.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
