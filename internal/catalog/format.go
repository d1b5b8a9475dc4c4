package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mesh-intelligence/datapulse/pkg/types"
)

// extFormats maps recognized file extensions to their canonical format.
// The ".pq" spelling folds to parquet and ".db" to sqlite.
var extFormats = map[string]types.Format{
	".csv":     types.FormatCSV,
	".parquet": types.FormatParquet,
	".pq":      types.FormatParquet,
	".sqlite":  types.FormatSQLite,
	".db":      types.FormatSQLite,
}

// supportedExts is the sorted extension list used in error messages.
var supportedExts = func() string {
	exts := make([]string, 0, len(extFormats))
	for ext := range extFormats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}()

// ResolveFormat derives a dataset format from the path's extension,
// case-insensitively. Returns ErrUnsupportedFormat naming the rejected
// extension and the supported set for anything outside it.
func ResolveFormat(path string) (types.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extFormats[ext]
	if !ok {
		return "", fmt.Errorf("%w: extension %q (supported: %s)", types.ErrUnsupportedFormat, ext, supportedExts)
	}
	return format, nil
}
