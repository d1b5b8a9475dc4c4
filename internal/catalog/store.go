// Package catalog persists the dataset catalog: a JSON document mapping
// logical names to the file path and format backing each dataset.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mesh-intelligence/datapulse/pkg/types"
)

// catalogFileName is the catalog document name inside the catalog directory.
const catalogFileName = "catalog.json"

// Store reads and writes the catalog document in a fixed directory. There is
// no in-memory cache: every operation re-reads the document from disk, so the
// document is the sole source of truth. Operations are load-then-save with no
// locking; two processes racing on the same document lose updates silently
// (last writer wins). Acceptable for a single-user local tool.
type Store struct {
	dir string
}

// NewStore returns a Store bound to the given catalog directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the location of the catalog document.
func (s *Store) Path() string {
	return filepath.Join(s.dir, catalogFileName)
}

// Load reads the catalog document. A missing document is an empty catalog,
// not an error.
func (s *Store) Load() (types.Catalog, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return types.Catalog{}, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var cat types.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return cat, nil
}

// Save writes the full catalog document, creating the catalog directory if
// needed. Output is pretty-printed; encoding/json writes map keys in sorted
// order, so the document is diff-friendly.
func (s *Store) Save(cat types.Catalog) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.WriteFile(s.Path(), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// Get returns the entry for a logical name.
// Returns ErrNotFound if the name is not cataloged.
func (s *Store) Get(name string) (types.Entry, error) {
	cat, err := s.Load()
	if err != nil {
		return types.Entry{}, err
	}

	entry, ok := cat[name]
	if !ok {
		return types.Entry{}, fmt.Errorf("%w: %q", types.ErrNotFound, name)
	}
	return entry, nil
}

// Put inserts or overwrites the entry for a logical name. Re-adding an
// existing name replaces its entry; there is no versioning or history.
func (s *Store) Put(name string, entry types.Entry) error {
	cat, err := s.Load()
	if err != nil {
		return err
	}

	cat[name] = entry
	return s.Save(cat)
}

// Remove deletes a logical name from the catalog.
// Returns ErrNotFound if the name is not cataloged.
func (s *Store) Remove(name string) error {
	cat, err := s.Load()
	if err != nil {
		return err
	}

	if _, ok := cat[name]; !ok {
		return fmt.Errorf("%w: %q", types.ErrNotFound, name)
	}

	delete(cat, name)
	return s.Save(cat)
}

// List returns all datasets sorted by name for deterministic display.
func (s *Store) List() ([]types.Dataset, error) {
	cat, err := s.Load()
	if err != nil {
		return nil, err
	}

	datasets := make([]types.Dataset, 0, len(cat))
	for name, entry := range cat {
		datasets = append(datasets, types.Dataset{Name: name, Entry: entry})
	}
	sort.Slice(datasets, func(i, j int) bool {
		return datasets[i].Name < datasets[j].Name
	})
	return datasets, nil
}

// Add registers a file under a logical name. The path must exist at
// registration time; it is resolved to an absolute, symlink-free path, and
// the format is derived from the extension. Existence is not re-validated
// at query time.
func (s *Store) Add(name, path string) (types.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return types.Dataset{}, fmt.Errorf("stat %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	format, err := ResolveFormat(resolved)
	if err != nil {
		return types.Dataset{}, err
	}

	entry := types.Entry{Path: resolved, Format: format}
	if err := s.Put(name, entry); err != nil {
		return types.Dataset{}, err
	}
	return types.Dataset{Name: name, Entry: entry}, nil
}
