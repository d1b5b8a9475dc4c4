package types

// Entry records where a dataset lives and how to read it. The path is
// absolute, resolved at registration time; the format is derived from the
// file extension at registration and never re-inferred from content.
type Entry struct {
	Path   string `json:"path"`
	Format Format `json:"format"`
}

// Catalog maps logical dataset names to their entries. It is the in-memory
// form of the persisted catalog document.
type Catalog map[string]Entry

// Dataset pairs a logical name with its entry for ordered listings.
type Dataset struct {
	Name string `json:"name"`
	Entry
}
