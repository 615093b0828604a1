package repositories

// FileInfo is the subset of file metadata used by detection and size reporting.
type FileInfo struct {
	Size        int64
	IsDirectory bool
}

// Entry is a single child of a directory.
type Entry struct {
	Name        string
	IsDirectory bool
}

// DirectoryInspector gives read access to a project tree, plus the few writes the
// command layer performs (settings, manifests, switching managers).
// Paths are absolute or relative to the process working directory.
type DirectoryInspector interface {
	// Exists reports whether anything exists at path.
	Exists(path string) bool

	// Stat returns the metadata of path.
	Stat(path string) (FileInfo, error)

	// ListEntries returns the children of a directory sorted by name.
	ListEntries(path string) ([]Entry, error)

	// ReadFile returns the whole content of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of a file, creating it when missing.
	WriteFile(path string, content []byte) error

	// Remove deletes path and everything below it. A missing path is not an error.
	Remove(path string) error
}
