package browse

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Entry is one raw directory entry as reported by a Lister.
type Entry struct {
	Name  string
	IsDir bool
}

// Lister enumerates the entries of a single directory. Implementations
// report failures as errors matching ErrNotFound, ErrNotADirectory or
// ErrPermissionDenied.
type Lister interface {
	ListEntries(path string) ([]Entry, error)
}

// OSLister lists directories of the local filesystem.
// Symbolic links are reported with the kind of their target; dangling links
// are reported as files.
type OSLister struct{}

// ListEntries implements Lister using os.ReadDir.
func (OSLister) ListEntries(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, NewPathError("list", path, err)
	}
	if !info.IsDir() {
		return nil, &PathError{Op: "list", Path: path, Kind: ErrNotADirectory}
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, NewPathError("list", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(filepath.Join(path, d.Name())); err == nil {
				isDir = target.IsDir()
			}
		}
		entries = append(entries, Entry{Name: d.Name(), IsDir: isDir})
	}
	return entries, nil
}

// MapLister serves fixed listings keyed by directory path. Paths that are not
// in the map fail with ErrNotFound.
type MapLister map[string][]Entry

// ListEntries implements Lister.
func (m MapLister) ListEntries(path string) ([]Entry, error) {
	entries, ok := m[path]
	if !ok {
		return nil, &PathError{Op: "list", Path: path, Kind: ErrNotFound}
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}
