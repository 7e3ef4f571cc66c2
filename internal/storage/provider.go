// Package storage defines the repository file-system abstraction.
package storage

// Provider is the interface for repository file operations. All paths are
// forward-slash separated and relative to the repository root.
type Provider interface {
	// ListDirs returns the names of the immediate child directories of dir,
	// in lexicographic order. A missing dir yields an error satisfying
	// errors.Is(err, fs.ErrNotExist).
	ListDirs(dir string) ([]string, error)
	// Read returns the raw bytes of the file at path. A missing file yields
	// an error satisfying errors.Is(err, fs.ErrNotExist).
	Read(path string) ([]byte, error)
	// Write atomically replaces the file at path with content.
	Write(path string, content []byte) error
}
