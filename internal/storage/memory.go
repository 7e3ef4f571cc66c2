package storage

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Memory implements Provider with an in-memory file tree. It lets index
// logic be exercised without a real file system, including injected read
// failures.
type Memory struct {
	files    map[string][]byte
	dirs     map[string]struct{}
	readErrs map[string]error
}

// NewMemory returns an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{
		files:    make(map[string][]byte),
		dirs:     make(map[string]struct{}),
		readErrs: make(map[string]error),
	}
}

// AddFile stores content at path and registers every ancestor directory.
func (m *Memory) AddFile(path string, content []byte) {
	m.files[path] = append([]byte(nil), content...)
	m.addAncestors(path)
}

// AddDir registers an (empty) directory at path.
func (m *Memory) AddDir(path string) {
	m.dirs[path] = struct{}{}
	m.addAncestors(path)
}

// FailRead makes every subsequent Read of path return err.
func (m *Memory) FailRead(path string, err error) {
	m.readErrs[path] = err
}

// File returns the stored content of path, if any.
func (m *Memory) File(path string) ([]byte, bool) {
	data, ok := m.files[path]
	return data, ok
}

// addAncestors registers every directory on the way to path.
func (m *Memory) addAncestors(path string) {
	for {
		i := strings.LastIndex(path, "/")
		if i < 0 {
			return
		}
		path = path[:i]
		m.dirs[path] = struct{}{}
	}
}

// ListDirs returns the immediate child directory names of dir, sorted.
func (m *Memory) ListDirs(dir string) ([]string, error) {
	if _, ok := m.dirs[dir]; !ok {
		return nil, fmt.Errorf("storage: list %s: %w", dir, fs.ErrNotExist)
	}
	prefix := dir + "/"
	seen := make(map[string]struct{})
	var names []string
	for d := range m.dirs {
		if !strings.HasPrefix(d, prefix) {
			continue
		}
		name := strings.TrimPrefix(d, prefix)
		if i := strings.Index(name, "/"); i >= 0 {
			name = name[:i]
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the stored bytes at path, or the injected failure for it.
func (m *Memory) Read(path string) ([]byte, error) {
	if err, ok := m.readErrs[path]; ok {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("storage: read %s: %w", path, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

// Write stores content at path.
func (m *Memory) Write(path string, content []byte) error {
	m.files[path] = append([]byte(nil), content...)
	m.addAncestors(path)
	return nil
}
