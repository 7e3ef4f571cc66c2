// Package testutil provides shared helpers for setting up documentation
// repositories in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wrenfield/docdex/internal/storage"
)

// TestRepo creates a temporary repository root with a storage.Provider.
func TestRepo(t *testing.T) (string, storage.Provider) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// DocBody renders a README body carrying the given title and bracketed tag
// list, followed by a heading.
func DocBody(title, tags string) string {
	return "title: " + title + "\ntags: [" + tags + "]\n\n# " + title + "\n"
}

// WriteDoc creates collection/dir/README.md under root with standard
// metadata lines.
func WriteDoc(t *testing.T, root, collection, dir, title, tags string) {
	t.Helper()
	WriteFile(t, root, filepath.Join(collection, dir, "README.md"), DocBody(title, tags))
}

// WriteFile creates rel under root, making parent directories as needed.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
