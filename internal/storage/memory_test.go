package storage

import (
	"errors"
	"io/fs"
	"testing"
)

func TestMemory_ListDirs(t *testing.T) {
	m := NewMemory()
	m.AddFile("facets/zeta/README.md", []byte("z"))
	m.AddFile("facets/alpha/README.md", []byte("a"))
	m.AddDir("facets/empty")

	names, err := m.ListDirs("facets")
	if err != nil {
		t.Fatalf("ListDirs: %v", err)
	}
	if len(names) != 3 || names[0] != "alpha" || names[1] != "empty" || names[2] != "zeta" {
		t.Errorf("names = %v, want [alpha empty zeta]", names)
	}
}

func TestMemory_ListDirs_Missing(t *testing.T) {
	m := NewMemory()
	_, err := m.ListDirs("facets")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestMemory_ReadMissing(t *testing.T) {
	m := NewMemory()
	m.AddDir("facets/bare")
	_, err := m.Read("facets/bare/README.md")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestMemory_FailRead(t *testing.T) {
	m := NewMemory()
	m.AddFile("facets/broken/README.md", []byte("data"))
	m.FailRead("facets/broken/README.md", errors.New("permission denied"))

	_, err := m.Read("facets/broken/README.md")
	if err == nil {
		t.Fatal("expected injected read failure")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Error("injected failure must not look like a missing file")
	}
}

func TestMemory_WriteThenFile(t *testing.T) {
	m := NewMemory()
	if err := m.Write("tag-index.md", []byte("rendered")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, ok := m.File("tag-index.md")
	if !ok || string(got) != "rendered" {
		t.Errorf("File = %q, %v", got, ok)
	}
}
