package index

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/wrenfield/docdex/internal/storage"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// memDoc registers collection/dir/README.md with standard metadata lines.
func memDoc(m *storage.Memory, collection, dir, title, tags string) {
	body := "title: " + title + "\ntags: [" + tags + "]\n\n# " + title + "\n"
	m.AddFile(collection+"/"+dir+"/README.md", []byte(body))
}

func mustScan(t *testing.T, m *storage.Memory) *Index {
	t.Helper()
	ix, err := Scan(m, []string{"facets", "experiences"}, quietLogger())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return ix
}

func TestScan_DiscoveryOrder(t *testing.T) {
	m := storage.NewMemory()
	memDoc(m, "facets", "accessibility", "Accessibility", "a11y, ux")
	memDoc(m, "experiences", "search-and-discovery", "Search & Discovery", "search, ux")

	ix := mustScan(t, m)

	refs := ix.Refs("ux")
	if len(refs) != 2 {
		t.Fatalf("ux refs = %d, want 2", len(refs))
	}
	// facets is scanned before experiences.
	if refs[0].Title != "Accessibility" || refs[0].Path != "facets/accessibility/" {
		t.Errorf("refs[0] = %+v", refs[0])
	}
	if refs[1].Title != "Search & Discovery" || refs[1].Path != "experiences/search-and-discovery/" {
		t.Errorf("refs[1] = %+v", refs[1])
	}
}

func TestScan_LexicographicWithinCollection(t *testing.T) {
	m := storage.NewMemory()
	memDoc(m, "facets", "zeta", "Zeta", "shared")
	memDoc(m, "facets", "alpha", "Alpha", "shared")
	memDoc(m, "facets", "mid", "Mid", "shared")

	ix := mustScan(t, m)

	refs := ix.Refs("shared")
	if len(refs) != 3 {
		t.Fatalf("refs = %d, want 3", len(refs))
	}
	if refs[0].Title != "Alpha" || refs[1].Title != "Mid" || refs[2].Title != "Zeta" {
		t.Errorf("refs out of order: %+v", refs)
	}
}

func TestScan_SkipsIncompleteMetadata(t *testing.T) {
	m := storage.NewMemory()
	m.AddFile("facets/foo/README.md", []byte("title: Foo\n\n# Foo\n"))
	memDoc(m, "facets", "ok", "Ok", "kept")

	ix := mustScan(t, m)

	if ix.Len() != 1 {
		t.Errorf("tag count = %d, want 1", ix.Len())
	}
	if refs := ix.Refs("kept"); len(refs) != 1 || refs[0].Title != "Ok" {
		t.Errorf("kept refs = %+v", refs)
	}
}

func TestScan_SkipsMissingReadme(t *testing.T) {
	m := storage.NewMemory()
	m.AddDir("facets/bare")
	memDoc(m, "facets", "ok", "Ok", "kept")

	ix := mustScan(t, m)

	if ix.Len() != 1 {
		t.Errorf("tag count = %d, want 1", ix.Len())
	}
}

func TestScan_MissingCollection(t *testing.T) {
	m := storage.NewMemory()
	memDoc(m, "experiences", "checkout", "Checkout", "payments")

	ix := mustScan(t, m)

	if ix.Len() != 1 {
		t.Errorf("tag count = %d, want 1", ix.Len())
	}
	if refs := ix.Refs("payments"); len(refs) != 1 || refs[0].Path != "experiences/checkout/" {
		t.Errorf("payments refs = %+v", refs)
	}
}

func TestScan_ReadFailureAborts(t *testing.T) {
	m := storage.NewMemory()
	memDoc(m, "facets", "broken", "Broken", "x")
	m.FailRead("facets/broken/README.md", errors.New("permission denied"))

	_, err := Scan(m, []string{"facets"}, quietLogger())
	if err == nil {
		t.Fatal("expected scan to fail")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Error("read failure must not be treated as a missing file")
	}
	if !strings.Contains(err.Error(), "facets/broken/README.md") {
		t.Errorf("error %q does not name the offending file", err)
	}
}

func TestScan_PathFormat(t *testing.T) {
	m := storage.NewMemory()
	memDoc(m, "facets", "frontend-architecture", "Frontend Architecture", "frontend")
	memDoc(m, "experiences", "onboarding", "Onboarding", "frontend")

	ix := mustScan(t, m)

	pathRe := regexp.MustCompile(`^(facets|experiences)/[^/]+/$`)
	for _, tag := range ix.Tags() {
		for _, ref := range ix.Refs(tag) {
			if !pathRe.MatchString(ref.Path) {
				t.Errorf("path %q does not match <collection>/<dir>/", ref.Path)
			}
		}
	}
}

func TestIndex_TagsSortedCaseSensitive(t *testing.T) {
	m := storage.NewMemory()
	memDoc(m, "facets", "one", "One", "b, A")
	memDoc(m, "facets", "two", "Two", "a, Z")

	ix := mustScan(t, m)

	tags := ix.Tags()
	want := []string{"A", "Z", "a", "b"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", tags, want)
		}
	}
}

func TestIndex_DuplicateTagInOneDoc(t *testing.T) {
	// A tag repeated on one tags line is aggregated twice; the index does
	// not deduplicate (title, path) pairs.
	m := storage.NewMemory()
	memDoc(m, "facets", "dup", "Dup", "same, same")

	ix := mustScan(t, m)

	refs := ix.Refs("same")
	if len(refs) != 2 {
		t.Fatalf("refs = %d, want 2", len(refs))
	}
	if refs[0] != refs[1] {
		t.Errorf("refs differ: %+v vs %+v", refs[0], refs[1])
	}
}

func TestIndex_Empty(t *testing.T) {
	ix := mustScan(t, storage.NewMemory())
	if ix.Len() != 0 {
		t.Errorf("Len = %d, want 0", ix.Len())
	}
	if tags := ix.Tags(); len(tags) != 0 {
		t.Errorf("Tags = %v, want none", tags)
	}
}
