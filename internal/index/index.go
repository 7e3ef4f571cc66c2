// Package index builds the tag cross-reference for a documentation
// repository and renders it as a Markdown table.
package index

import (
	"errors"
	"log/slog"
	"os"
	"sort"

	"github.com/wrenfield/docdex/internal/models"
	"github.com/wrenfield/docdex/internal/parser"
	"github.com/wrenfield/docdex/internal/storage"
)

// Index is the tag → references multimap produced by one scan pass.
// It is rebuilt from scratch on every run and never persisted.
type Index struct {
	refs map[string][]models.Reference
}

// Scan enumerates the collections in order and aggregates every indexable
// README into a fresh Index. A missing collection directory or README, or a
// README without complete metadata, contributes nothing. A README that
// exists but cannot be read aborts the scan.
func Scan(store storage.Provider, collections []string, logger *slog.Logger) (*Index, error) {
	ix := &Index{refs: make(map[string][]models.Reference)}
	for _, coll := range collections {
		dirs, err := store.ListDirs(coll)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Debug("index: collection absent", slog.String("collection", coll))
				continue
			}
			return nil, err
		}
		for _, dir := range dirs {
			readme := coll + "/" + dir + "/README.md"
			data, err := store.Read(readme)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					logger.Debug("index: no readme", slog.String("dir", coll+"/"+dir))
					continue
				}
				return nil, err
			}
			res, ok := parser.Parse(data)
			if !ok {
				logger.Debug("index: metadata incomplete", slog.String("path", readme))
				continue
			}
			ix.add(models.Entry{Title: res.Title, Tags: res.Tags, Path: coll + "/" + dir + "/"})
		}
	}
	return ix, nil
}

// add appends the entry's reference to every one of its tags, preserving
// discovery order within each tag.
func (ix *Index) add(e models.Entry) {
	ref := e.Ref()
	for _, tag := range e.Tags {
		ix.refs[tag] = append(ix.refs[tag], ref)
	}
}

// Tags returns the distinct tags in ascending byte order.
func (ix *Index) Tags() []string {
	tags := make([]string, 0, len(ix.refs))
	for t := range ix.refs {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Refs returns the references carrying tag, in discovery order.
func (ix *Index) Refs(tag string) []models.Reference {
	return ix.refs[tag]
}

// Len returns the number of distinct tags.
func (ix *Index) Len() int {
	return len(ix.refs)
}
