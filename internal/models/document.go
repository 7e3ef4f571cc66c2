// Package models defines the domain types for Docdex.
package models

// Entry represents an indexed document: a README.md inside a collection
// subdirectory, reduced to the metadata the tag index is built from.
type Entry struct {
	Title string
	Tags  []string
	Path  string
}

// Reference is the target of a tag table row: a document title and the
// repo-relative path it links to.
type Reference struct {
	Title string
	Path  string
}

// Ref returns the reference form of the entry.
func (e Entry) Ref() Reference {
	return Reference{Title: e.Title, Path: e.Path}
}
