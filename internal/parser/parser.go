// Package parser extracts title and tag metadata from README frontmatter.
package parser

import (
	"regexp"
	"strings"
)

var (
	titleRe = regexp.MustCompile(`(?m)^title:(.*)$`)
	tagsRe  = regexp.MustCompile(`(?m)^tags:[ \t]*\[([^\]]*)\]`)
)

// Result holds the metadata extracted from a single README.
type Result struct {
	Title string
	Tags  []string
}

// Parse scans raw Markdown bytes for the title and tags frontmatter lines.
// Matching is anchored to line starts and does not require --- fence
// delimiters; the first match of each pattern wins. The boolean is false when
// either field is missing, in which case the document opts out of indexing.
func Parse(data []byte) (Result, bool) {
	title, ok := extractTitle(data)
	if !ok {
		return Result{}, false
	}
	tags, ok := extractTags(data)
	if !ok {
		return Result{}, false
	}
	return Result{Title: title, Tags: tags}, true
}

// extractTitle returns the trimmed text following the first line-leading
// "title:". A title that is empty after trimming counts as missing.
func extractTitle(data []byte) (string, bool) {
	m := titleRe.FindSubmatch(data)
	if m == nil {
		return "", false
	}
	title := strings.TrimSpace(string(m[1]))
	if title == "" {
		return "", false
	}
	return title, true
}

// extractTags splits the bracket interior of the first "tags: [...]" line on
// commas, trimming surrounding whitespace and discarding empty tokens. An
// empty bracket list is valid and yields zero tags.
func extractTags(data []byte) ([]string, bool) {
	m := tagsRe.FindSubmatch(data)
	if m == nil {
		return nil, false
	}
	var tags []string
	for _, raw := range strings.Split(string(m[1]), ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags, true
}
