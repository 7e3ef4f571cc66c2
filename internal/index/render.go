package index

import (
	"bytes"
	"fmt"
)

// Render produces the tag-index Markdown document: a heading, a note naming
// the regeneration command, and one table row per tag in ascending order.
// References within a row keep their discovery order.
func (ix *Index) Render(regenCmd string) []byte {
	var buf bytes.Buffer
	buf.WriteString("# Tag Index\n\n")
	buf.WriteString("This file is generated. Do not edit it by hand; regenerate it with:\n\n")
	fmt.Fprintf(&buf, "```\n%s\n```\n\n", regenCmd)
	buf.WriteString("| Tag | Appears In |\n")
	buf.WriteString("|-----|------------|\n")
	for _, tag := range ix.Tags() {
		buf.WriteString("| `" + tag + "` | ")
		for i, ref := range ix.Refs(tag) {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "[%s](%s)", ref.Title, ref.Path)
		}
		buf.WriteString(" |\n")
	}
	return buf.Bytes()
}
