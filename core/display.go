package core

import (
	"fmt"
	"strings"
)

var _ fmt.Stringer = (*Table)(nil)

// String renders the table in a bordered layout for terminal or log output:
// a dash border sized to each header, the framed header line, a matching
// bottom border and one framed line per row. The rendering is decorative and
// is not parseable back into a table.
func (t *Table) String() string {
	var b strings.Builder

	border := func() {
		for _, head := range t.header {
			fmt.Fprintf(&b, "- %s -", strings.Repeat("-", len(head)))
		}
		b.WriteString("\n")
	}

	border()

	for _, head := range t.header {
		fmt.Fprintf(&b, "- %s -", head)
	}
	b.WriteString("\n")

	border()

	for _, row := range t.rows {
		for _, cell := range row {
			fmt.Fprintf(&b, "- %s -", cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}
