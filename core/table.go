// Package core implements an in-memory delimited-text table: an owned header
// and an owned set of rows, with typed access and in-place mutation.
//
// The text format is deliberately plain: fields are split and joined on a
// literal comma with no quoting or escaping, so a comma inside cell content is
// always a field boundary. Callers needing CSV-dialect compatibility (quoted
// fields, embedded newlines) should not use this package.
package core

type (
	// Row is an ordered sequence of cell strings. Rows are independent of the
	// header and of each other: lengths may differ.
	Row []string

	// Header is the ordered sequence of column names. A name's position is
	// the column's index.
	Header []string
)

// Table is the in-memory container of a header and rows. It is a plain
// single-owner value: no internal locking, callers wanting concurrent access
// must serialize it themselves.
//
// Mutators come in two bounds-checking modes, documented per method:
//   - checked: out-of-range positions are a silent no-op
//   - unchecked: out-of-range positions panic
type Table struct {
	header Header
	rows   []Row
}

// New returns an empty table with no header and no rows.
func New() *Table {
	return &Table{}
}

// Header returns the current header in order. The returned slice is a view
// into the table and must not be modified by the caller.
func (t *Table) Header() Header {
	return t.header
}

// HeaderPosition returns the index of the first header equal to name.
// Duplicate names resolve to the first occurrence.
func (t *Table) HeaderPosition(name string) (int, bool) {
	for i, h := range t.header {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// Rows returns all rows in insertion order. The returned slice is a view
// into the table and must not be modified by the caller.
func (t *Table) Rows() []Row {
	return t.rows
}

// Column resolves name through HeaderPosition and returns one cell per row.
// Rows too short to reach the column contribute an empty string.
func (t *Table) Column(name string) ([]string, bool) {
	index, ok := t.HeaderPosition(name)
	if !ok {
		return nil, false
	}

	cells := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		if index < len(row) {
			cells = append(cells, row[index])
		} else {
			cells = append(cells, "")
		}
	}

	return cells, true
}

// Row returns the row at position.
func (t *Table) Row(position int) (Row, bool) {
	if position < 0 || position >= len(t.rows) {
		return nil, false
	}
	return t.rows[position], true
}

// Cell returns the cell at (row, col).
func (t *Table) Cell(row, col int) (string, bool) {
	r, ok := t.Row(row)
	if !ok {
		return "", false
	}
	if col < 0 || col >= len(r) {
		return "", false
	}
	return r[col], true
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}
