package core

import "fmt"

// PushHeader appends name to the end of the header. Duplicate names are
// allowed; HeaderPosition resolves to the first occurrence.
func (t *Table) PushHeader(name string) {
	t.header = append(t.header, name)
}

// SetHeader replaces the header at position with name.
// Checked: out-of-range positions are a silent no-op.
func (t *Table) SetHeader(position int, name string) {
	if position < 0 || position >= len(t.header) {
		return
	}
	t.header[position] = name
}

// InsertHeader inserts name at position, shifting subsequent headers right.
// Unchecked: panics if position is negative or greater than the header length.
func (t *Table) InsertHeader(position int, name string) {
	t.header = insert(t.header, position, name, "header")
}

// DeleteHeader removes and returns the header at position.
// Unchecked: panics if position is out of range.
func (t *Table) DeleteHeader(position int) string {
	var name string
	t.header, name = remove(t.header, position, "header")
	return name
}

// PopHeader removes and returns the last header.
// Checked: returns false on an empty header.
func (t *Table) PopHeader() (string, bool) {
	if len(t.header) == 0 {
		return "", false
	}
	name := t.header[len(t.header)-1]
	t.header = t.header[:len(t.header)-1]
	return name, true
}

// PushCell appends value as a new trailing cell of the row at row. Other rows
// are untouched, so row lengths may diverge from the header length.
// Checked: an out-of-range row is a silent no-op.
func (t *Table) PushCell(row int, value string) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	t.rows[row] = append(t.rows[row], value)
}

// SetCell replaces the cell at (row, col).
// Checked: out-of-range indexes are a silent no-op.
func (t *Table) SetCell(row, col int, value string) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	if col < 0 || col >= len(t.rows[row]) {
		return
	}
	t.rows[row][col] = value
}

// InsertCell inserts value into the row at row at position, shifting
// subsequent cells right.
// Unchecked on both indexes: panics if row is out of range or position is
// greater than the row length.
func (t *Table) InsertCell(row, position int, value string) {
	if row < 0 || row >= len(t.rows) {
		panic(fmt.Sprintf("core: row index %d out of range with length %d", row, len(t.rows)))
	}
	t.rows[row] = insert(t.rows[row], position, value, "cell")
}

// DeleteColumn removes the header at position and, best effort, the cell at
// position from every row. Rows too short to have a cell there are skipped.
// Unchecked on the header: panics if position is out of the header's range.
func (t *Table) DeleteColumn(position int) {
	t.DeleteHeader(position)

	for i, row := range t.rows {
		if position >= len(row) {
			continue
		}
		t.rows[i], _ = remove(row, position, "cell")
	}
}

// PopColumn removes the last header and the last cell of every row.
// Checked: empty header and already-empty rows are skipped silently.
func (t *Table) PopColumn() {
	t.PopHeader()

	for i, row := range t.rows {
		if len(row) == 0 {
			continue
		}
		t.rows[i] = row[:len(row)-1]
	}
}

// PushRow appends a new row built from a copy of values.
func (t *Table) PushRow(values []string) {
	t.rows = append(t.rows, cloneRow(values))
}

// SetRow replaces the row at position with a copy of values.
// Checked: an out-of-range position is a silent no-op.
func (t *Table) SetRow(position int, values []string) {
	if position < 0 || position >= len(t.rows) {
		return
	}
	t.rows[position] = cloneRow(values)
}

// InsertRow inserts a new row built from a copy of values at position,
// shifting subsequent rows right.
// Unchecked: panics if position is negative or greater than the row count.
func (t *Table) InsertRow(position int, values []string) {
	t.rows = insert(t.rows, position, cloneRow(values), "row")
}

// DeleteRow removes and returns the row at position, or false if out of
// range.
func (t *Table) DeleteRow(position int) (Row, bool) {
	if position < 0 || position >= len(t.rows) {
		return nil, false
	}
	var row Row
	t.rows, row = remove(t.rows, position, "row")
	return row, true
}

// PopRow removes and returns the last row.
// Checked: returns false on a table with no rows.
func (t *Table) PopRow() (Row, bool) {
	if len(t.rows) == 0 {
		return nil, false
	}
	row := t.rows[len(t.rows)-1]
	t.rows = t.rows[:len(t.rows)-1]
	return row, true
}

// cloneRow copies caller-provided values into owned row storage, so no
// aliasing of the input slice is retained past the call.
func cloneRow(values []string) Row {
	row := make(Row, len(values))
	copy(row, values)
	return row
}

func insert[E any](s []E, position int, value E, kind string) []E {
	if position < 0 || position > len(s) {
		panic(fmt.Sprintf("core: %s insert position %d out of range with length %d", kind, position, len(s)))
	}

	s = append(s, value)
	copy(s[position+1:], s[position:])
	s[position] = value
	return s
}

func remove[E any](s []E, position int, kind string) ([]E, E) {
	if position < 0 || position >= len(s) {
		panic(fmt.Sprintf("core: %s position %d out of range with length %d", kind, position, len(s)))
	}

	value := s[position]
	s = append(s[:position], s[position+1:]...)
	return s, value
}
