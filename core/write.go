package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write serializes the table as delimited text to w. The header line is
// emitted only when the header is non-empty; every row is emitted as-is,
// with no padding or truncation to the header length.
func (t *Table) Write(w io.Writer) error {
	buf := bufio.NewWriter(w)

	if len(t.header) > 0 {
		if _, err := buf.WriteString(strings.Join(t.header, Separator) + "\n"); err != nil {
			return fmt.Errorf("buf.WriteString: %w", err)
		}
	}

	for _, row := range t.rows {
		if _, err := buf.WriteString(strings.Join(row, Separator) + "\n"); err != nil {
			return fmt.Errorf("buf.WriteString: %w", err)
		}
	}

	return buf.Flush()
}

// WriteFile creates path and serializes the table into it.
func (t *Table) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := t.Write(file); err != nil {
		file.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	return file.Close()
}
