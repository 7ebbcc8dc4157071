package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Separator is the fixed field delimiter of the text format.
const Separator = ","

// ErrEmptyInput is returned by Parse when the source contains no usable
// lines, so no header can be extracted.
var ErrEmptyInput = errors.New("input contains no usable lines")

// Parse reads delimited text from r into a new table. Lines are split on the
// literal Separator with no quoting support, empty lines are discarded, and
// the first remaining line becomes the header. Line length is unbounded.
func Parse(r io.Reader) (*Table, error) {
	table := New()

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reader.ReadString: %w", err)
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			cells := strings.Split(line, Separator)
			if table.header == nil {
				table.header = cells
			} else {
				table.rows = append(table.rows, cells)
			}
		}

		if err == io.EOF {
			break
		}
	}

	if table.header == nil {
		return nil, ErrEmptyInput
	}

	return table, nil
}

// ParseFile opens path and parses its contents.
func ParseFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return table, nil
}
