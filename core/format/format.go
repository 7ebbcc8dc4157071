// Package format provides renditions of a core.Table for export and display.
package format

import (
	"fmt"
	"io"

	"github.com/klemenp/plaintab/core"
)

// Formatter renders a table to a destination. Formatters never modify the
// table.
type Formatter interface {
	Name() string
	Format(table *core.Table, writer io.Writer) error
}

// Lookup returns the formatter registered under name.
func Lookup(name string) (Formatter, error) {
	switch name {
	case "text":
		return NewText(), nil
	case "json":
		return NewJSON(), nil
	case "grid":
		return NewGrid(), nil
	case "xlsx":
		return NewXLSX(), nil
	}

	return nil, fmt.Errorf("unknown format: %q", name)
}
