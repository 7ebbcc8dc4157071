package format

import (
	"fmt"
	"io"

	"github.com/klemenp/plaintab/core"
)

var _ Formatter = (*Text)(nil)

// Text is the plain delimited rendition: the same comma-joined, unquoted
// output the table serializes to.
type Text struct{}

func NewText() *Text {
	return &Text{}
}

func (tf *Text) Name() string {
	return "text"
}

func (tf *Text) Format(table *core.Table, writer io.Writer) error {
	if err := table.Write(writer); err != nil {
		return fmt.Errorf("table.Write: %w", err)
	}
	return nil
}
