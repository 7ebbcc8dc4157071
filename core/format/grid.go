package format

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/klemenp/plaintab/core"
)

var _ Formatter = (*Grid)(nil)

// Grid renders the table as a light box-drawing grid for terminal display.
type Grid struct{}

func NewGrid() *Grid {
	return &Grid{}
}

func (gf *Grid) Name() string {
	return "grid"
}

func (gf *Grid) Format(tbl *core.Table, writer io.Writer) error {
	var gridHeader []any
	for _, h := range tbl.Header() {
		gridHeader = append(gridHeader, h)
	}

	var gridRows []table.Row
	for _, row := range tbl.Rows() {
		gridRow := make(table.Row, len(row))
		for i, cell := range row {
			gridRow[i] = cell
		}
		gridRows = append(gridRows, gridRow)
	}

	t := table.NewWriter()
	if len(gridHeader) > 0 {
		t.AppendHeader(table.Row(gridHeader))
	}
	t.AppendRows(gridRows)
	t.AppendSeparator()
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	render := t.Render()

	if _, err := writer.Write([]byte(render + "\n")); err != nil {
		return fmt.Errorf("writer.Write: %w", err)
	}
	return nil
}
