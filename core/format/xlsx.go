package format

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/klemenp/plaintab/core"
)

// xlsxSheet is the sheet every workbook is written to.
const xlsxSheet = "Sheet1"

var _ Formatter = (*XLSX)(nil)

// XLSX renders the table as a single-sheet Excel workbook. Every cell is
// written as text.
type XLSX struct{}

func NewXLSX() *XLSX {
	return &XLSX{}
}

func (xf *XLSX) Name() string {
	return "xlsx"
}

func (xf *XLSX) Format(table *core.Table, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	line := 1
	if header := table.Header(); len(header) > 0 {
		if err := setSheetRow(f, line, header); err != nil {
			return err
		}
		line++
	}

	for _, row := range table.Rows() {
		if err := setSheetRow(f, line, row); err != nil {
			return err
		}
		line++
	}

	if _, err := f.WriteTo(writer); err != nil {
		return fmt.Errorf("f.WriteTo: %w", err)
	}
	return nil
}

func setSheetRow(f *excelize.File, line int, cells []string) error {
	start, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
	}

	values := make([]any, len(cells))
	for i, cell := range cells {
		values[i] = cell
	}

	if err := f.SetSheetRow(xlsxSheet, start, &values); err != nil {
		return fmt.Errorf("f.SetSheetRow: %w", err)
	}
	return nil
}
