package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klemenp/plaintab/core"
)

var _ Formatter = (*JSON)(nil)

// JSON renders every row as an object keyed by the header. Cells past the
// header length are keyed as <unknown-field-N>.
type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

func (jf *JSON) Name() string {
	return "json"
}

func (jf *JSON) records(header core.Header, rows []core.Row) []map[string]string {
	var data []map[string]string

	for _, row := range rows {
		record := make(map[string]string, len(row))
		for i, val := range row {
			var h string
			if i < len(header) {
				h = header[i]
			} else {
				h = fmt.Sprintf("<unknown-field-%d>", i)
			}
			record[h] = val
		}
		data = append(data, record)
	}

	return data
}

func (jf *JSON) Format(table *core.Table, writer io.Writer) error {
	data := jf.records(table.Header(), table.Rows())

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if _, err := writer.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("writer.Write: %w", err)
	}
	return nil
}
