package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/klemenp/plaintab/core"
	"github.com/klemenp/plaintab/core/format"
)

func newTestTable(header []string, rows [][]string) *core.Table {
	table := core.New()
	for _, h := range header {
		table.PushHeader(h)
	}
	for _, row := range rows {
		table.PushRow(row)
	}
	return table
}

func TestLookup(t *testing.T) {
	r := require.New(t)

	for _, name := range []string{"text", "json", "grid", "xlsx"} {
		f, err := format.Lookup(name)
		r.NoError(err)
		r.Equal(name, f.Name())
	}

	_, err := format.Lookup("yaml")
	r.Error(err)
}

func TestText(t *testing.T) {
	r := require.New(t)

	table := newTestTable([]string{"a", "b"}, [][]string{{"1", "2"}})

	var buf bytes.Buffer
	r.NoError(format.NewText().Format(table, &buf))
	r.Equal("a,b\n1,2\n", buf.String())
}

func TestJSON(t *testing.T) {
	r := require.New(t)

	table := newTestTable(
		[]string{"a", "b"},
		[][]string{{"1", "2"}, {"3", "4", "5"}},
	)

	var buf bytes.Buffer
	r.NoError(format.NewJSON().Format(table, &buf))

	expected := `[
  {
    "a": "1",
    "b": "2"
  },
  {
    "<unknown-field-2>": "5",
    "a": "3",
    "b": "4"
  }
]
`
	r.Equal(expected, buf.String())
}

func TestJSON_NoRows(t *testing.T) {
	r := require.New(t)

	table := newTestTable([]string{"a"}, nil)

	var buf bytes.Buffer
	r.NoError(format.NewJSON().Format(table, &buf))
	r.Equal("null\n", buf.String())
}

func TestGrid(t *testing.T) {
	r := require.New(t)

	table := newTestTable(
		[]string{"name", "city"},
		[][]string{{"ada", "london"}, {"grace", "arlington"}},
	)

	var buf bytes.Buffer
	r.NoError(format.NewGrid().Format(table, &buf))

	render := buf.String()
	r.Contains(render, "name")
	r.Contains(render, "city")
	r.Contains(render, "ada")
	r.Contains(render, "arlington")
	r.True(strings.HasSuffix(render, "\n"))
}

func TestXLSX_RoundTrip(t *testing.T) {
	r := require.New(t)

	table := newTestTable(
		[]string{"a", "b"},
		[][]string{{"1", "2"}, {"3", "4"}},
	)

	var buf bytes.Buffer
	r.NoError(format.NewXLSX().Format(table, &buf))

	f, err := excelize.OpenReader(&buf)
	r.NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	r.NoError(err)
	r.Equal([][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}, rows)
}
