package output_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klemenp/plaintab/core"
	"github.com/klemenp/plaintab/core/format"
	"github.com/klemenp/plaintab/output"
)

func TestFileWrite(t *testing.T) {
	r := require.New(t)

	table := core.New()
	table.PushHeader("a")
	table.PushHeader("b")
	table.PushRow([]string{"1", "2"})

	var logged bytes.Buffer
	logger := output.NewStdLogger(log.New(&logged, "", 0))

	path := filepath.Join(t.TempDir(), "out.csv")
	sink := output.NewFile(path, format.NewText(), logger)
	r.NoError(sink.Write(table))

	contents, err := os.ReadFile(path)
	r.NoError(err)
	r.Equal("a,b\n1,2\n", string(contents))

	r.Contains(logged.String(), "successfully saved text to "+path)
}

func TestFileWrite_BadPath(t *testing.T) {
	r := require.New(t)

	sink := output.NewFile(
		filepath.Join(t.TempDir(), "missing", "out.csv"),
		format.NewText(),
		output.NewStdLogger(nil),
	)

	r.Error(sink.Write(core.New()))
}
