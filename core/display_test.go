package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	r := require.New(t)

	table := newTestTable(
		[]string{"a", "bb"},
		[][]string{{"1", "22"}, {"333"}},
	)

	expected := "- - -- -- -\n" +
		"- a -- bb -\n" +
		"- - -- -- -\n" +
		"- 1 -- 22 -\n" +
		"- 333 -\n"

	r.Equal(expected, table.String())
}

func TestString_EmptyTable(t *testing.T) {
	r := require.New(t)

	table := newTestTable(nil, nil)
	r.Equal("\n\n\n", table.String())
}
