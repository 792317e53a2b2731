package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "NAME"},
		[][]string{{"long-cell", "x"}, {"b", "yy"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "A          NAME", lines[0])
	assert.Equal(t, "─────────  ────", lines[1])
	assert.Equal(t, "long-cell  x", lines[2])
	assert.Equal(t, "b          yy", lines[3])
}

func TestRenderTable_ShortRowsArePadded(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"only"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "only", strings.TrimRight(lines[2], " "))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}
