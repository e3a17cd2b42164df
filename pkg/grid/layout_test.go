package grid

import (
	"strings"
	"testing"

	"github.com/arthur-debert/markup/pkg/markup"
	"github.com/arthur-debert/markup/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineMergesRunsOfOneStyle(t *testing.T) {
	red := style.Style{Foreground: style.ColorRed}
	var l line
	l.add(newSegment("a", red))
	l.add(newSegment("b", red))
	l.add(newSegment("", style.Style{}))
	l.add(newSegment("c", style.Style{}))

	assert.Len(t, l.segs, 2)
	assert.Equal(t, "ab", l.segs[0].text)
	assert.Equal(t, 3, l.width)
}

func TestShrinkColumns(t *testing.T) {
	widths := []int{10, 4, 10}
	shrinkColumns(widths, []int{1, 1, 8}, 15)
	assert.Equal(t, []int{3, 4, 8}, widths)

	widths = []int{6, 6}
	shrinkColumns(widths, []int{6, 6}, 5)
	assert.Equal(t, []int{6, 6}, widths, "unbreakable content never shrinks")
}

func TestWrapDropsSpacesAroundBlocks(t *testing.T) {
	block := item{kind: itemBlock, lines: []line{{segs: []segment{spaces(2)}, width: 2}}}
	items := []item{
		{kind: itemWord, seg: newSegment("a", style.Style{})},
		{kind: itemSpace, seg: spaces(1)},
		block,
		{kind: itemSpace, seg: spaces(1)},
		{kind: itemWord, seg: newSegment("b", style.Style{})},
	}
	lines := wrap(items, 10)
	assert.Len(t, lines, 3)
	assert.Equal(t, 1, lines[0].width)
	assert.Equal(t, 1, lines[2].width)
}

func TestNestedTableCellsLaidOutOncePerWidth(t *testing.T) {
	const depth = 20
	input := strings.Repeat("<table><tr><td>", depth) + "x" + strings.Repeat("</td></tr></table>", depth)
	nodes, err := markup.Parse(input)
	require.NoError(t, err)

	r := newRenderer(Options{Format: FormatNone, Columns: 40})
	lines, err := r.layout(nodes, context{width: r.opts.Columns})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].width)

	// each level sees at most two more widths than the level above it
	assert.LessOrEqual(t, len(r.cells), depth*(depth+2))
}
