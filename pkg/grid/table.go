package grid

import (
	"github.com/arthur-debert/markup/pkg/errors"
	"github.com/arthur-debert/markup/pkg/markup"
)

const columnGap = 1

// cellKey identifies one layout of a table cell
type cellKey struct {
	tag *markup.TagNode
	ctx context
}

type cell struct {
	tag   *markup.TagNode
	ctx   context
	right bool
	lines []line
}

// table lays out rows of cells in aligned columns. Column widths start at the
// widest unwrapped cell and are shrunk widest-first until the row fits the
// budget. Malformed tables are reported and flattened to their text.
func (r *renderer) table(tag *markup.TagNode, ctx context) ([]item, error) {
	rows, err := r.tableCells(tag, ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return r.flatten(tag, ctx), nil
	}

	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	if columns == 0 {
		return nil, nil
	}

	// measure
	widths := make([]int, columns)
	mins := make([]int, columns)
	shrink := !ctx.nobr && ctx.width < unbounded
	for _, row := range rows {
		for c, cl := range row {
			lines, err := r.layoutCell(cl.tag, cl.ctx.measuring())
			if err != nil {
				return nil, err
			}
			if w := maxWidth(lines); w > widths[c] {
				widths[c] = w
			}
			if !shrink {
				continue
			}
			narrow := cl.ctx
			narrow.width = 1
			if lines, err = r.layoutCell(cl.tag, narrow); err != nil {
				return nil, err
			}
			if w := maxWidth(lines); w > mins[c] {
				mins[c] = w
			}
		}
	}
	if shrink {
		shrinkColumns(widths, mins, ctx.width-columnGap*(columns-1))
	}

	// emit
	for _, row := range rows {
		for c, cl := range row {
			cellCtx := cl.ctx
			cellCtx.width = widths[c]
			lines, err := r.layoutCell(cl.tag, cellCtx)
			if err != nil {
				return nil, err
			}
			cl.lines = lines
			// nobr content may not shrink
			if w := maxWidth(lines); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var out []line
	for _, row := range rows {
		height := 1
		for _, cl := range row {
			if len(cl.lines) > height {
				height = len(cl.lines)
			}
		}
		for i := 0; i < height; i++ {
			var l line
			for c := 0; c < columns; c++ {
				if c > 0 {
					l.add(spaces(columnGap))
				}
				var content line
				right := false
				if c < len(row) {
					right = row[c].right
					if i < len(row[c].lines) {
						content = row[c].lines[i]
					}
				}
				fill := spaces(widths[c] - content.width)
				if right {
					l.add(fill)
					l.addLine(content)
				} else {
					l.addLine(content)
					l.add(fill)
				}
			}
			out = append(out, l)
		}
	}
	return blockItems(out), nil
}

// layoutCell lays out a cell's children, once per distinct context in a
// render. A table lays its cells out at up to three widths, and a nested
// table is laid out again for every width of its enclosing cell.
func (r *renderer) layoutCell(td *markup.TagNode, ctx context) ([]line, error) {
	key := cellKey{tag: td, ctx: ctx}
	if lines, ok := r.cells[key]; ok {
		return lines, nil
	}
	lines, err := r.layout(td.Children, ctx)
	if err != nil {
		return nil, err
	}
	r.cells[key] = lines
	return lines, nil
}

// tableCells validates the table structure. It returns nil rows after
// recording an issue when the table is malformed.
func (r *renderer) tableCells(tag *markup.TagNode, ctx context) ([][]*cell, error) {
	trs, bad := childTags(tag, markup.TagTr)
	if bad != nil {
		r.issue(bad.Pos(), errors.ErrStructure, "<table> may only contain <tr>, found %s", describeNode(bad))
		return nil, nil
	}

	rows := make([][]*cell, 0, len(trs))
	for _, tr := range trs {
		trCtx, err := r.descend(ctx, tr)
		if err != nil {
			return nil, err
		}
		tds, bad := childTags(tr, markup.TagTd)
		if bad != nil {
			r.issue(bad.Pos(), errors.ErrStructure, "<tr> may only contain <td>, found %s", describeNode(bad))
			return nil, nil
		}
		row := make([]*cell, len(tds))
		for i, td := range tds {
			tdCtx, err := r.descend(trCtx, td)
			if err != nil {
				return nil, err
			}
			row[i] = &cell{tag: td, ctx: tdCtx, right: td.Attributes.GetOr("align", "left") == "right"}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// shrinkColumns narrows the widest column one cell at a time until the sum
// fits budget or no column is wider than its unbreakable content.
func shrinkColumns(widths, mins []int, budget int) {
	total := 0
	for _, w := range widths {
		total += w
	}
	for total > budget {
		widest := -1
		for i, w := range widths {
			if w > mins[i] && w > 1 && (widest < 0 || w > widths[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			return
		}
		widths[widest]--
		total--
	}
}
