/*
Package grid lays out parsed markup into fixed-width lines and encodes them
for a target format.

Rendering happens in two passes. The first measures intrinsic widths (cell
content laid out without wrapping) so tables can size their columns; the
second wraps inline text greedily at spaces to the column budget, pads table
cells to their column width and indents list items under their markers.

Styles are resolved per render and passed down the tree by value. Colors and
token classes from the innermost tag win; emphasis flags accumulate.

	g, err := grid.RenderString(`<error>build failed</error> in <duration>1520</duration>`, grid.Options{
		Format:  grid.FormatANSI,
		Columns: 80,
	})
	fmt.Println(g.String())

Malformed tables and lists never fail a render: they are flattened to their
text and reported in Grid.Issues. Invalid attribute values and excessive
nesting do fail it.
*/
package grid
