package grid

import (
	"strconv"

	"github.com/arthur-debert/markup/pkg/errors"
	"github.com/arthur-debert/markup/pkg/markup"
)

const bullet = "- "

// list lays out li children behind a marker with a hanging indent. Ordered
// markers are right aligned so item text lines up.
func (r *renderer) list(tag *markup.TagNode, ctx context) ([]item, error) {
	lis, bad := childTags(tag, markup.TagLi)
	if bad != nil {
		r.issue(bad.Pos(), errors.ErrStructure, "<%s> may only contain <li>, found %s", tag.Name, describeNode(bad))
		return r.flatten(tag, ctx), nil
	}
	if len(lis) == 0 {
		return nil, nil
	}

	markers, err := listMarkers(tag, len(lis))
	if err != nil {
		return nil, err
	}
	markerWidth := 0
	for _, m := range markers {
		if len(m) > markerWidth {
			markerWidth = len(m)
		}
	}

	var out []line
	for i, li := range lis {
		liCtx, err := r.descend(ctx, li)
		if err != nil {
			return nil, err
		}
		if liCtx.width < unbounded {
			liCtx.width -= markerWidth
			if liCtx.width < 1 {
				liCtx.width = 1
			}
		}
		lines, err := r.layout(li.Children, liCtx)
		if err != nil {
			return nil, err
		}
		marker := spaces(markerWidth - len(markers[i]))
		marker.text += markers[i]
		marker.width = markerWidth
		out = append(out, hanging(marker, lines)...)
	}
	return blockItems(out), nil
}

// listMarkers returns the marker text of each of n items.
func listMarkers(tag *markup.TagNode, n int) ([]string, error) {
	markers := make([]string, n)
	if tag.Name == markup.TagUl {
		for i := range markers {
			markers[i] = bullet
		}
		return markers, nil
	}

	reversed := tag.Attributes.Has("reversed")
	first := 1
	if reversed {
		first = n
	}
	start, err := intAttr(tag, "start", first)
	if err != nil {
		return nil, err
	}
	for i := range markers {
		num := start + i
		if reversed {
			num = start - i
		}
		markers[i] = strconv.Itoa(num) + ". "
	}
	return markers, nil
}
