package grid

import (
	"strings"

	"github.com/arthur-debert/markup/pkg/markup"
	"github.com/mattn/go-runewidth"
)

const ruleChar = "━"

// hr draws a rule across the current width. A labelled rule starts with two
// rule cells, then the label, then rule cells to the end of the line. Label
// lines after the first follow the rule unindented.
func (r *renderer) hr(tag *markup.TagNode, ctx context) ([]item, error) {
	ruleWidth := runewidth.StringWidth(ruleChar)
	rule := func(cells int) segment {
		if cells < 0 {
			cells = 0
		}
		return newSegment(strings.Repeat(ruleChar, cells), ctx.style)
	}

	if len(tag.Children) == 0 {
		cells := 1
		if ctx.width < unbounded {
			cells = ctx.width / ruleWidth
		}
		var l line
		l.add(rule(cells))
		return blockItems([]line{l}), nil
	}

	// two rule cells and a space on each side of the label, and at least
	// one rule cell after it
	labelCtx := ctx
	if ctx.width < unbounded {
		labelCtx.width = ctx.width - 2*ruleWidth - 2 - ruleWidth
		if labelCtx.width < 1 {
			labelCtx.width = 1
		}
	}
	label, err := r.layout(tag.Children, labelCtx)
	if err != nil {
		return nil, err
	}

	var first line
	first.add(rule(2))
	first.add(segment{text: " ", style: ctx.style, width: 1})
	if len(label) > 0 {
		first.addLine(label[0])
	}
	first.add(segment{text: " ", style: ctx.style, width: 1})
	if ctx.width < unbounded {
		first.add(rule((ctx.width - first.width) / ruleWidth))
	}

	lines := []line{first}
	if len(label) > 1 {
		lines = append(lines, label[1:]...)
	}
	return blockItems(lines), nil
}

// isBlank reports whether n is whitespace-only text, which containers
// ignore between their children.
func isBlank(n markup.Node) bool {
	text, ok := n.(*markup.TextNode)
	return ok && strings.TrimSpace(text.Value) == ""
}

// childTags returns the tag children of container, or the first child that
// is not a want tag.
func childTags(container *markup.TagNode, want ...markup.TagName) ([]*markup.TagNode, markup.Node) {
	var tags []*markup.TagNode
	for _, child := range container.Children {
		if isBlank(child) {
			continue
		}
		tag, ok := child.(*markup.TagNode)
		if !ok || !tagIn(tag.Name, want) {
			return nil, child
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func tagIn(name markup.TagName, names []markup.TagName) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func describeNode(n markup.Node) string {
	if tag, ok := n.(*markup.TagNode); ok {
		return "<" + tag.Name.String() + ">"
	}
	return "text"
}

// hanging prefixes the first line with marker and indents the rest by its width.
func hanging(marker segment, lines []line) []line {
	if len(lines) == 0 {
		lines = []line{{}}
	}
	out := make([]line, len(lines))
	for i, l := range lines {
		var prefixed line
		if i == 0 {
			prefixed.add(marker)
		} else {
			prefixed.add(spaces(marker.width))
		}
		prefixed.addLine(l)
		out[i] = prefixed
	}
	return out
}
