package grid

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/markup/pkg/errors"
	"github.com/arthur-debert/markup/pkg/markup"
	"github.com/charmbracelet/x/ansi"
)

const tabWidth = 4

// collect turns nodes into an inline flow of items.
func (r *renderer) collect(nodes []markup.Node, ctx context) ([]item, error) {
	var items []item
	for _, n := range nodes {
		switch n := n.(type) {
		case *markup.TextNode:
			items = append(items, textItems(n.Value, ctx)...)
		case *markup.TagNode:
			sub, err := r.descend(ctx, n)
			if err != nil {
				return nil, err
			}
			tagItems, err := r.collectTag(n, sub)
			if err != nil {
				return nil, err
			}
			items = append(items, tagItems...)
		}
	}
	return items, nil
}

// textItems splits text into words, spaces and hard breaks. Under nobr each
// source line is a single unbreakable word.
func textItems(text string, ctx context) []item {
	var items []item
	for i, part := range strings.Split(cleanText(text), "\n") {
		if i > 0 {
			items = append(items, item{kind: itemBreak})
		}
		if part == "" {
			continue
		}
		if ctx.nobr {
			items = append(items, item{kind: itemWord, seg: newSegment(part, ctx.style), nobr: true})
			continue
		}
		for part != "" {
			if part[0] == ' ' {
				n := len(part) - len(strings.TrimLeft(part, " "))
				items = append(items, item{kind: itemSpace, seg: newSegment(part[:n], ctx.style)})
				part = part[n:]
				continue
			}
			n := strings.IndexByte(part, ' ')
			if n < 0 {
				n = len(part)
			}
			items = append(items, item{kind: itemWord, seg: newSegment(part[:n], ctx.style)})
			part = part[n:]
		}
	}
	return items
}

// cleanText removes escape sequences and control characters, which have no
// display width. Tabs become tabWidth spaces and newlines are kept.
func cleanText(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	s = strings.ReplaceAll(ansi.Strip(s), "\t", strings.Repeat(" ", tabWidth))
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, s)
}

func isControl(r rune) bool {
	return r != '\n' && unicode.IsControl(r)
}

// valueItems keeps a formatted value such as "2m 30s" in one chunk, so it
// moves to the next line whole and is only split when wider than the line.
func valueItems(text string, ctx context) []item {
	items := textItems(text, ctx)
	for i := range items {
		if items[i].kind == itemSpace {
			items[i].kind = itemWord
		}
	}
	return items
}

// collectTag produces the flow for one tag. The switch covers every TagName.
func (r *renderer) collectTag(tag *markup.TagNode, ctx context) ([]item, error) {
	switch tag.Name {
	case markup.TagEmphasis, markup.TagDim, markup.TagItalic, markup.TagUnderline,
		markup.TagStrike, markup.TagInverse, markup.TagError, markup.TagSuccess,
		markup.TagWarn, markup.TagInfo, markup.TagCommand, markup.TagHighlight,
		markup.TagColor, markup.TagToken:
		st, err := r.resolve(tag)
		if err != nil {
			return nil, err
		}
		ctx.style = ctx.style.Inherit(st)
		return r.collect(tag.Children, ctx)

	case markup.TagNumber, markup.TagDuration, markup.TagFilesize, markup.TagGrammarNumber:
		text, err := r.formatContent(tag)
		if err != nil {
			return nil, err
		}
		return valueItems(text, ctx), nil

	case markup.TagHyperlink, markup.TagFilelink:
		st, err := r.resolve(tag)
		if err != nil {
			return nil, err
		}
		ctx.style = ctx.style.Inherit(st)
		if len(tag.Children) > 0 {
			return r.collect(tag.Children, ctx)
		}
		return textItems(r.linkLabel(tag), ctx), nil

	case markup.TagNobr:
		ctx.nobr = true
		return r.collect(tag.Children, ctx)

	case markup.TagPad:
		return r.pad(tag, ctx)

	case markup.TagHr:
		return r.hr(tag, ctx)

	case markup.TagTable:
		return r.table(tag, ctx)

	case markup.TagOl, markup.TagUl:
		return r.list(tag, ctx)

	case markup.TagTr, markup.TagTd:
		r.issue(tag.Pos(), errors.ErrStructure, "<%s> outside of <table>", tag.Name)
		return r.flatten(tag, ctx), nil

	case markup.TagLi:
		r.issue(tag.Pos(), errors.ErrStructure, "<li> outside of <ol> or <ul>")
		return r.flatten(tag, ctx), nil

	default:
		return nil, errors.At(tag.Pos(), errors.ErrInternal, "unhandled tag %s", tag.Name)
	}
}

func blockItems(lines []line) []item {
	if lines == nil {
		return nil
	}
	return []item{{kind: itemBlock, lines: lines}}
}

// flatten degrades a malformed subtree to its plain text.
func (r *renderer) flatten(tag *markup.TagNode, ctx context) []item {
	return textItems(markup.PlainText(tag.Children), ctx)
}

// pad renders children padded to the width attribute, capped at the line
// width. Without children it is a spacer of that width.
func (r *renderer) pad(tag *markup.TagNode, ctx context) ([]item, error) {
	width, err := intAttr(tag, "width", 1)
	if err != nil {
		return nil, err
	}
	if width < 0 {
		return nil, errors.At(tag.Pos(), errors.ErrInvalidAttribute, "pad width must not be negative, got %d", width).
			WithDetail("attribute", "width")
	}

	if width > ctx.width {
		width = ctx.width
	}
	if width > r.opts.Columns {
		width = r.opts.Columns
	}

	items, err := r.collect(tag.Children, ctx)
	if err != nil {
		return nil, err
	}
	content := 0
	for _, it := range items {
		if it.kind == itemWord || it.kind == itemSpace {
			content += it.seg.width
		}
	}
	if content >= width {
		return items, nil
	}

	filler := item{kind: itemWord, seg: spaces(width - content), nobr: ctx.nobr}
	if tag.Attributes.GetOr("align", "left") == "right" {
		return append([]item{filler}, items...), nil
	}
	return append(items, filler), nil
}
