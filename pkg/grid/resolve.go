package grid

import (
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/markup/pkg/errors"
	"github.com/arthur-debert/markup/pkg/formatting"
	"github.com/arthur-debert/markup/pkg/markup"
	"github.com/arthur-debert/markup/pkg/style"
)

// resolve computes the style a tag contributes to its subtree. Tags that only
// drive layout contribute nothing.
func (r *renderer) resolve(tag *markup.TagNode) (style.Style, error) {
	switch tag.Name {
	case markup.TagEmphasis:
		return style.Style{Bold: true}, nil
	case markup.TagDim:
		return style.Style{Dim: true}, nil
	case markup.TagItalic:
		return style.Style{Italic: true}, nil
	case markup.TagUnderline:
		return style.Style{Underline: true}, nil
	case markup.TagStrike:
		return style.Style{Strike: true}, nil
	case markup.TagInverse:
		return style.Style{Inverse: true}, nil

	case markup.TagError, markup.TagSuccess, markup.TagWarn, markup.TagInfo, markup.TagCommand:
		return r.theme.Semantic(tag.Name.String()), nil

	case markup.TagHighlight:
		i, err := intAttr(tag, "i", 0)
		if err != nil {
			return style.Style{}, err
		}
		return r.theme.Highlight(i), nil

	case markup.TagColor:
		return resolveColor(tag)

	case markup.TagToken:
		name, _ := tag.Attributes.Get("type")
		tt, ok := style.ParseTokenType(name)
		if !ok {
			if name == "" {
				r.issue(tag.Pos(), errors.ErrUnknownTokenType, "<token> has no type")
			} else {
				r.issue(tag.Pos(), errors.ErrUnknownTokenType, "unknown token type %q", name)
			}
			return style.Style{}, nil
		}
		return r.theme.Token(tt), nil

	case markup.TagHyperlink:
		target, err := requireAttr(tag, "target")
		if err != nil {
			return style.Style{}, err
		}
		st := r.theme.Semantic("hyperlink")
		st.Link = cleanText(target)
		return st, nil

	case markup.TagFilelink:
		target, err := requireAttr(tag, "target")
		if err != nil {
			return style.Style{}, err
		}
		st := r.theme.Semantic("filelink")
		st.Link = cleanText(fileURL(formatting.NormalizeFilename(target, r.opts.NormalizeFilename)))
		return st, nil

	case markup.TagNumber, markup.TagDuration, markup.TagFilesize, markup.TagGrammarNumber,
		markup.TagPad, markup.TagHr, markup.TagNobr, markup.TagTable, markup.TagTr,
		markup.TagTd, markup.TagOl, markup.TagUl, markup.TagLi:
		return style.Style{}, nil

	default:
		return style.Style{}, errors.At(tag.Pos(), errors.ErrInternal, "unhandled tag %s", tag.Name)
	}
}

func resolveColor(tag *markup.TagNode) (style.Style, error) {
	var st style.Style
	for _, attr := range []string{"fg", "bg"} {
		name, ok := tag.Attributes.Get(attr)
		if !ok {
			continue
		}
		c, ok := style.ParseColor(name)
		if !ok {
			return style.Style{}, errors.At(tag.Pos(), errors.ErrInvalidAttribute, "unknown color %q", name).
				WithDetail("attribute", attr)
		}
		if attr == "fg" {
			st.Foreground = c
		} else {
			st.Background = c
		}
	}
	return st, nil
}

// fileURL returns the link for a normalized filelink target. Targets that
// already carry a scheme are used as is.
func fileURL(normalized string) string {
	if strings.Contains(normalized, "://") {
		return normalized
	}
	return "file://" + normalized
}

// linkLabel is the generated label of a link tag without children.
func (r *renderer) linkLabel(tag *markup.TagNode) string {
	target := tag.Attributes.GetOr("target", "")
	if tag.Name != markup.TagFilelink {
		return target
	}

	label := formatting.Filename(target, r.opts.NormalizeFilename, r.opts.HumanizeFilename)
	if r.opts.StripPositions {
		return label
	}
	if line, ok := tag.Attributes.Get("line"); ok && line != "" {
		label += ":" + line
		if column, ok := tag.Attributes.Get("column"); ok && column != "" {
			label += ":" + column
		}
	}
	return label
}

// formatContent replaces the payload of a value tag with its formatted text.
// The payload is the "value" attribute when present, else the tag's text.
func (r *renderer) formatContent(tag *markup.TagNode) (string, error) {
	raw, ok := tag.Attributes.Get("value")
	if !ok {
		raw = markup.PlainText(tag.Children)
	}
	raw = strings.TrimSpace(raw)

	n, err := formatting.ParseNumber(raw)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return "", errors.At(tag.Pos(), errors.ErrInvalidAttribute, "<%s> expects a number, got %q", tag.Name, raw).
			WithDetail("value", raw)
	}

	switch tag.Name {
	case markup.TagNumber:
		return formatting.Number(n), nil
	case markup.TagDuration:
		return formatting.Duration(n, tag.Attributes.Has("approximate")), nil
	case markup.TagFilesize:
		return formatting.FileSizeFloat(n), nil
	case markup.TagGrammarNumber:
		return formatting.GrammarNumber(n,
			tag.Attributes.GetOr("singular", ""),
			tag.Attributes.GetOr("plural", ""),
			tag.Attributes.GetOr("none", "")), nil
	default:
		return "", errors.At(tag.Pos(), errors.ErrInternal, "<%s> is not a value tag", tag.Name)
	}
}

func requireAttr(tag *markup.TagNode, name string) (string, error) {
	v, ok := tag.Attributes.Get(name)
	if !ok || v == "" {
		return "", errors.At(tag.Pos(), errors.ErrInvalidAttribute, "<%s> requires a %s attribute", tag.Name, name).
			WithDetail("attribute", name)
	}
	return v, nil
}

// intAttr reads an integer attribute, returning fallback when it is absent.
func intAttr(tag *markup.TagNode, name string, fallback int) (int, error) {
	v, ok := tag.Attributes.Get(name)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, errors.At(tag.Pos(), errors.ErrInvalidAttribute, "<%s> attribute %s must be an integer, got %q", tag.Name, name, v).
			WithDetail("attribute", name)
	}
	return n, nil
}
