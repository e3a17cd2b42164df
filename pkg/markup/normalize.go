package markup

import (
	"github.com/arthur-debert/markup/pkg/formatting"
)

// NormalizeOptions carries the filename callbacks and position policy the
// renderer would apply to file links.
type NormalizeOptions struct {
	// NormalizeFilename rewrites filelink targets; nil is identity.
	NormalizeFilename formatting.Normalizer
	// HumanizeFilename labels childless filelinks; nil leaves them childless.
	HumanizeFilename formatting.Humanizer
	// StripPositions drops line and column attributes from filelinks.
	StripPositions bool
}

// Normalize returns a copy of nodes with the filelink policy applied, so the
// result renders like the input would under the same options. nodes is not
// modified.
func Normalize(nodes []Node, opts NormalizeOptions) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		switch n := n.(type) {
		case *TextNode:
			text := *n
			out[i] = &text
		case *TagNode:
			out[i] = normalizeTag(n, opts)
		default:
			out[i] = n
		}
	}
	return out
}

func normalizeTag(tag *TagNode, opts NormalizeOptions) *TagNode {
	out := &TagNode{
		Name:       tag.Name,
		Attributes: make(Attributes, len(tag.Attributes)),
		Children:   Normalize(tag.Children, opts),
		Start:      tag.Start,
	}
	for name, value := range tag.Attributes {
		out.Attributes[name] = value
	}
	if tag.Name != TagFilelink {
		return out
	}

	if target, ok := out.Attributes.Get("target"); ok {
		normalized := formatting.NormalizeFilename(target, opts.NormalizeFilename)
		out.Attributes["target"] = &normalized
		if len(out.Children) == 0 && opts.HumanizeFilename != nil {
			if label, ok := opts.HumanizeFilename(normalized); ok {
				out.Children = []Node{&TextNode{Value: label + positionSuffix(out, opts), Start: tag.Start}}
			}
		}
	}
	if opts.StripPositions {
		delete(out.Attributes, "line")
		delete(out.Attributes, "column")
	}
	return out
}

// positionSuffix is the ":line[:column]" a generated filelink label carries
func positionSuffix(tag *TagNode, opts NormalizeOptions) string {
	if opts.StripPositions {
		return ""
	}
	line, ok := tag.Attributes.Get("line")
	if !ok || line == "" {
		return ""
	}
	suffix := ":" + line
	if column, ok := tag.Attributes.Get("column"); ok && column != "" {
		suffix += ":" + column
	}
	return suffix
}
