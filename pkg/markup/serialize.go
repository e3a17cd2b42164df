package markup

import (
	"sort"
	"strings"
)

// Serialize writes nodes back as markup. Attributes are sorted by name and
// childless tags are self-closed. Parsing the output yields an equal tree as
// long as the input has no empty or adjacent text nodes.
func Serialize(nodes []Node) string {
	var sb strings.Builder
	serializeNodes(&sb, nodes)
	return sb.String()
}

func serializeNodes(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *TextNode:
			sb.WriteString(Escape(n.Value))
		case *TagNode:
			serializeTag(sb, n)
		}
	}
}

func serializeTag(sb *strings.Builder, tag *TagNode) {
	sb.WriteByte('<')
	sb.WriteString(tag.Name.String())

	names := make([]string, 0, len(tag.Attributes))
	for name := range tag.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteByte(' ')
		sb.WriteString(name)
		if v := tag.Attributes[name]; v != nil {
			sb.WriteString(`="`)
			sb.WriteString(EscapeAttribute(*v))
			sb.WriteByte('"')
		}
	}

	if len(tag.Children) == 0 {
		sb.WriteString(" />")
		return
	}
	sb.WriteByte('>')
	serializeNodes(sb, tag.Children)
	sb.WriteString("</")
	sb.WriteString(tag.Name.String())
	sb.WriteByte('>')
}
