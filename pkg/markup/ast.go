package markup

import "strings"

// Node is either a *TextNode or a *TagNode
type Node interface {
	Pos() Position
	isNode()
}

// TextNode is a run of literal text
type TextNode struct {
	Value string
	Start Position
}

func (n *TextNode) Pos() Position { return n.Start }
func (*TextNode) isNode()         {}

// TagNode is an element with attributes and owned children
type TagNode struct {
	Name       TagName
	Attributes Attributes
	Children   []Node
	Start      Position
}

func (n *TagNode) Pos() Position { return n.Start }
func (*TagNode) isNode()         {}

// Attributes maps attribute names to values. A nil value marks a flag
// attribute written without "=value".
type Attributes map[string]*string

// Get returns the value of an attribute written with a value
func (a Attributes) Get(name string) (string, bool) {
	v, ok := a[name]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// GetOr returns the attribute value or fallback when absent or a flag
func (a Attributes) GetOr(name, fallback string) string {
	if v, ok := a.Get(name); ok {
		return v
	}
	return fallback
}

// Has reports whether the attribute is present, with or without a value
func (a Attributes) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Text creates a text node
func Text(value string) *TextNode {
	return &TextNode{Value: value}
}

// Tag creates a tag node; attrs may be nil
func Tag(name TagName, attrs Attributes, children ...Node) *TagNode {
	if attrs == nil {
		attrs = Attributes{}
	}
	return &TagNode{Name: name, Attributes: attrs, Children: children}
}

// Attrs builds Attributes from name/value pairs
func Attrs(pairs ...string) Attributes {
	a := make(Attributes, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		v := pairs[i+1]
		a[pairs[i]] = &v
	}
	return a
}

// Flag adds a value-less attribute and returns the receiver
func (a Attributes) Flag(name string) Attributes {
	a[name] = nil
	return a
}

// PlainText concatenates the text content of nodes in document order,
// ignoring all tags.
func PlainText(nodes []Node) string {
	var sb strings.Builder
	writePlainText(&sb, nodes)
	return sb.String()
}

func writePlainText(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *TextNode:
			sb.WriteString(n.Value)
		case *TagNode:
			writePlainText(sb, n.Children)
		}
	}
}
