package style

// Style is the visual treatment resolved for a run of text. It is a plain
// comparable value: renderers pass it down the tree by value and compare runs
// with ==.
type Style struct {
	Foreground Color
	Background Color

	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
	Strike    bool
	Inverse   bool

	Token TokenType
	Link  string
}

// Inherit composes a child style onto s. Child colors, token class and link
// win when set; emphasis flags accumulate and are never cleared.
func (s Style) Inherit(child Style) Style {
	out := s
	if child.Foreground != ColorNone {
		out.Foreground = child.Foreground
	}
	if child.Background != ColorNone {
		out.Background = child.Background
	}
	if child.Token != TokenNone {
		out.Token = child.Token
	}
	if child.Link != "" {
		out.Link = child.Link
	}
	out.Bold = s.Bold || child.Bold
	out.Dim = s.Dim || child.Dim
	out.Italic = s.Italic || child.Italic
	out.Underline = s.Underline || child.Underline
	out.Strike = s.Strike || child.Strike
	out.Inverse = s.Inverse || child.Inverse
	return out
}

// IsPlain reports whether the style changes nothing visually and links nowhere
func (s Style) IsPlain() bool {
	return s == Style{}
}

// hasEffects reports whether the style carries any SGR attribute.
func (s Style) hasEffects() bool {
	return s.Foreground != ColorNone || s.Background != ColorNone ||
		s.Bold || s.Dim || s.Italic || s.Underline || s.Strike || s.Inverse
}
