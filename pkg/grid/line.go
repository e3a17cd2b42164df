package grid

import (
	"strings"

	"github.com/arthur-debert/markup/pkg/style"
	"github.com/mattn/go-runewidth"
)

// segment is a run of text sharing one style. width is in display cells.
type segment struct {
	text  string
	style style.Style
	width int
}

func newSegment(text string, st style.Style) segment {
	return segment{text: text, style: st, width: runewidth.StringWidth(text)}
}

func spaces(n int) segment {
	if n < 0 {
		n = 0
	}
	return segment{text: strings.Repeat(" ", n), width: n}
}

// line is one output row under construction
type line struct {
	segs  []segment
	width int
}

// add appends seg, merging it into the previous segment when styles match.
func (l *line) add(seg segment) {
	if seg.text == "" {
		return
	}
	if n := len(l.segs); n > 0 && l.segs[n-1].style == seg.style {
		l.segs[n-1].text += seg.text
		l.segs[n-1].width += seg.width
	} else {
		l.segs = append(l.segs, seg)
	}
	l.width += seg.width
}

func (l *line) addLine(other line) {
	for _, seg := range other.segs {
		l.add(seg)
	}
}

func (l line) empty() bool {
	return len(l.segs) == 0
}

func maxWidth(lines []line) int {
	w := 0
	for _, l := range lines {
		if l.width > w {
			w = l.width
		}
	}
	return w
}
