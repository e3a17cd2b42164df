package style

import "github.com/muesli/termenv"

// ANSI renders text with SGR escape sequences. Every styled run is closed by
// its own reset, so nothing leaks into the text that follows. Links are
// wrapped in OSC 8 hyperlink sequences.
func (s Style) ANSI(text string) string {
	if text == "" {
		return ""
	}
	out := text
	if s.hasEffects() {
		ts := termenv.Style{}
		if c := s.Foreground.ansi(); c != nil {
			ts = ts.Foreground(c)
		}
		if c := s.Background.ansi(); c != nil {
			ts = ts.Background(c)
		}
		if s.Bold {
			ts = ts.Bold()
		}
		if s.Dim {
			ts = ts.Faint()
		}
		if s.Italic {
			ts = ts.Italic()
		}
		if s.Underline {
			ts = ts.Underline()
		}
		if s.Strike {
			ts = ts.CrossOut()
		}
		if s.Inverse {
			ts = ts.Reverse()
		}
		out = ts.Styled(text)
	}
	if s.Link != "" {
		out = termenv.Hyperlink(s.Link, out)
	}
	return out
}
