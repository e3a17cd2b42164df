package style

import (
	"html"
	"strings"
)

// HTML renders text as escaped HTML, wrapped in a span carrying the style and
// in an anchor when the style links somewhere.
func (s Style) HTML(text string) string {
	out := html.EscapeString(text)
	if text == "" {
		return out
	}

	var classes, decls []string
	if s.Token != TokenNone {
		classes = append(classes, "token", s.Token.String())
	}
	fg, bg := s.Foreground.CSS(), s.Background.CSS()
	if s.Inverse {
		classes = append(classes, "inverse")
		fg, bg = bg, fg
		if fg == "" {
			fg = "var(--background, #ffffff)"
		}
		if bg == "" {
			bg = "var(--foreground, #000000)"
		}
	}
	if fg != "" {
		decls = append(decls, "color: "+fg)
	}
	if bg != "" {
		decls = append(decls, "background-color: "+bg)
	}
	if s.Bold {
		decls = append(decls, "font-weight: bold")
	}
	if s.Dim {
		decls = append(decls, "opacity: 0.5")
	}
	if s.Italic {
		decls = append(decls, "font-style: italic")
	}
	switch {
	case s.Underline && s.Strike:
		decls = append(decls, "text-decoration: underline line-through")
	case s.Underline:
		decls = append(decls, "text-decoration: underline")
	case s.Strike:
		decls = append(decls, "text-decoration: line-through")
	}

	if len(classes) > 0 || len(decls) > 0 {
		var sb strings.Builder
		sb.WriteString("<span")
		if len(classes) > 0 {
			sb.WriteString(` class="`)
			sb.WriteString(strings.Join(classes, " "))
			sb.WriteByte('"')
		}
		if len(decls) > 0 {
			sb.WriteString(` style="`)
			sb.WriteString(strings.Join(decls, "; "))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		sb.WriteString(out)
		sb.WriteString("</span>")
		out = sb.String()
	}

	if s.Link != "" {
		out = `<a href="` + html.EscapeString(s.Link) + `">` + out + "</a>"
	}
	return out
}
