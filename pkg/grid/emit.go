package grid

import "strings"

// encodeLine renders a laid out line in format f. Each segment is a maximal
// run of one style, so ANSI output opens and resets once per run.
func encodeLine(l line, f Format) string {
	var sb strings.Builder
	for _, seg := range l.segs {
		switch f {
		case FormatANSI:
			sb.WriteString(seg.style.ANSI(seg.text))
		case FormatHTML:
			sb.WriteString(seg.style.HTML(seg.text))
		default:
			sb.WriteString(seg.text)
		}
	}
	return sb.String()
}
