package markup

import "strings"

var textEscaper = strings.NewReplacer(`\`, `\\`, `<`, `\<`)

// Escape makes arbitrary text safe to embed in markup
func Escape(text string) string {
	return textEscaper.Replace(text)
}

// EscapeAttribute makes a value safe inside a double-quoted attribute
func EscapeAttribute(value string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
}
