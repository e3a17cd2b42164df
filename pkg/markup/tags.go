package markup

import "fmt"

// TagName is the closed set of tags the language understands
type TagName int

const (
	TagToken TagName = iota
	TagHr
	TagPad
	TagGrammarNumber
	TagCommand
	TagInverse
	TagDim
	TagEmphasis
	TagNumber
	TagHyperlink
	TagFilelink
	TagDuration
	TagFilesize
	TagItalic
	TagUnderline
	TagStrike
	TagError
	TagSuccess
	TagWarn
	TagInfo
	TagHighlight
	TagColor
	TagTable
	TagTr
	TagTd
	TagNobr
	TagOl
	TagUl
	TagLi

	tagCount
)

var tagNames = [tagCount]string{
	TagToken:         "token",
	TagHr:            "hr",
	TagPad:           "pad",
	TagGrammarNumber: "grammarNumber",
	TagCommand:       "command",
	TagInverse:       "inverse",
	TagDim:           "dim",
	TagEmphasis:      "emphasis",
	TagNumber:        "number",
	TagHyperlink:     "hyperlink",
	TagFilelink:      "filelink",
	TagDuration:      "duration",
	TagFilesize:      "filesize",
	TagItalic:        "italic",
	TagUnderline:     "underline",
	TagStrike:        "strike",
	TagError:         "error",
	TagSuccess:       "success",
	TagWarn:          "warn",
	TagInfo:          "info",
	TagHighlight:     "highlight",
	TagColor:         "color",
	TagTable:         "table",
	TagTr:            "tr",
	TagTd:            "td",
	TagNobr:          "nobr",
	TagOl:            "ol",
	TagUl:            "ul",
	TagLi:            "li",
}

var tagsByName = func() map[string]TagName {
	m := make(map[string]TagName, tagCount)
	for i, name := range tagNames {
		m[name] = TagName(i)
	}
	return m
}()

// String returns the markup spelling of the tag
func (t TagName) String() string {
	if t < 0 || t >= tagCount {
		return fmt.Sprintf("TagName(%d)", int(t))
	}
	return tagNames[t]
}

// LookupTag maps a markup tag name to its TagName. Matching is case sensitive.
func LookupTag(name string) (TagName, bool) {
	t, ok := tagsByName[name]
	return t, ok
}

// Tags returns every tag in declaration order
func Tags() []TagName {
	tags := make([]TagName, tagCount)
	for i := range tags {
		tags[i] = TagName(i)
	}
	return tags
}
