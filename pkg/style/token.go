package style

// TokenType classifies a syntax highlighted token
type TokenType int

const (
	TokenNone TokenType = iota
	TokenKeyword
	TokenNumber
	TokenRegex
	TokenString
	TokenComment
	TokenOperator
	TokenPunctuation
	TokenVariable
	TokenAttrName
	TokenFunction
	TokenBoolean
)

var tokenNames = map[TokenType]string{
	TokenKeyword:     "keyword",
	TokenNumber:      "number",
	TokenRegex:       "regex",
	TokenString:      "string",
	TokenComment:     "comment",
	TokenOperator:    "operator",
	TokenPunctuation: "punctuation",
	TokenVariable:    "variable",
	TokenAttrName:    "attr-name",
	TokenFunction:    "function",
	TokenBoolean:     "boolean",
}

var tokensByName = func() map[string]TokenType {
	m := make(map[string]TokenType, len(tokenNames))
	for t, name := range tokenNames {
		m[name] = t
	}
	return m
}()

// ParseTokenType looks up a token type by its markup name, e.g. "attr-name"
func ParseTokenType(name string) (TokenType, bool) {
	t, ok := tokensByName[name]
	return t, ok
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "none"
}
