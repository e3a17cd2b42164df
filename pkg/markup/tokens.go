package markup

import (
	"fmt"

	"github.com/arthur-debert/markup/pkg/errors"
)

// Position is a location in the markup source
type Position = errors.Position

// Kind identifies the lexical class of a token
type Kind int

const (
	KindEOF Kind = iota
	KindText
	KindSlash
	KindLess
	KindEquals
	KindGreater
	KindWord
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindText:
		return "Text"
	case KindSlash:
		return "Slash"
	case KindLess:
		return "Less"
	case KindEquals:
		return "Equals"
	case KindGreater:
		return "Greater"
	case KindWord:
		return "Word"
	case KindString:
		return "String"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single lexical token. Value is set for Text, Word and String
// tokens and holds the unescaped content.
type Token struct {
	Kind  Kind
	Value string
	Pos   Position
}

func (t Token) String() string {
	switch t.Kind {
	case KindText, KindWord, KindString:
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Pos)
	default:
		return fmt.Sprintf("%s@%s", t.Kind, t.Pos)
	}
}
