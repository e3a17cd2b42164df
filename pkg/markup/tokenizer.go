package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/markup/pkg/errors"
)

// lexer walks the input one rune at a time while tracking line and column.
type lexer struct {
	input  string
	offset int
	line   int
	column int
	tokens []Token
}

// Tokenize converts markup into a token stream terminated by a KindEOF token.
// It does not recover from errors: the first malformed construct aborts.
func Tokenize(input string) ([]Token, error) {
	l := &lexer{input: input, line: 1, column: 1}
	for !l.done() {
		if l.peek() == '<' {
			if err := l.lexTag(); err != nil {
				return nil, err
			}
			continue
		}
		l.lexText()
	}
	l.emit(KindEOF, "", l.pos())
	return l.tokens, nil
}

func (l *lexer) done() bool {
	return l.offset >= len(l.input)
}

func (l *lexer) pos() Position {
	return Position{Offset: l.offset, Line: l.line, Column: l.column}
}

func (l *lexer) peek() rune {
	if l.done() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) next() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.offset:])
	l.offset += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *lexer) emit(kind Kind, value string, pos Position) {
	l.tokens = append(l.tokens, Token{Kind: kind, Value: value, Pos: pos})
}

// lexText consumes everything up to the next unescaped '<'.
func (l *lexer) lexText() {
	start := l.pos()
	var sb strings.Builder
	for !l.done() && l.peek() != '<' {
		r := l.next()
		if r == '\\' && (l.peek() == '<' || l.peek() == '\\') {
			r = l.next()
		}
		sb.WriteRune(r)
	}
	l.emit(KindText, sb.String(), start)
}

// lexTag consumes a tag from '<' through the matching '>'.
func (l *lexer) lexTag() error {
	start := l.pos()
	l.next()
	l.emit(KindLess, "", start)

	for {
		if l.done() {
			return errors.At(start, errors.ErrTokenize, "unexpected end of input inside tag")
		}
		pos := l.pos()
		r := l.peek()
		switch {
		case unicode.IsSpace(r):
			l.next()
		case r == '>':
			l.next()
			l.emit(KindGreater, "", pos)
			return nil
		case r == '/':
			l.next()
			l.emit(KindSlash, "", pos)
		case r == '=':
			l.next()
			l.emit(KindEquals, "", pos)
		case r == '"' || r == '\'':
			value, err := l.lexString()
			if err != nil {
				return err
			}
			l.emit(KindString, value, pos)
		case isWordRune(r):
			var sb strings.Builder
			for !l.done() && isWordRune(l.peek()) {
				sb.WriteRune(l.next())
			}
			l.emit(KindWord, sb.String(), pos)
		default:
			return errors.At(pos, errors.ErrTokenize, "unexpected character %q inside tag", r).
				WithDetail("char", string(r))
		}
	}
}

// lexString consumes a quoted string, honouring \<quote> and \\ escapes.
func (l *lexer) lexString() (string, error) {
	start := l.pos()
	quote := l.next()
	var sb strings.Builder
	for {
		if l.done() {
			return "", errors.At(start, errors.ErrTokenize, "unterminated string starting with %q", quote)
		}
		r := l.next()
		switch {
		case r == quote:
			return sb.String(), nil
		case r == '\\' && (l.peek() == quote || l.peek() == '\\'):
			sb.WriteRune(l.next())
		default:
			sb.WriteRune(r)
		}
	}
}

func isWordRune(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ':' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
