package markup

import (
	"github.com/arthur-debert/markup/pkg/errors"
)

// DefaultMaxDepth bounds tag nesting in the parser and the renderer
const DefaultMaxDepth = 256

// ParseOptions tunes the parser
type ParseOptions struct {
	// MaxDepth is the deepest tag nesting accepted; zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse tokenizes and parses markup into a node tree
func Parse(input string) ([]Node, error) {
	return ParseWithOptions(input, ParseOptions{})
}

// ParseWithOptions is Parse with explicit options
func ParseWithOptions(input string, opts ParseOptions) ([]Node, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, opts)
}

// ParseTokens builds a node tree from a token stream produced by Tokenize.
// On error no tree is returned.
func ParseTokens(tokens []Token, opts ParseOptions) ([]Node, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{tokens: tokens, maxDepth: maxDepth}
	nodes, err := p.parseNodes(nil, 0)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

type parser struct {
	tokens   []Token
	index    int
	maxDepth int
}

func (p *parser) peek() Token {
	if p.index >= len(p.tokens) {
		if len(p.tokens) > 0 {
			last := p.tokens[len(p.tokens)-1]
			return Token{Kind: KindEOF, Pos: last.Pos}
		}
		return Token{Kind: KindEOF}
	}
	return p.tokens[p.index]
}

func (p *parser) next() Token {
	tok := p.peek()
	if p.index < len(p.tokens) {
		p.index++
	}
	return tok
}

func (p *parser) expect(kind Kind, what string) (Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return tok, errors.At(tok.Pos, errors.ErrSyntax, "expected %s, found %s", what, describe(tok))
	}
	return tok, nil
}

// parseNodes parses children until the close tag of parent, or EOF at the
// top level.
func (p *parser) parseNodes(parent *TagNode, depth int) ([]Node, error) {
	var nodes []Node
	for {
		tok := p.peek()
		switch tok.Kind {
		case KindEOF:
			if parent != nil {
				return nil, errors.At(parent.Start, errors.ErrMismatchedTag, "unclosed tag <%s>", parent.Name).
					WithDetail("expected", parent.Name.String())
			}
			return nodes, nil
		case KindText:
			p.next()
			if tok.Value != "" {
				nodes = append(nodes, &TextNode{Value: tok.Value, Start: tok.Pos})
			}
		case KindLess:
			less := p.next()
			if p.peek().Kind == KindSlash {
				p.next()
				return nodes, p.parseClose(parent, less)
			}
			tag, err := p.parseTag(less, depth+1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, tag)
		default:
			return nil, errors.At(tok.Pos, errors.ErrSyntax, "unexpected %s", describe(tok))
		}
	}
}

// parseClose parses "Word Greater" after "</" and checks it against parent.
func (p *parser) parseClose(parent *TagNode, less Token) error {
	word, err := p.expect(KindWord, "closing tag name")
	if err != nil {
		return err
	}
	if parent == nil {
		return errors.At(less.Pos, errors.ErrMismatchedTag, "closing tag </%s> has no matching open tag", word.Value).
			WithDetail("found", word.Value)
	}
	if word.Value != parent.Name.String() {
		return errors.At(less.Pos, errors.ErrMismatchedTag, "expected </%s>, found </%s>", parent.Name, word.Value).
			WithDetail("expected", parent.Name.String()).
			WithDetail("found", word.Value)
	}
	_, err = p.expect(KindGreater, "'>'")
	return err
}

// parseTag parses a tag after its '<' through its close tag or "/>".
func (p *parser) parseTag(less Token, depth int) (*TagNode, error) {
	if depth > p.maxDepth {
		return nil, errors.At(less.Pos, errors.ErrDepthExceeded, "nesting depth exceeds limit of %d", p.maxDepth).
			WithDetail("limit", p.maxDepth)
	}

	word, err := p.expect(KindWord, "tag name")
	if err != nil {
		return nil, err
	}
	name, ok := LookupTag(word.Value)
	if !ok {
		return nil, errors.At(word.Pos, errors.ErrUnknownTag, "unknown tag <%s>", word.Value).
			WithDetail("tag", word.Value)
	}
	tag := &TagNode{Name: name, Attributes: Attributes{}, Start: less.Pos}

	for {
		tok := p.next()
		switch tok.Kind {
		case KindWord:
			if p.peek().Kind != KindEquals {
				tag.Attributes[tok.Value] = nil
				continue
			}
			p.next()
			value, err := p.expect(KindString, "quoted attribute value")
			if err != nil {
				return nil, err
			}
			v := value.Value
			tag.Attributes[tok.Value] = &v
		case KindSlash:
			if _, err := p.expect(KindGreater, "'>' after '/'"); err != nil {
				return nil, err
			}
			return tag, nil
		case KindGreater:
			children, err := p.parseNodes(tag, depth)
			if err != nil {
				return nil, err
			}
			tag.Children = children
			return tag, nil
		default:
			return nil, errors.At(tok.Pos, errors.ErrSyntax, "unexpected %s in <%s>", describe(tok), name)
		}
	}
}

func describe(tok Token) string {
	switch tok.Kind {
	case KindEOF:
		return "end of input"
	case KindWord, KindString, KindText:
		return tok.Kind.String() + " " + quote(tok.Value)
	case KindSlash:
		return "'/'"
	case KindLess:
		return "'<'"
	case KindEquals:
		return "'='"
	case KindGreater:
		return "'>'"
	default:
		return tok.Kind.String()
	}
}

func quote(s string) string {
	const max = 20
	r := []rune(s)
	if len(r) > max {
		s = string(r[:max]) + "…"
	}
	return "\"" + s + "\""
}
