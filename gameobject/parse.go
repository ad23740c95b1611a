package gameobject

import (
	"fmt"
)

// DefaultMaxDepth bounds block nesting, counting nested payload documents.
const DefaultMaxDepth = 64

// ParseError represents a parsing error with location.
type ParseError struct {
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// ParseOptions configures the parser behavior.
type ParseOptions struct {
	// MaxDepth limits block nesting (default DefaultMaxDepth).
	MaxDepth int

	// depth already consumed by enclosing documents
	baseDepth int
	origin    Position
}

// Parser parses document text into a Block tree. A Parser holds all of its
// state, so payload blobs can be parsed while an outer parse is in progress.
type Parser struct {
	stream   *TokenStream
	maxDepth int
	depth    int
}

// Parse parses a complete game-object document. Every top-level entry must
// be a components or embedded_components block.
func Parse(input string) (*Document, error) {
	return ParseWithOptions(input, ParseOptions{})
}

// ParseWithOptions parses a complete document with custom options.
func ParseWithOptions(input string, opts ParseOptions) (*Document, error) {
	root, err := parseBlock(input, opts)
	if err != nil {
		return nil, err
	}

	doc := &Document{Blocks: make([]*Field, 0, len(root.Fields))}
	for _, f := range root.Fields {
		switch f.Name {
		case TagComponents, TagEmbeddedComponents:
			if f.Kind != LiteralBlock {
				return nil, &ParseError{Message: fmt.Sprintf("top-level %q must be a block", f.Name), Pos: f.Pos}
			}
			doc.Blocks = append(doc.Blocks, f)
		default:
			return nil, &ParseError{Message: fmt.Sprintf("unknown top-level tag %q", f.Name), Pos: f.Pos}
		}
	}
	return doc, nil
}

// ParseFragment parses text in the document grammar without applying the
// top-level tag policy. Payload blobs are fragments.
func ParseFragment(input string) (*Block, error) {
	return parseBlock(input, ParseOptions{})
}

// parseBlob re-enters the parser for a string field whose contents are
// themselves written in the document grammar.
func parseBlob(f *Field, depth, maxDepth int) (*Block, error) {
	return parseBlock(f.Text, ParseOptions{MaxDepth: maxDepth, baseDepth: depth, origin: f.Pos})
}

func parseBlock(input string, opts ParseOptions) (*Block, error) {
	lexer := newNestedLexer(input, opts.origin)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &Parser{
		stream:   NewTokenStream(tokens),
		maxDepth: maxDepth,
		depth:    opts.baseDepth,
	}
	if p.depth > p.maxDepth {
		return nil, &ParseError{Message: fmt.Sprintf("nesting exceeds depth %d", p.maxDepth), Pos: tokens[0].Pos}
	}

	root := &Block{Pos: tokens[0].Pos}
	if err := p.parseFields(root, false); err != nil {
		return nil, err
	}
	return root, nil
}

// parseFields reads fields into b until the closing brace (nested) or EOF.
func (p *Parser) parseFields(b *Block, nested bool) error {
	for {
		tok := p.stream.Peek()

		switch tok.Type {
		case TokenRBrace:
			if !nested {
				return p.errorf(tok.Pos, "unbalanced '}'")
			}
			p.stream.Advance()
			return nil

		case TokenEOF:
			if nested {
				return p.errorf(b.Pos, "unterminated block")
			}
			return nil

		case TokenSep:
			p.stream.Advance()
			continue

		case TokenIdent:
			f, err := p.parseField()
			if err != nil {
				return err
			}
			b.Fields = append(b.Fields, f)

		default:
			return p.errorf(tok.Pos, "expected field name, got %s", tok.Type)
		}
	}
}

// parseField parses `name: value`, `name { ... }` or `name: { ... }`.
func (p *Parser) parseField() (*Field, error) {
	nameTok := p.stream.Advance()
	f := &Field{Name: nameTok.Value, Pos: nameTok.Pos}

	hasColon := p.stream.Match(TokenColon)

	tok := p.stream.Peek()
	switch tok.Type {
	case TokenLBrace:
		block, err := p.parseNestedBlock()
		if err != nil {
			return nil, err
		}
		f.Kind = LiteralBlock
		f.Block = block
		return f, nil

	case TokenString:
		if !hasColon {
			return nil, p.errorf(tok.Pos, "expected ':' after %q", f.Name)
		}
		f.Kind = LiteralString
		f.Text = p.parseStrings()
		return f, nil

	case TokenNumber:
		if !hasColon {
			return nil, p.errorf(tok.Pos, "expected ':' after %q", f.Name)
		}
		p.stream.Advance()
		f.Kind = LiteralNumber
		f.Text = tok.Value
		return f, nil

	case TokenIdent:
		if !hasColon {
			return nil, p.errorf(tok.Pos, "expected ':' or '{' after %q", f.Name)
		}
		p.stream.Advance()
		f.Kind = LiteralIdent
		f.Text = tok.Value
		return f, nil

	default:
		if hasColon {
			return nil, p.errorf(tok.Pos, "expected value for %q, got %s", f.Name, tok.Type)
		}
		return nil, p.errorf(tok.Pos, "expected ':' or '{' after %q", f.Name)
	}
}

// parseStrings joins adjacent string literals into one value.
func (p *Parser) parseStrings() string {
	first := p.stream.Advance().Value
	if p.stream.Peek().Type != TokenString {
		return first
	}
	buf := []byte(first)
	for p.stream.Peek().Type == TokenString {
		buf = append(buf, p.stream.Advance().Value...)
	}
	return string(buf)
}

func (p *Parser) parseNestedBlock() (*Block, error) {
	open := p.stream.Advance() // consume {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, p.errorf(open.Pos, "nesting exceeds depth %d", p.maxDepth)
	}

	b := &Block{Pos: open.Pos}
	if err := p.parseFields(b, true); err != nil {
		return nil, err
	}
	return b, nil
}

func (p *Parser) errorf(pos Position, format string, args ...interface{}) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos}
}
