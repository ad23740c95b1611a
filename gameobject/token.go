package gameobject

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenString // "quoted string" (escapes decoded)
	TokenNumber // 1, -157.0, 8.7722944E-4
	TokenIdent  // field names, enum values, true/false

	// Structural
	TokenLBrace // {
	TokenRBrace // }
	TokenColon  // :
	TokenSep    // , or ; (optional field separator)
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenIdent:
		return "IDENT"
	case TokenLBrace:
		return "{"
	case TokenRBrace:
		return "}"
	case TokenColon:
		return ":"
	case TokenSep:
		return "SEP"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexer token.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// Lexer tokenizes game-object document text.
type Lexer struct {
	input  string
	pos    int // Current position in input
	line   int // Current line number (1-based)
	col    int // Current column number (1-based)
	origin Position
	tokens []Token
	err    error
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// newNestedLexer creates a lexer whose positions are reported relative to
// the string literal the input was taken from.
func newNestedLexer(input string, origin Position) *Lexer {
	l := NewLexer(input)
	l.origin = origin
	return l
}

// Tokenize returns all tokens from the input.
func (l *Lexer) Tokenize() ([]Token, error) {
	for {
		tok := l.nextToken()
		l.tokens = append(l.tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}
	if l.err != nil {
		return l.tokens, l.err
	}
	return l.tokens, nil
}

func (l *Lexer) nextToken() Token {
	l.skipWhitespaceAndComments()

	startPos := l.currentPos()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: startPos}
	}

	ch := l.peek()
	switch ch {
	case '{':
		l.advance()
		return Token{Type: TokenLBrace, Value: "{", Pos: startPos}
	case '}':
		l.advance()
		return Token{Type: TokenRBrace, Value: "}", Pos: startPos}
	case ':':
		l.advance()
		return Token{Type: TokenColon, Value: ":", Pos: startPos}
	case ',', ';':
		l.advance()
		return Token{Type: TokenSep, Value: string(ch), Pos: startPos}
	case '"', '\'':
		return l.scanString(ch)
	}

	if ch == '-' || ch == '+' || ch == '.' || isDigit(ch) {
		return l.scanNumber()
	}

	if isIdentStart(ch) {
		return l.scanIdent()
	}

	l.advance()
	return l.fail(startPos, "unexpected character %q", ch)
}

// scanString scans a quoted string, decoding C-style escapes.
func (l *Lexer) scanString(quote byte) Token {
	startPos := l.currentPos()
	l.advance() // consume opening quote

	var sb strings.Builder
	for {
		if l.pos >= len(l.input) || l.peek() == '\n' {
			return l.fail(startPos, "unterminated string")
		}

		ch := l.peek()
		if ch == quote {
			l.advance()
			break
		}
		if ch != '\\' {
			sb.WriteByte(ch)
			l.advance()
			continue
		}

		l.advance()
		if l.pos >= len(l.input) {
			return l.fail(startPos, "unterminated escape")
		}
		escaped := l.peek()
		l.advance()
		switch escaped {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '\\', '"', '\'', '?':
			sb.WriteByte(escaped)
		case 'x', 'X':
			b, ok := l.scanRadix(16, 2)
			if !ok {
				return l.fail(startPos, "invalid hex escape")
			}
			sb.WriteByte(b)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			l.pos--
			l.col--
			b, ok := l.scanRadix(8, 3)
			if !ok {
				return l.fail(startPos, "invalid octal escape")
			}
			sb.WriteByte(b)
		default:
			return l.fail(startPos, "invalid escape \\%c", escaped)
		}
	}

	return Token{Type: TokenString, Value: sb.String(), Pos: startPos}
}

// scanRadix reads up to max digits in the given base and returns the byte
// they encode. At least one digit is required.
func (l *Lexer) scanRadix(base, max int) (byte, bool) {
	v, n := 0, 0
	for n < max && l.pos < len(l.input) {
		d := digitValue(l.peek())
		if d < 0 || d >= base {
			break
		}
		v = v*base + d
		n++
		l.advance()
	}
	if n == 0 || v > 0xFF {
		return 0, false
	}
	return byte(v), true
}

// scanNumber scans an integer or float literal. Special values such as inf
// and nan are identifiers and are resolved by the decoder.
func (l *Lexer) scanNumber() Token {
	startPos := l.currentPos()
	start := l.pos

	if l.peek() == '-' || l.peek() == '+' {
		l.advance()
	}

	digits := 0
	for l.pos < len(l.input) && isDigit(l.peek()) {
		l.advance()
		digits++
	}
	if l.pos < len(l.input) && l.peek() == '.' {
		l.advance()
		for l.pos < len(l.input) && isDigit(l.peek()) {
			l.advance()
			digits++
		}
	}
	if digits == 0 {
		// "-inf" and friends
		if l.pos < len(l.input) && isIdentStart(l.peek()) {
			for l.pos < len(l.input) && isIdentContinue(l.peek()) {
				l.advance()
			}
			return Token{Type: TokenNumber, Value: l.input[start:l.pos], Pos: startPos}
		}
		return l.fail(startPos, "malformed number %q", l.input[start:l.pos])
	}

	if l.pos < len(l.input) && (l.peek() == 'e' || l.peek() == 'E') {
		l.advance()
		if l.pos < len(l.input) && (l.peek() == '+' || l.peek() == '-') {
			l.advance()
		}
		exp := 0
		for l.pos < len(l.input) && isDigit(l.peek()) {
			l.advance()
			exp++
		}
		if exp == 0 {
			return l.fail(startPos, "malformed exponent in %q", l.input[start:l.pos])
		}
	}

	value := l.input[start:l.pos]

	// Float suffix written by some exporters: 1.0f
	if l.pos < len(l.input) && (l.peek() == 'f' || l.peek() == 'F') {
		l.advance()
	}
	if l.pos < len(l.input) && isIdentContinue(l.peek()) {
		return l.fail(startPos, "malformed number %q", l.input[start:l.pos+1])
	}

	return Token{Type: TokenNumber, Value: value, Pos: startPos}
}

func (l *Lexer) scanIdent() Token {
	startPos := l.currentPos()
	start := l.pos
	for l.pos < len(l.input) && (isIdentContinue(l.peek()) || l.peek() == '.') {
		l.advance()
	}
	return Token{Type: TokenIdent, Value: l.input[start:l.pos], Pos: startPos}
}

// skipWhitespaceAndComments skips whitespace and # comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v':
			l.advance()
		case ch == '#':
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) fail(pos Position, format string, args ...interface{}) Token {
	msg := fmt.Sprintf(format, args...)
	l.err = &ParseError{Message: msg, Pos: pos}
	return Token{Type: TokenError, Value: msg, Pos: pos}
}

// Helper methods

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *Lexer) currentPos() Position {
	p := Position{Line: l.line, Column: l.col, Offset: l.pos}
	if l.origin.Line > 0 {
		p.Outer = &l.origin
	}
	return p
}

// Character classification

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func digitValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}

// TokenStream provides a stream interface over tokens.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream creates a token stream from tokens.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Peek returns the current token without advancing.
func (ts *TokenStream) Peek() Token {
	if ts.pos >= len(ts.tokens) {
		return Token{Type: TokenEOF}
	}
	return ts.tokens[ts.pos]
}

// Advance moves to the next token and returns the current one.
func (ts *TokenStream) Advance() Token {
	tok := ts.Peek()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// Match returns true and advances if the current token matches.
func (ts *TokenStream) Match(typ TokenType) bool {
	if ts.Peek().Type == typ {
		ts.Advance()
		return true
	}
	return false
}

// AtEnd returns true if at end of stream.
func (ts *TokenStream) AtEnd() bool {
	return ts.Peek().Type == TokenEOF
}
