package gameobject

import (
	"fmt"
	"strconv"
	"strings"
)

// Position represents a source location. Positions inside a payload blob
// carry the location of the string literal they were decoded from.
type Position struct {
	Line   int
	Column int
	Offset int
	Outer  *Position
}

// String returns position as "line:column".
func (p Position) String() string {
	if p.Outer != nil {
		return fmt.Sprintf("%d:%d (in string at %s)", p.Line, p.Column, p.Outer)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LiteralKind is the lexical kind of a parsed field value.
type LiteralKind uint8

const (
	LiteralString LiteralKind = iota // "quoted", adjacent literals joined
	LiteralNumber                    // 1.0, -3, 8.7E-4
	LiteralIdent                     // BLEND_MODE_ALPHA, true
	LiteralBlock                     // { ... }
)

// String returns the literal kind name.
func (k LiteralKind) String() string {
	switch k {
	case LiteralString:
		return "string"
	case LiteralNumber:
		return "number"
	case LiteralIdent:
		return "identifier"
	case LiteralBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Field is one named entry of a Block: a scalar literal or a nested block.
type Field struct {
	Name  string
	Kind  LiteralKind
	Text  string // Scalar text; decoded string contents for LiteralString
	Block *Block // For Kind == LiteralBlock
	Pos   Position
}

// Number returns the field's numeric value. Identifiers inf, -inf and nan
// are accepted the way protobuf text does.
func (f *Field) Number() (float64, bool) {
	if f == nil {
		return 0, false
	}
	switch f.Kind {
	case LiteralNumber, LiteralIdent:
		v, err := strconv.ParseFloat(f.Text, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// IsBlock reports whether the field holds a nested block.
func (f *Field) IsBlock() bool {
	return f != nil && f.Kind == LiteralBlock
}

// Block is an ordered list of fields. Field order and repetition are
// preserved exactly as written.
type Block struct {
	Fields []*Field
	Pos    Position
}

// Get returns the first field with the given name, or nil.
func (b *Block) Get(name string) *Field {
	if b == nil {
		return nil
	}
	for _, f := range b.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// All returns every field with the given name, in document order.
func (b *Block) All(name string) []*Field {
	if b == nil {
		return nil
	}
	var out []*Field
	for _, f := range b.Fields {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

// Count returns how many times name occurs in the block.
func (b *Block) Count(name string) int {
	n := 0
	if b == nil {
		return n
	}
	for _, f := range b.Fields {
		if f.Name == name {
			n++
		}
	}
	return n
}

// Names returns the distinct field names in first-occurrence order.
func (b *Block) Names() []string {
	if b == nil {
		return nil
	}
	seen := make(map[string]bool, len(b.Fields))
	var out []string
	for _, f := range b.Fields {
		if !seen[f.Name] {
			seen[f.Name] = true
			out = append(out, f.Name)
		}
	}
	return out
}

// String returns the block in canonical text form.
func (b *Block) String() string {
	var sb strings.Builder
	writeBlock(&sb, b, 0, DefaultEmitOptions())
	return sb.String()
}

// Top-level block tags of a game-object document.
const (
	TagComponents         = "components"
	TagEmbeddedComponents = "embedded_components"
)

// Document is a parsed game-object document: an ordered list of top-level
// blocks, each tagged components or embedded_components.
type Document struct {
	Blocks []*Field
}
