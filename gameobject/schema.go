package gameobject

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Schema describes the fields expected for one component type, or for a
// nested message inside one.
type Schema struct {
	Name   string      // Type name (e.g., "sprite", "mesh")
	Fields []*FieldDef // Declared fields, in canonical emit order
	Hash   string      // SHA256 prefix of the canonical schema text

	index map[string]*FieldDef
}

// FieldDef represents a field in a schema.
type FieldDef struct {
	Name     string   // Field name as written in documents
	Type     TypeSpec // Field type
	Optional bool     // Field may be omitted
	Repeated bool     // Field may occur zero or more times
	Default  *Value   // Substituted when the field is absent
}

// Required reports whether a document must supply the field.
func (f *FieldDef) Required() bool {
	return !f.Optional && !f.Repeated && f.Default == nil
}

// TypeSpec represents a field type.
type TypeSpec struct {
	Kind    TypeSpecKind
	Enum    []string // For Kind == TypeSpecEnum, the closed domain
	Message *Schema  // For Kind == TypeSpecMessage and TypeSpecDocument
}

// TypeSpecKind indicates the kind of type specification.
type TypeSpecKind uint8

const (
	TypeSpecString TypeSpecKind = iota
	TypeSpecFloat
	TypeSpecInt
	TypeSpecBool
	TypeSpecEnum
	TypeSpecMessage  // Nested block decoded against Message
	TypeSpecDocument // String holding a nested document decoded against Message
)

// String returns the type spec as a string.
func (ts TypeSpec) String() string {
	switch ts.Kind {
	case TypeSpecString:
		return "string"
	case TypeSpecFloat:
		return "float"
	case TypeSpecInt:
		return "int"
	case TypeSpecBool:
		return "bool"
	case TypeSpecEnum:
		return "enum{" + strings.Join(ts.Enum, ",") + "}"
	case TypeSpecMessage:
		return ts.messageName()
	case TypeSpecDocument:
		return "document<" + ts.messageName() + ">"
	default:
		return "unknown"
	}
}

func (ts TypeSpec) messageName() string {
	if ts.Message == nil {
		return "message"
	}
	return ts.Message.Name
}

// valueKind returns the decoded value kind for a single element.
func (ts TypeSpec) valueKind() ValueKind {
	switch ts.Kind {
	case TypeSpecFloat:
		return KindFloat
	case TypeSpecInt:
		return KindInt
	case TypeSpecBool:
		return KindBool
	case TypeSpecEnum:
		return KindEnum
	case TypeSpecMessage, TypeSpecDocument:
		return KindRecord
	default:
		return KindString
	}
}

// HasEnum reports whether name is in the enum domain.
func (ts TypeSpec) HasEnum(name string) bool {
	for _, v := range ts.Enum {
		if v == name {
			return true
		}
	}
	return false
}

// ============================================================
// Schema Methods
// ============================================================

// Field returns a field definition by name, or nil.
func (s *Schema) Field(name string) *FieldDef {
	if s == nil {
		return nil
	}
	if s.index != nil {
		return s.index[name]
	}
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// RequiredFields returns the fields a document must supply.
func (s *Schema) RequiredFields() []*FieldDef {
	var out []*FieldDef
	for _, f := range s.Fields {
		if f.Required() {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the schema definition itself: unique field names, enum
// defaults inside their domain, defaults matching the field type and nested
// messages present.
func (s *Schema) Validate() error {
	if s == nil {
		return fmt.Errorf("nil schema")
	}
	if s.Name == "" {
		return fmt.Errorf("schema has no name")
	}
	return s.validate(map[*Schema]bool{})
}

func (s *Schema) validate(seen map[*Schema]bool) error {
	if seen[s] {
		return nil
	}
	seen[s] = true

	names := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("%s: field with empty name", s.Name)
		}
		if names[f.Name] {
			return fmt.Errorf("%s: duplicate field %q", s.Name, f.Name)
		}
		names[f.Name] = true

		switch f.Type.Kind {
		case TypeSpecEnum:
			if len(f.Type.Enum) == 0 {
				return fmt.Errorf("%s.%s: enum without values", s.Name, f.Name)
			}
		case TypeSpecMessage, TypeSpecDocument:
			if f.Type.Message == nil {
				return fmt.Errorf("%s.%s: %s without schema", s.Name, f.Name, f.Type)
			}
			if f.Default != nil {
				return fmt.Errorf("%s.%s: message fields take no default", s.Name, f.Name)
			}
			if err := f.Type.Message.validate(seen); err != nil {
				return err
			}
		}

		if f.Default == nil {
			continue
		}
		if f.Repeated {
			return fmt.Errorf("%s.%s: repeated fields take no default", s.Name, f.Name)
		}
		want := f.Type.valueKind()
		got := f.Default.kind
		if got != want && !(want == KindFloat && got == KindInt) {
			return fmt.Errorf("%s.%s: default is %s, field is %s", s.Name, f.Name, got, f.Type)
		}
		if want == KindEnum && !f.Type.HasEnum(f.Default.strVal) {
			return fmt.Errorf("%s.%s: default %s is not in %s", s.Name, f.Name, f.Default.strVal, f.Type)
		}
	}
	return nil
}

// ComputeHash computes and sets the schema hash.
func (s *Schema) ComputeHash() string {
	sum := sha256.Sum256([]byte(s.Canonical()))
	s.Hash = hex.EncodeToString(sum[:8])
	return s.Hash
}

// Canonical returns the canonical schema text, nested messages inlined.
func (s *Schema) Canonical() string {
	var sb strings.Builder
	writeSchema(&sb, s, 0)
	return sb.String()
}

func writeSchema(sb *strings.Builder, s *Schema, depth int) {
	if s == nil {
		sb.WriteString("?\n")
		return
	}
	indent := strings.Repeat("  ", depth)
	sb.WriteString(s.Name)
	sb.WriteString(" {\n")
	for _, f := range s.Fields {
		sb.WriteString(indent)
		sb.WriteString("  ")
		switch {
		case f.Repeated:
			sb.WriteString("repeated ")
		case f.Required():
			sb.WriteString("required ")
		default:
			sb.WriteString("optional ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		if f.Type.Kind == TypeSpecMessage || f.Type.Kind == TypeSpecDocument {
			if f.Type.Kind == TypeSpecDocument {
				sb.WriteString("document ")
			}
			writeSchema(sb, f.Type.Message, depth+1)
		} else {
			sb.WriteString(f.Type.String())
			if f.Default != nil {
				sb.WriteString(" = ")
				sb.WriteString(formatScalar(f.Default))
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

func (s *Schema) buildIndex() {
	s.index = make(map[string]*FieldDef, len(s.Fields))
	for _, f := range s.Fields {
		s.index[f.Name] = f
		if f.Type.Message != nil && f.Type.Message.index == nil {
			f.Type.Message.buildIndex()
		}
	}
}

// FieldNames returns the declared field names, sorted.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// ============================================================
// Type Spec Helpers
// ============================================================

// PrimitiveType returns a TypeSpec for a scalar type name.
func PrimitiveType(name string) TypeSpec {
	switch name {
	case "float", "double":
		return TypeSpec{Kind: TypeSpecFloat}
	case "int", "int32", "uint32", "int64", "uint64":
		return TypeSpec{Kind: TypeSpecInt}
	case "bool":
		return TypeSpec{Kind: TypeSpecBool}
	default:
		return TypeSpec{Kind: TypeSpecString}
	}
}

// EnumType returns an enum type over a closed set of symbolic names.
func EnumType(values ...string) TypeSpec {
	return TypeSpec{Kind: TypeSpecEnum, Enum: values}
}

// MessageType returns a nested-block type decoded against s.
func MessageType(s *Schema) TypeSpec {
	return TypeSpec{Kind: TypeSpecMessage, Message: s}
}

// DocumentType returns a string type whose contents are a nested document
// decoded against s.
func DocumentType(s *Schema) TypeSpec {
	return TypeSpec{Kind: TypeSpecDocument, Message: s}
}

// ============================================================
// Schema Builder
// ============================================================

// NewSchema creates a schema from field definitions.
func NewSchema(name string, fields ...*FieldDef) *Schema {
	s := &Schema{Name: name, Fields: fields}
	s.buildIndex()
	s.ComputeHash()
	return s
}

// NewField creates a field definition. Fields are required unless marked
// optional, repeated, or given a default.
func NewField(name string, typ TypeSpec, opts ...FieldOption) *FieldDef {
	f := &FieldDef{Name: name, Type: typ}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FieldOption is a function that modifies a field definition.
type FieldOption func(*FieldDef)

// WithOptional marks a field as optional.
func WithOptional() FieldOption {
	return func(f *FieldDef) {
		f.Optional = true
	}
}

// WithRepeated marks a field as occurring zero or more times.
func WithRepeated() FieldOption {
	return func(f *FieldDef) {
		f.Repeated = true
	}
}

// WithDefault sets a default value for a field.
func WithDefault(v *Value) FieldOption {
	return func(f *FieldDef) {
		f.Default = v
	}
}
