package gameobject

import (
	"errors"
	"fmt"
	"strconv"
)

// Warning reports something tolerated during a load, such as an unknown
// field that was preserved without being interpreted.
type Warning struct {
	NodeID  string
	Path    string
	Message string
	Pos     Position
}

func (w Warning) String() string {
	if w.NodeID != "" {
		return fmt.Sprintf("%s: %s: %s at %s", w.NodeID, w.Path, w.Message, w.Pos)
	}
	return fmt.Sprintf("%s: %s at %s", w.Path, w.Message, w.Pos)
}

// DecodeOptions configures payload decoding.
type DecodeOptions struct {
	// MaxDepth limits nesting across blocks and nested documents.
	MaxDepth int

	// Strict rejects fields the schema does not declare instead of
	// preserving them.
	Strict bool
}

// decoder holds the state of one payload decode.
type decoder struct {
	typeName string
	opts     DecodeOptions
	warnings []Warning
}

// Decode decodes a raw payload block as the named type using the default
// registry.
func Decode(typeName string, raw *Block) (*Record, error) {
	return defaultRegistry.Decode(typeName, raw)
}

// Decode looks up the schema for typeName and decodes raw against it.
func (r *Registry) Decode(typeName string, raw *Block) (*Record, error) {
	s, err := r.Lookup(typeName)
	if err != nil {
		return nil, &DecodeError{Kind: KindUnregisteredType, Type: typeName, Err: err}
	}
	return s.Decode(raw)
}

// Decode decodes raw against the schema with default options.
func (s *Schema) Decode(raw *Block) (*Record, error) {
	rec, _, err := s.DecodeWithOptions(raw, DecodeOptions{})
	return rec, err
}

// DecodeWithOptions decodes raw against the schema, returning warnings for
// tolerated unknown fields.
func (s *Schema) DecodeWithOptions(raw *Block, opts DecodeOptions) (*Record, []Warning, error) {
	return s.decodeAt(raw, opts, 0)
}

func (s *Schema) decodeAt(raw *Block, opts DecodeOptions, depth int) (*Record, []Warning, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	d := &decoder{typeName: s.Name, opts: opts}
	if raw == nil {
		raw = &Block{}
	}
	rec, err := d.decodeRecord(s, raw, "", depth)
	if err != nil {
		return nil, d.warnings, err
	}
	return rec, d.warnings, nil
}

func (d *decoder) decodeRecord(s *Schema, b *Block, path string, depth int) (*Record, error) {
	rec := &Record{Type: s.Name, Fields: make([]RecordField, 0, len(s.Fields))}

	for _, f := range b.Fields {
		if s.Field(f.Name) != nil {
			continue
		}
		fieldPath := joinPath(path, f.Name)
		if d.opts.Strict {
			return nil, d.errorf(KindInvalidFieldValue, fieldPath, "", f.Pos, "unknown field %q", f.Name)
		}
		rec.Unknown = append(rec.Unknown, f)
		d.warnings = append(d.warnings, Warning{
			Path:    fieldPath,
			Message: "unknown field preserved",
			Pos:     f.Pos,
		})
	}

	for _, def := range s.Fields {
		fieldPath := joinPath(path, def.Name)
		occurrences := b.All(def.Name)

		if def.Repeated {
			values := make([]*Value, 0, len(occurrences))
			for i, f := range occurrences {
				v, err := d.decodeValue(def, f, fmt.Sprintf("%s[%d]", fieldPath, i), depth)
				if err != nil {
					return nil, err
				}
				values = append(values, v)
			}
			rec.Fields = append(rec.Fields, RecordField{Def: def, Value: List(values...), Set: len(values) > 0})
			continue
		}

		switch len(occurrences) {
		case 0:
			if def.Default != nil {
				rec.Fields = append(rec.Fields, RecordField{Def: def, Value: def.Default})
				continue
			}
			if def.Required() {
				return nil, d.errorf(KindMissingRequiredField, fieldPath, "", b.Pos, "required field %q missing", def.Name)
			}
			rec.Fields = append(rec.Fields, RecordField{Def: def})
		case 1:
			v, err := d.decodeValue(def, occurrences[0], fieldPath, depth)
			if err != nil {
				return nil, err
			}
			rec.Fields = append(rec.Fields, RecordField{Def: def, Value: v, Set: true})
		default:
			return nil, d.errorf(KindInvalidFieldValue, fieldPath, "", occurrences[1].Pos,
				"non-repeated field %q given %d times", def.Name, len(occurrences))
		}
	}

	return rec, nil
}

func (d *decoder) decodeValue(def *FieldDef, f *Field, path string, depth int) (*Value, error) {
	switch def.Type.Kind {
	case TypeSpecString:
		// Numbers are accepted for string fields; older documents write
		// collision groups as bare integers.
		if f.Kind == LiteralString || f.Kind == LiteralNumber {
			return Str(f.Text), nil
		}

	case TypeSpecFloat:
		if v, ok := f.Number(); ok {
			return Float(v), nil
		}

	case TypeSpecInt:
		if f.Kind == LiteralNumber {
			if v, err := strconv.ParseInt(f.Text, 0, 64); err == nil {
				return Int(v), nil
			}
		}

	case TypeSpecBool:
		if f.Kind == LiteralIdent || f.Kind == LiteralNumber {
			switch f.Text {
			case "true", "True", "t", "1":
				return Bool(true), nil
			case "false", "False", "f", "0":
				return Bool(false), nil
			}
		}

	case TypeSpecEnum:
		if f.Kind == LiteralIdent && def.Type.HasEnum(f.Text) {
			return Enum(f.Text), nil
		}
		if f.Kind != LiteralBlock {
			return nil, d.errorf(KindInvalidEnumValue, path, f.Text, f.Pos,
				"expected one of %v", def.Type.Enum)
		}

	case TypeSpecMessage:
		if f.Kind == LiteralBlock {
			if depth+1 > d.opts.MaxDepth {
				return nil, d.errorf(KindMalformedDocument, path, "", f.Pos, "nesting exceeds depth %d", d.opts.MaxDepth)
			}
			rec, err := d.decodeRecord(def.Type.Message, f.Block, path, depth+1)
			if err != nil {
				return nil, err
			}
			return RecordValue(rec), nil
		}

	case TypeSpecDocument:
		if f.Kind == LiteralString {
			block, err := parseBlob(f, depth+1, d.opts.MaxDepth)
			if err != nil {
				var pe *ParseError
				de := &DecodeError{Kind: KindMalformedDocument, Type: d.typeName, Path: path, Pos: f.Pos, Err: err}
				if errors.As(err, &pe) {
					de.Pos = pe.Pos
				}
				return nil, de
			}
			rec, err := d.decodeRecord(def.Type.Message, block, path, depth+1)
			if err != nil {
				return nil, err
			}
			return RecordValue(rec), nil
		}
	}

	return nil, d.errorf(KindInvalidFieldValue, path, f.Text, f.Pos,
		"expected %s, got %s", def.Type, f.Kind)
}

func (d *decoder) errorf(kind ErrorKind, path, value string, pos Position, format string, args ...interface{}) *DecodeError {
	return &DecodeError{
		Kind:  kind,
		Type:  d.typeName,
		Path:  path,
		Value: value,
		Pos:   pos,
		Err:   fmt.Errorf(format, args...),
	}
}
