package gameobject

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// EmitOptions configures the text emitter.
type EmitOptions struct {
	// Indent string per nesting level (default: "  ")
	Indent string

	// SplitData writes each line of an embedded data blob as its own
	// string literal, the way the editor saves documents
	SplitData bool
}

// DefaultEmitOptions returns sensible defaults.
func DefaultEmitOptions() EmitOptions {
	return EmitOptions{
		Indent:    "  ",
		SplitData: true,
	}
}

// EncodePayload writes a decoded record back to payload text. Only fields
// present in the source are written, followed by preserved unknown fields,
// so decoding the result yields an equal record.
func EncodePayload(rec *Record) string {
	return EncodePayloadWithOptions(rec, DefaultEmitOptions())
}

// EncodePayloadWithOptions writes a record with custom options.
func EncodePayloadWithOptions(rec *Record, opts EmitOptions) string {
	e := &emitter{opts: opts}
	e.record(rec, 0)
	return e.sb.String()
}

// EmitEntity writes an entity as a game-object document.
func EmitEntity(ent *Entity) string {
	return EmitEntityWithOptions(ent, DefaultEmitOptions())
}

// EmitEntityWithOptions writes an entity with custom options.
func EmitEntityWithOptions(ent *Entity, opts EmitOptions) string {
	e := &emitter{opts: opts}
	for _, n := range ent.Nodes {
		e.node(n)
	}
	return e.sb.String()
}

type emitter struct {
	sb   strings.Builder
	opts EmitOptions
}

func (e *emitter) node(n *Node) {
	if n.Kind == NodeReference {
		e.sb.WriteString(TagComponents)
	} else {
		e.sb.WriteString(TagEmbeddedComponents)
	}
	e.sb.WriteString(" {\n")

	e.scalar(1, fieldID, quote(n.ID))
	switch n.Kind {
	case NodeReference:
		e.scalar(1, fieldComponent, quote(n.Component))
	case NodeEmbedded:
		e.scalar(1, fieldType, quote(n.Type))
		e.data(1, EncodePayloadWithOptions(n.Payload, e.opts))
	}

	e.transform(n.Transform)

	for _, p := range n.Properties {
		e.open(1, fieldProperties)
		e.scalar(2, "id", quote(p.ID))
		e.scalar(2, "value", quote(p.Value))
		e.scalar(2, "type", p.Type)
		e.close(1)
	}
	for _, f := range n.Extra {
		e.field(f, 1)
	}
	e.sb.WriteString("}\n")
}

// transform writes only the sub-blocks that differ from the identity.
func (e *emitter) transform(t Transform) {
	id := IdentityTransform()
	if t.Position != id.Position {
		e.vec3(fieldPosition, t.Position)
	}
	if t.Rotation != id.Rotation {
		e.open(1, fieldRotation)
		e.scalar(2, "x", formatFloat(t.Rotation.V[0]))
		e.scalar(2, "y", formatFloat(t.Rotation.V[1]))
		e.scalar(2, "z", formatFloat(t.Rotation.V[2]))
		e.scalar(2, "w", formatFloat(t.Rotation.W))
		e.close(1)
	}
	if t.Scale != id.Scale {
		e.vec3(fieldScale, t.Scale)
	}
}

func (e *emitter) vec3(name string, v mgl64.Vec3) {
	e.open(1, name)
	e.scalar(2, "x", formatFloat(v[0]))
	e.scalar(2, "y", formatFloat(v[1]))
	e.scalar(2, "z", formatFloat(v[2]))
	e.close(1)
}

// data writes a payload blob, split at line ends when configured.
func (e *emitter) data(depth int, payload string) {
	if !e.opts.SplitData || payload == "" {
		e.scalar(depth, fieldData, quote(payload))
		return
	}
	lines := strings.SplitAfter(payload, "\n")
	e.writeIndent(depth)
	e.sb.WriteString(fieldData)
	e.sb.WriteString(": ")
	for i, line := range lines {
		if line == "" {
			continue
		}
		if i > 0 {
			e.writeIndent(depth)
		}
		e.sb.WriteString(quote(line))
		e.sb.WriteString("\n")
	}
	e.writeIndent(depth)
	e.sb.WriteString("\"\"\n")
}

func (e *emitter) record(rec *Record, depth int) {
	if rec == nil {
		return
	}
	for _, f := range rec.Fields {
		if !f.Set || f.Value == nil {
			continue
		}
		if f.Value.Kind() == KindList {
			for _, v := range f.Value.listVal {
				e.value(f.Def, v, depth)
			}
			continue
		}
		e.value(f.Def, f.Value, depth)
	}
	for _, f := range rec.Unknown {
		e.field(f, depth)
	}
}

func (e *emitter) value(def *FieldDef, v *Value, depth int) {
	if v.Kind() != KindRecord {
		e.scalar(depth, def.Name, formatScalar(v))
		return
	}
	if def.Type.Kind == TypeSpecDocument {
		inner := &emitter{opts: e.opts}
		inner.record(v.recVal, 0)
		e.scalar(depth, def.Name, quote(inner.sb.String()))
		return
	}
	e.open(depth, def.Name)
	e.record(v.recVal, depth+1)
	e.close(depth)
}

// field writes a raw parsed field.
func (e *emitter) field(f *Field, depth int) {
	if f.Kind != LiteralBlock {
		e.scalar(depth, f.Name, formatLiteral(f))
		return
	}
	e.open(depth, f.Name)
	if f.Block != nil {
		for _, c := range f.Block.Fields {
			e.field(c, depth+1)
		}
	}
	e.close(depth)
}

func (e *emitter) scalar(depth int, name, text string) {
	e.writeIndent(depth)
	e.sb.WriteString(name)
	e.sb.WriteString(": ")
	e.sb.WriteString(text)
	e.sb.WriteString("\n")
}

func (e *emitter) open(depth int, name string) {
	e.writeIndent(depth)
	e.sb.WriteString(name)
	e.sb.WriteString(" {\n")
}

func (e *emitter) close(depth int) {
	e.writeIndent(depth)
	e.sb.WriteString("}\n")
}

func (e *emitter) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		e.sb.WriteString(e.opts.Indent)
	}
}

// writeBlock writes a raw block's fields at the given depth.
func writeBlock(sb *strings.Builder, b *Block, depth int, opts EmitOptions) {
	if b == nil {
		return
	}
	e := &emitter{opts: opts}
	for _, f := range b.Fields {
		e.field(f, depth)
	}
	sb.WriteString(e.sb.String())
}

// formatLiteral returns a parsed scalar in document form.
func formatLiteral(f *Field) string {
	if f.Kind == LiteralString {
		return quote(f.Text)
	}
	return f.Text
}

// formatScalar returns a scalar value in document form.
func formatScalar(v *Value) string {
	if v == nil {
		return ""
	}
	switch v.kind {
	case KindString:
		return quote(v.strVal)
	case KindEnum:
		return v.strVal
	case KindFloat:
		return formatFloat(v.floatVal)
	case KindInt:
		return strconv.FormatInt(v.intVal, 10)
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	}
	return ""
}

// formatFloat writes the shortest text that parses back to f, always with
// a decimal point or exponent so it reads as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'E', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// quote returns s as a double-quoted literal. Control bytes are written as
// octal escapes; bytes above 0x7f pass through.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\r':
			sb.WriteString("\\r")
		case '\t':
			sb.WriteString("\\t")
		default:
			if c < 0x20 || c == 0x7f {
				sb.WriteByte('\\')
				sb.WriteByte('0' + c>>6)
				sb.WriteByte('0' + (c>>3)&7)
				sb.WriteByte('0' + c&7)
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
