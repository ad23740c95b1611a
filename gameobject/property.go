package gameobject

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Script property types.
const (
	PropertyNumber  = "PROPERTY_TYPE_NUMBER"
	PropertyHash    = "PROPERTY_TYPE_HASH"
	PropertyURL     = "PROPERTY_TYPE_URL"
	PropertyVector3 = "PROPERTY_TYPE_VECTOR3"
	PropertyVector4 = "PROPERTY_TYPE_VECTOR4"
	PropertyQuat    = "PROPERTY_TYPE_QUAT"
	PropertyBoolean = "PROPERTY_TYPE_BOOLEAN"
	PropertyMatrix4 = "PROPERTY_TYPE_MATRIX4"
)

// PropertySchema describes one `properties { }` override block on a
// component reference.
var PropertySchema = NewSchema("ComponentProperty",
	NewField("id", PrimitiveType("string")),
	NewField("value", PrimitiveType("string")),
	NewField("type", EnumType(
		PropertyNumber, PropertyHash, PropertyURL, PropertyVector3,
		PropertyVector4, PropertyQuat, PropertyBoolean, PropertyMatrix4,
	)),
)

const fieldProperties = "properties"

// Property is a script property override carried by a reference node. The
// scripting collaborator applies it when it instantiates the component.
type Property struct {
	ID    string
	Type  string // One of the PROPERTY_TYPE_* names
	Value string // Value as written

	Number float64    // PROPERTY_TYPE_NUMBER
	Bool   bool       // PROPERTY_TYPE_BOOLEAN
	Vector mgl64.Vec4 // PROPERTY_TYPE_VECTOR3 (w = 0) and PROPERTY_TYPE_VECTOR4
	Quat   mgl64.Quat // PROPERTY_TYPE_QUAT
	Matrix mgl64.Mat4 // PROPERTY_TYPE_MATRIX4, column-major
}

// decodeProperties decodes every properties block of a component.
func decodeProperties(b *Block, opts DecodeOptions) ([]Property, []Warning, error) {
	fields := b.All(fieldProperties)
	if len(fields) == 0 {
		return nil, nil, nil
	}

	var warnings []Warning
	props := make([]Property, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		path := fmt.Sprintf("%s[%d]", fieldProperties, i)
		if !f.IsBlock() {
			return nil, warnings, &DecodeError{Kind: KindInvalidFieldValue, Path: path, Value: f.Text, Pos: f.Pos,
				Err: fmt.Errorf("expected block, got %s", f.Kind)}
		}

		rec, w, err := PropertySchema.DecodeWithOptions(f.Block, opts)
		for _, warn := range w {
			warn.Path = joinPath(path, warn.Path)
			warnings = append(warnings, warn)
		}
		if err != nil {
			if de, ok := err.(*DecodeError); ok {
				de.Type = ""
				de.Path = joinPath(path, de.Path)
			}
			return nil, warnings, err
		}

		p := Property{ID: rec.Str("id"), Type: rec.Str("type"), Value: rec.Str("value")}
		if seen[p.ID] {
			return nil, warnings, &DecodeError{Kind: KindInvalidFieldValue, Path: path + ".id", Value: p.ID, Pos: f.Pos,
				Err: fmt.Errorf("duplicate property %q", p.ID)}
		}
		seen[p.ID] = true

		if err := p.parseValue(); err != nil {
			return nil, warnings, &DecodeError{Kind: KindInvalidFieldValue, Path: path + ".value", Value: p.Value,
				Pos: f.Block.Get("value").Pos, Err: err}
		}
		props = append(props, p)
	}
	return props, warnings, nil
}

func (p *Property) parseValue() error {
	switch p.Type {
	case PropertyNumber:
		v, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
		if err != nil {
			return fmt.Errorf("invalid number")
		}
		p.Number = v
	case PropertyBoolean:
		v, err := strconv.ParseBool(strings.TrimSpace(p.Value))
		if err != nil {
			return fmt.Errorf("invalid boolean")
		}
		p.Bool = v
	case PropertyVector3:
		v, err := parseFloats(p.Value, 3)
		if err != nil {
			return err
		}
		p.Vector = mgl64.Vec4{v[0], v[1], v[2], 0}
	case PropertyVector4:
		v, err := parseFloats(p.Value, 4)
		if err != nil {
			return err
		}
		p.Vector = mgl64.Vec4{v[0], v[1], v[2], v[3]}
	case PropertyQuat:
		v, err := parseFloats(p.Value, 4)
		if err != nil {
			return err
		}
		p.Quat = mgl64.Quat{W: v[3], V: mgl64.Vec3{v[0], v[1], v[2]}}
	case PropertyMatrix4:
		v, err := parseFloats(p.Value, 16)
		if err != nil {
			return err
		}
		copy(p.Matrix[:], v)
	}
	// Hash and URL values are opaque strings.
	return nil
}

// parseFloats parses a comma separated list of exactly n floats.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("component %d: invalid number %q", i, strings.TrimSpace(part))
		}
		out[i] = v
	}
	return out, nil
}

// formatProperty writes a property value back in document form.
func formatProperty(p Property) string {
	switch p.Type {
	case PropertyNumber:
		return formatFloat(p.Number)
	case PropertyBoolean:
		return strconv.FormatBool(p.Bool)
	case PropertyVector3:
		return joinFloats(p.Vector[:3])
	case PropertyVector4:
		return joinFloats(p.Vector[:])
	case PropertyQuat:
		return joinFloats([]float64{p.Quat.V[0], p.Quat.V[1], p.Quat.V[2], p.Quat.W})
	case PropertyMatrix4:
		return joinFloats(p.Matrix[:])
	default:
		return p.Value
	}
}

func joinFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, ", ")
}
