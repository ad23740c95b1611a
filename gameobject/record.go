package gameobject

import (
	"fmt"
	"math"
)

// ValueKind represents the kind of a decoded value.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindFloat
	KindInt
	KindBool
	KindEnum
	KindRecord
	KindList
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a decoded, schema-typed field value.
type Value struct {
	kind ValueKind

	strVal   string // KindString, KindEnum
	floatVal float64
	intVal   int64
	boolVal  bool
	recVal   *Record
	listVal  []*Value
}

// ============================================================
// Constructors
// ============================================================

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Float creates a float value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Enum creates an enum value holding the symbolic name.
func Enum(name string) *Value {
	return &Value{kind: KindEnum, strVal: name}
}

// RecordValue wraps a nested record.
func RecordValue(r *Record) *Value {
	return &Value{kind: KindRecord, recVal: r}
}

// List creates a list value.
func List(values ...*Value) *Value {
	return &Value{kind: KindList, listVal: values}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() ValueKind {
	return v.kind
}

// AsStr returns the string or enum name.
func (v *Value) AsStr() (string, error) {
	if v == nil || (v.kind != KindString && v.kind != KindEnum) {
		return "", v.mismatch("string")
	}
	return v.strVal, nil
}

// AsFloat returns the numeric value; integers convert.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, v.mismatch("float")
	}
	switch v.kind {
	case KindFloat:
		return v.floatVal, nil
	case KindInt:
		return float64(v.intVal), nil
	default:
		return 0, v.mismatch("float")
	}
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil || v.kind != KindInt {
		return 0, v.mismatch("int")
	}
	return v.intVal, nil
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil || v.kind != KindBool {
		return false, v.mismatch("bool")
	}
	return v.boolVal, nil
}

// AsRecord returns the nested record.
func (v *Value) AsRecord() (*Record, error) {
	if v == nil || v.kind != KindRecord {
		return nil, v.mismatch("record")
	}
	return v.recVal, nil
}

// AsList returns the list elements.
func (v *Value) AsList() ([]*Value, error) {
	if v == nil || v.kind != KindList {
		return nil, v.mismatch("list")
	}
	return v.listVal, nil
}

// Len returns the number of list elements, or 0 for scalars.
func (v *Value) Len() int {
	if v == nil || v.kind != KindList {
		return 0
	}
	return len(v.listVal)
}

func (v *Value) mismatch(want string) error {
	if v == nil {
		return fmt.Errorf("expected %s, got nil", want)
	}
	return fmt.Errorf("expected %s, got %s", want, v.kind)
}

// Equal reports whether two values are deeply equal. NaN floats compare
// equal to each other.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString, KindEnum:
		return v.strVal == o.strVal
	case KindFloat:
		if math.IsNaN(v.floatVal) && math.IsNaN(o.floatVal) {
			return true
		}
		return v.floatVal == o.floatVal
	case KindInt:
		return v.intVal == o.intVal
	case KindBool:
		return v.boolVal == o.boolVal
	case KindRecord:
		return v.recVal.Equal(o.recVal)
	case KindList:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts the value to plain Go data (string, float64, int64,
// bool, map[string]interface{}, []interface{}).
func (v *Value) Interface() interface{} {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindString, KindEnum:
		return v.strVal
	case KindFloat:
		return v.floatVal
	case KindInt:
		return v.intVal
	case KindBool:
		return v.boolVal
	case KindRecord:
		return v.recVal.Map()
	case KindList:
		out := make([]interface{}, len(v.listVal))
		for i, e := range v.listVal {
			out[i] = e.Interface()
		}
		return out
	}
	return nil
}

// ============================================================
// Record
// ============================================================

// RecordField is one schema field of a decoded record.
type RecordField struct {
	Def   *FieldDef
	Value *Value // nil when absent with no default
	Set   bool   // present in the source, as opposed to defaulted
}

// Record is a decoded, schema-checked structure. Fields follow schema order;
// fields the schema does not know are kept verbatim in Unknown.
type Record struct {
	Type    string
	Fields  []RecordField
	Unknown []*Field
}

// Field returns the record field with the given name.
func (r *Record) Field(name string) (RecordField, bool) {
	if r == nil {
		return RecordField{}, false
	}
	for _, f := range r.Fields {
		if f.Def.Name == name {
			return f, true
		}
	}
	return RecordField{}, false
}

// Get returns the value of a field, or nil if it is absent and has no
// default.
func (r *Record) Get(name string) *Value {
	f, ok := r.Field(name)
	if !ok {
		return nil
	}
	return f.Value
}

// IsSet reports whether the field was present in the source document.
func (r *Record) IsSet(name string) bool {
	f, ok := r.Field(name)
	return ok && f.Set
}

// Str returns a string or enum field, or "" if absent.
func (r *Record) Str(name string) string {
	s, _ := r.Get(name).AsStr()
	return s
}

// Float returns a numeric field, or 0 if absent.
func (r *Record) Float(name string) float64 {
	f, _ := r.Get(name).AsFloat()
	return f
}

// Int returns an integer field, or 0 if absent.
func (r *Record) Int(name string) int64 {
	i, _ := r.Get(name).AsInt()
	return i
}

// Bool returns a boolean field, or false if absent.
func (r *Record) Bool(name string) bool {
	b, _ := r.Get(name).AsBool()
	return b
}

// Record returns a nested record field, or nil if absent.
func (r *Record) Record(name string) *Record {
	rec, _ := r.Get(name).AsRecord()
	return rec
}

// Strings returns the elements of a repeated string field.
func (r *Record) Strings(name string) []string {
	list, _ := r.Get(name).AsList()
	out := make([]string, 0, len(list))
	for _, v := range list {
		s, _ := v.AsStr()
		out = append(out, s)
	}
	return out
}

// Records returns the elements of a repeated message field.
func (r *Record) Records(name string) []*Record {
	list, _ := r.Get(name).AsList()
	out := make([]*Record, 0, len(list))
	for _, v := range list {
		if rec, err := v.AsRecord(); err == nil {
			out = append(out, rec)
		}
	}
	return out
}

// Equal compares two records over their schema fields and preserved
// unknown fields.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Type != o.Type || len(r.Fields) != len(o.Fields) || len(r.Unknown) != len(o.Unknown) {
		return false
	}
	for i := range r.Fields {
		a, b := r.Fields[i], o.Fields[i]
		if a.Def.Name != b.Def.Name || a.Set != b.Set || !a.Value.Equal(b.Value) {
			return false
		}
	}
	for i := range r.Unknown {
		if !fieldsEqual(r.Unknown[i], o.Unknown[i]) {
			return false
		}
	}
	return true
}

// Map converts the record to plain Go data. Absent fields are omitted.
func (r *Record) Map() map[string]interface{} {
	if r == nil {
		return nil
	}
	out := make(map[string]interface{}, len(r.Fields))
	for _, f := range r.Fields {
		if f.Value != nil {
			out[f.Def.Name] = f.Value.Interface()
		}
	}
	return out
}

func fieldsEqual(a, b *Field) bool {
	if a.Name != b.Name || a.Kind != b.Kind || a.Text != b.Text {
		return false
	}
	if a.Kind != LiteralBlock {
		return true
	}
	if len(a.Block.Fields) != len(b.Block.Fields) {
		return false
	}
	for i := range a.Block.Fields {
		if !fieldsEqual(a.Block.Fields[i], b.Block.Fields[i]) {
			return false
		}
	}
	return true
}
