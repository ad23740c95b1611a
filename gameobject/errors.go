package gameobject

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies load failures. Every kind aborts the whole load.
type ErrorKind uint8

const (
	KindMalformedDocument ErrorKind = iota + 1
	KindUnregisteredType
	KindMissingRequiredField
	KindInvalidEnumValue
	KindDuplicateNodeID
	KindInvalidFieldValue
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformedDocument:
		return "MalformedDocument"
	case KindUnregisteredType:
		return "UnregisteredType"
	case KindMissingRequiredField:
		return "MissingRequiredField"
	case KindInvalidEnumValue:
		return "InvalidEnumValue"
	case KindDuplicateNodeID:
		return "DuplicateNodeId"
	case KindInvalidFieldValue:
		return "InvalidFieldValue"
	default:
		return "Unknown"
	}
}

// Code returns the machine-readable error code.
func (k ErrorKind) Code() string {
	switch k {
	case KindMalformedDocument:
		return "malformed_document"
	case KindUnregisteredType:
		return "unregistered_type"
	case KindMissingRequiredField:
		return "missing_required_field"
	case KindInvalidEnumValue:
		return "invalid_enum_value"
	case KindDuplicateNodeID:
		return "duplicate_node_id"
	case KindInvalidFieldValue:
		return "invalid_field_value"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching on the kind of a *LoadError or *DecodeError.
var (
	ErrMalformedDocument    = kindError(KindMalformedDocument)
	ErrUnregisteredType     = kindError(KindUnregisteredType)
	ErrMissingRequiredField = kindError(KindMissingRequiredField)
	ErrInvalidEnumValue     = kindError(KindInvalidEnumValue)
	ErrDuplicateNodeID      = kindError(KindDuplicateNodeID)
	ErrInvalidFieldValue    = kindError(KindInvalidFieldValue)

	// ErrNotFound is returned by Registry.Lookup for unknown type names.
	ErrNotFound = errors.New("type not registered")
)

type kindError ErrorKind

func (e kindError) Error() string {
	return ErrorKind(e).String()
}

// DecodeError is a payload decoding failure. Path locates the field inside
// the payload, e.g. "textures[1].sampler".
type DecodeError struct {
	Kind  ErrorKind
	Type  string // Component type name being decoded
	Path  string
	Value string // Offending literal, if any
	Pos   Position
	Err   error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Type != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Type)
	}
	if e.Path != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Path)
	}
	if e.Value != "" {
		fmt.Fprintf(&sb, " value %q", e.Value)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	if e.Pos.Line > 0 {
		sb.WriteString(" at ")
		sb.WriteString(e.Pos.String())
	}
	return sb.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	k, ok := target.(kindError)
	return ok && ErrorKind(k) == e.Kind
}

// LoadError is the single error value returned by Load and Build. It names
// the node by id, or by block index when the id is not known yet.
type LoadError struct {
	Kind   ErrorKind
	NodeID string // Empty when the failing block has no id yet
	Index  int    // Zero-based top-level block index; -1 for document-level errors
	Type   string // Component type name, for embedded components
	Field  string // Originating field, dotted path into payloads
	Value  string // Offending literal, if any
	Pos    Position
	Err    error
}

func (e *LoadError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	switch {
	case e.NodeID != "":
		fmt.Fprintf(&sb, " in node %q", e.NodeID)
	case e.Index >= 0:
		fmt.Fprintf(&sb, " in block #%d", e.Index)
	}
	if e.Type != "" {
		fmt.Fprintf(&sb, " (type %s)", e.Type)
	}
	if e.Field != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Field)
	}
	if e.Value != "" {
		fmt.Fprintf(&sb, " value %q", e.Value)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	if e.Pos.Line > 0 && !e.causePositioned() {
		sb.WriteString(" at ")
		sb.WriteString(e.Pos.String())
	}
	return sb.String()
}

// causePositioned reports whether the wrapped error already prints a position.
func (e *LoadError) causePositioned() bool {
	var pe *ParseError
	if errors.As(e.Err, &pe) {
		return true
	}
	var de *DecodeError
	return errors.As(e.Err, &de) && de.Pos.Line > 0
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	k, ok := target.(kindError)
	return ok && ErrorKind(k) == e.Kind
}

// Code returns the machine-readable code of the error kind.
func (e *LoadError) Code() string {
	return e.Kind.Code()
}

// nodeError lifts a decode or parse failure to a LoadError for a node.
func nodeError(err error, id string, index int, typeName, field string) *LoadError {
	le := &LoadError{NodeID: id, Index: index, Type: typeName, Field: field, Err: err}

	var de *DecodeError
	var pe *ParseError
	switch {
	case errors.As(err, &de):
		le.Kind = de.Kind
		le.Value = de.Value
		le.Pos = de.Pos
		if de.Path != "" {
			le.Field = joinPath(field, de.Path)
		}
		if de.Type != "" {
			le.Type = de.Type
		}
		le.Err = de.Err
	case errors.As(err, &pe):
		le.Kind = KindMalformedDocument
		le.Pos = pe.Pos
	default:
		le.Kind = KindInvalidFieldValue
	}
	return le
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	if field == "" || strings.HasPrefix(field, "[") {
		return base + field
	}
	return base + "." + field
}
