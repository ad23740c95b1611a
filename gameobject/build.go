package gameobject

import (
	"fmt"
)

// Node block field names.
const (
	fieldID        = "id"
	fieldComponent = "component"
	fieldType      = "type"
	fieldData      = "data"
)

var (
	referenceFields = map[string]bool{
		fieldID: true, fieldComponent: true, fieldProperties: true,
		fieldPosition: true, fieldRotation: true, fieldScale: true,
	}
	embeddedFields = map[string]bool{
		fieldID: true, fieldType: true, fieldData: true,
		fieldPosition: true, fieldRotation: true, fieldScale: true,
	}
)

// LoadOptions configures Load and Build.
type LoadOptions struct {
	// Path of the document, used for node UIDs and messages. Optional.
	Path string

	// Registry resolves embedded component types (default: DefaultRegistry).
	Registry *Registry

	// MaxDepth limits nesting across blocks and payload documents.
	MaxDepth int

	// Strict rejects unknown fields instead of preserving them.
	Strict bool
}

// DefaultLoadOptions returns sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Registry: DefaultRegistry(),
		MaxDepth: DefaultMaxDepth,
	}
}

func (o LoadOptions) normalized() LoadOptions {
	if o.Registry == nil {
		o.Registry = DefaultRegistry()
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

func (o LoadOptions) decodeOptions() DecodeOptions {
	return DecodeOptions{MaxDepth: o.MaxDepth, Strict: o.Strict}
}

// Load parses and builds a document with default options.
func Load(data []byte) (*Entity, error) {
	return LoadWithOptions(data, DefaultLoadOptions())
}

// LoadWithOptions parses and builds a document. The returned error is
// always a *LoadError; no partial entity is ever returned.
func LoadWithOptions(data []byte, opts LoadOptions) (*Entity, error) {
	opts = opts.normalized()
	doc, err := ParseWithOptions(string(data), ParseOptions{MaxDepth: opts.MaxDepth})
	if err != nil {
		le := &LoadError{Kind: KindMalformedDocument, Index: -1, Err: err}
		if pe, ok := err.(*ParseError); ok {
			le.Pos = pe.Pos
		}
		return nil, le
	}
	return Build(doc, opts)
}

// builder holds the state of one Build call.
type builder struct {
	opts     LoadOptions
	entity   *Entity
	warnings []Warning
}

// Build assembles parsed top-level blocks into an Entity. Nodes keep
// document order; ids must be unique across both node kinds.
func Build(doc *Document, opts LoadOptions) (*Entity, error) {
	opts = opts.normalized()
	b := &builder{
		opts: opts,
		entity: &Entity{
			Path:  opts.Path,
			UID:   EntityUID(opts.Path),
			Nodes: make([]*Node, 0, len(doc.Blocks)),
			byID:  make(map[string]*Node, len(doc.Blocks)),
		},
	}

	for i, blk := range doc.Blocks {
		n, err := b.buildNode(i, blk)
		if err != nil {
			return nil, err
		}
		b.entity.Nodes = append(b.entity.Nodes, n)
		b.entity.byID[n.ID] = n
	}

	b.entity.Warnings = b.warnings
	return b.entity, nil
}

func (b *builder) buildNode(index int, tag *Field) (*Node, error) {
	blk := tag.Block
	if blk == nil {
		blk = &Block{Pos: tag.Pos}
	}

	id, err := b.stringField(blk, fieldID, "", index, true)
	if err != nil {
		return nil, err
	}
	if _, dup := b.entity.byID[id]; dup {
		return nil, &LoadError{
			Kind:   KindDuplicateNodeID,
			NodeID: id,
			Index:  index,
			Field:  fieldID,
			Value:  id,
			Pos:    blk.Get(fieldID).Pos,
			Err:    fmt.Errorf("id %q already used", id),
		}
	}

	if de := checkTransform(blk); de != nil {
		return nil, nodeError(de, id, index, "", "")
	}

	n := &Node{
		ID:        id,
		UID:       NodeUID(b.opts.Path, id),
		Index:     index,
		Transform: ResolveTransform(blk),
	}

	switch tag.Name {
	case TagComponents:
		n.Kind = NodeReference
		if err := b.buildReference(n, blk); err != nil {
			return nil, err
		}
		if err := b.collectExtra(n, blk, referenceFields); err != nil {
			return nil, err
		}
	case TagEmbeddedComponents:
		n.Kind = NodeEmbedded
		if err := b.buildEmbedded(n, blk); err != nil {
			return nil, err
		}
		if err := b.collectExtra(n, blk, embeddedFields); err != nil {
			return nil, err
		}
	default:
		return nil, &LoadError{Kind: KindMalformedDocument, Index: index, Pos: tag.Pos,
			Err: fmt.Errorf("unknown top-level tag %q", tag.Name)}
	}
	return n, nil
}

// buildReference fills a reference node. The referenced document is not
// opened; resolving it belongs to the asset collaborator.
func (b *builder) buildReference(n *Node, blk *Block) error {
	path, err := b.stringField(blk, fieldComponent, n.ID, n.Index, true)
	if err != nil {
		return err
	}
	n.Component = path

	props, warnings, err := decodeProperties(blk, b.opts.decodeOptions())
	b.addWarnings(n.ID, "", warnings)
	if err != nil {
		return nodeError(err, n.ID, n.Index, "", "")
	}
	n.Properties = props
	return nil
}

// buildEmbedded decodes the node's data blob against its registered type.
func (b *builder) buildEmbedded(n *Node, blk *Block) error {
	typeName, err := b.stringField(blk, fieldType, n.ID, n.Index, true)
	if err != nil {
		return err
	}
	n.Type = typeName

	schema, err := b.opts.Registry.Lookup(typeName)
	if err != nil {
		return &LoadError{
			Kind:   KindUnregisteredType,
			NodeID: n.ID,
			Index:  n.Index,
			Type:   typeName,
			Field:  fieldType,
			Value:  typeName,
			Pos:    blk.Get(fieldType).Pos,
			Err:    err,
		}
	}

	raw := &Block{Pos: blk.Pos}
	if data := blk.All(fieldData); len(data) > 0 {
		if len(data) > 1 {
			return &LoadError{Kind: KindInvalidFieldValue, NodeID: n.ID, Index: n.Index, Type: typeName,
				Field: fieldData, Pos: data[1].Pos, Err: fmt.Errorf("non-repeated field %q given %d times", fieldData, len(data))}
		}
		if data[0].Kind != LiteralString {
			return &LoadError{Kind: KindInvalidFieldValue, NodeID: n.ID, Index: n.Index, Type: typeName,
				Field: fieldData, Pos: data[0].Pos, Err: fmt.Errorf("expected string, got %s", data[0].Kind)}
		}
		raw, err = parseBlob(data[0], 1, b.opts.MaxDepth)
		if err != nil {
			return nodeError(err, n.ID, n.Index, typeName, fieldData)
		}
	}

	rec, warnings, err := schema.decodeAt(raw, b.opts.decodeOptions(), 1)
	b.addWarnings(n.ID, fieldData, warnings)
	if err != nil {
		return nodeError(err, n.ID, n.Index, typeName, fieldData)
	}
	n.Payload = rec
	return nil
}

// stringField reads a singular string field of a node block.
func (b *builder) stringField(blk *Block, name, id string, index int, required bool) (string, error) {
	fields := blk.All(name)
	switch {
	case len(fields) == 0:
		if !required {
			return "", nil
		}
		return "", &LoadError{Kind: KindMissingRequiredField, NodeID: id, Index: index, Field: name, Pos: blk.Pos,
			Err: fmt.Errorf("required field %q missing", name)}
	case len(fields) > 1:
		return "", &LoadError{Kind: KindInvalidFieldValue, NodeID: id, Index: index, Field: name, Pos: fields[1].Pos,
			Err: fmt.Errorf("non-repeated field %q given %d times", name, len(fields))}
	}

	f := fields[0]
	if f.Kind != LiteralString {
		return "", &LoadError{Kind: KindInvalidFieldValue, NodeID: id, Index: index, Field: name, Value: f.Text, Pos: f.Pos,
			Err: fmt.Errorf("expected string, got %s", f.Kind)}
	}
	if f.Text == "" && required {
		return "", &LoadError{Kind: KindMissingRequiredField, NodeID: id, Index: index, Field: name, Pos: f.Pos,
			Err: fmt.Errorf("field %q is empty", name)}
	}
	return f.Text, nil
}

// collectExtra preserves node-level fields the loader does not interpret.
func (b *builder) collectExtra(n *Node, blk *Block, known map[string]bool) error {
	for _, f := range blk.Fields {
		if known[f.Name] {
			continue
		}
		if b.opts.Strict {
			return &LoadError{Kind: KindInvalidFieldValue, NodeID: n.ID, Index: n.Index, Type: n.Type, Field: f.Name, Pos: f.Pos,
				Err: fmt.Errorf("unknown field %q", f.Name)}
		}
		n.Extra = append(n.Extra, f)
		b.warnings = append(b.warnings, Warning{NodeID: n.ID, Path: f.Name, Message: "unknown field preserved", Pos: f.Pos})
	}
	return nil
}

func (b *builder) addWarnings(id, prefix string, warnings []Warning) {
	for _, w := range warnings {
		w.NodeID = id
		if prefix != "" {
			w.Path = joinPath(prefix, w.Path)
		}
		b.warnings = append(b.warnings, w)
	}
}
