package gameobject

import (
	"github.com/google/uuid"
)

// NodeKind distinguishes reference nodes from embedded nodes.
type NodeKind uint8

const (
	NodeReference NodeKind = iota // components { component: "/path" }
	NodeEmbedded                  // embedded_components { type: "..." data: "..." }
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeReference:
		return "reference"
	case NodeEmbedded:
		return "embedded"
	default:
		return "unknown"
	}
}

// Node is one child of an Entity.
type Node struct {
	ID        string
	UID       uuid.UUID // Stable across loads of the same document path
	Index     int       // Position among the document's top-level blocks
	Kind      NodeKind
	Transform Transform

	// Reference nodes
	Component  string     // Path of the external component document
	Properties []Property // Script property overrides

	// Embedded nodes
	Type    string  // Component type name
	Payload *Record // Decoded, schema-checked payload

	// Fields of the node block this loader does not interpret.
	Extra []*Field
}

// IsReference reports whether the node points at an external component.
func (n *Node) IsReference() bool {
	return n.Kind == NodeReference
}

// Property returns the override with the given id.
func (n *Node) Property(id string) (Property, bool) {
	for _, p := range n.Properties {
		if p.ID == id {
			return p, true
		}
	}
	return Property{}, false
}

// Entity is the graph produced by one document load. It is never modified
// after Build returns.
type Entity struct {
	Path     string    // Document path the entity was loaded from, may be empty
	UID      uuid.UUID // Namespace for node UIDs
	Nodes    []*Node   // Document order
	Warnings []Warning

	byID map[string]*Node
}

// Node returns the node with the given id.
func (e *Entity) Node(id string) (*Node, bool) {
	n, ok := e.byID[id]
	return n, ok
}

// Len returns the number of nodes.
func (e *Entity) Len() int {
	return len(e.Nodes)
}

// References returns the reference nodes in document order.
func (e *Entity) References() []*Node {
	return e.filter(NodeReference)
}

// Embedded returns the embedded nodes in document order.
func (e *Entity) Embedded() []*Node {
	return e.filter(NodeEmbedded)
}

// OfType returns the embedded nodes of one component type.
func (e *Entity) OfType(typeName string) []*Node {
	var out []*Node
	for _, n := range e.Nodes {
		if n.Kind == NodeEmbedded && n.Type == typeName {
			out = append(out, n)
		}
	}
	return out
}

func (e *Entity) filter(kind NodeKind) []*Node {
	var out []*Node
	for _, n := range e.Nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// entityNamespace is the UUID namespace for entity UIDs.
var entityNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/Neumenon/gameobject"))

// EntityUID returns the UID of the entity loaded from path.
func EntityUID(path string) uuid.UUID {
	return uuid.NewSHA1(entityNamespace, []byte(path))
}

// NodeUID returns the UID of node id within the entity loaded from path.
func NodeUID(path, id string) uuid.UUID {
	return uuid.NewSHA1(EntityUID(path), []byte(id))
}
