// Package spawn hands loaded entities to a donburi ECS world.
//
// Each Entity becomes one root world entity plus one world entity per
// node. Reference nodes carry a Reference component for the scripting
// collaborator to resolve; embedded nodes carry their decoded Payload.
package spawn

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/Neumenon/gameobject/gameobject"
)

// Root identifies the world entity standing for a whole document.
type Root struct {
	Path     string
	UID      uuid.UUID
	Children []donburi.Entity
}

// Identity names a node within its document.
type Identity struct {
	ID    string
	UID   uuid.UUID
	Index int
	Root  donburi.Entity
}

// Reference points at an external component document.
type Reference struct {
	Component  string
	Properties []gameobject.Property
}

// Payload is an embedded component's decoded data.
type Payload struct {
	Type   string
	Record *gameobject.Record
}

// Component types.
var (
	RootComponent      = donburi.NewComponentType[Root]()
	IdentityComponent  = donburi.NewComponentType[Identity]()
	TransformComponent = donburi.NewComponentType[gameobject.Transform]()
	ReferenceComponent = donburi.NewComponentType[Reference]()
	PayloadComponent   = donburi.NewComponentType[Payload]()
)

// Result lists the world entities created by one Spawn call.
type Result struct {
	Root  donburi.Entity
	Nodes []donburi.Entity // Same order as the Entity's nodes
}

// Spawn creates the world entities for ent. The entity is not modified.
func Spawn(w donburi.World, ent *gameobject.Entity) Result {
	root := w.Create(RootComponent)
	res := Result{Root: root, Nodes: make([]donburi.Entity, 0, ent.Len())}

	for _, n := range ent.Nodes {
		var e donburi.Entity
		switch n.Kind {
		case gameobject.NodeReference:
			e = w.Create(IdentityComponent, TransformComponent, ReferenceComponent)
			ReferenceComponent.SetValue(w.Entry(e), Reference{
				Component:  n.Component,
				Properties: n.Properties,
			})
		default:
			e = w.Create(IdentityComponent, TransformComponent, PayloadComponent)
			PayloadComponent.SetValue(w.Entry(e), Payload{Type: n.Type, Record: n.Payload})
		}

		entry := w.Entry(e)
		IdentityComponent.SetValue(entry, Identity{ID: n.ID, UID: n.UID, Index: n.Index, Root: root})
		TransformComponent.SetValue(entry, n.Transform)
		res.Nodes = append(res.Nodes, e)
	}

	RootComponent.SetValue(w.Entry(root), Root{
		Path:     ent.Path,
		UID:      ent.UID,
		Children: append([]donburi.Entity(nil), res.Nodes...),
	})
	return res
}

var (
	nodeQuery      = donburi.NewQuery(filter.Contains(IdentityComponent))
	payloadQuery   = donburi.NewQuery(filter.Contains(IdentityComponent, PayloadComponent))
	referenceQuery = donburi.NewQuery(filter.Contains(IdentityComponent, ReferenceComponent))
)

// Find returns the world entry of the node with the given UID.
func Find(w donburi.World, uid uuid.UUID) (*donburi.Entry, bool) {
	var found *donburi.Entry
	nodeQuery.Each(w, func(entry *donburi.Entry) {
		if found == nil && IdentityComponent.Get(entry).UID == uid {
			found = entry
		}
	})
	return found, found != nil
}

// EachOfType calls fn for every spawned embedded node of one type.
func EachOfType(w donburi.World, typeName string, fn func(*donburi.Entry, *Payload)) {
	payloadQuery.Each(w, func(entry *donburi.Entry) {
		if p := PayloadComponent.Get(entry); p.Type == typeName {
			fn(entry, p)
		}
	})
}

// EachReference calls fn for every spawned reference node.
func EachReference(w donburi.World, fn func(*donburi.Entry, *Reference)) {
	referenceQuery.Each(w, func(entry *donburi.Entry) {
		fn(entry, ReferenceComponent.Get(entry))
	})
}

// Despawn removes the root entity created by Spawn and all its nodes.
func Despawn(w donburi.World, root donburi.Entity) {
	if !w.Valid(root) {
		return
	}
	entry := w.Entry(root)
	if entry.HasComponent(RootComponent) {
		for _, child := range RootComponent.Get(entry).Children {
			if w.Valid(child) {
				w.Remove(child)
			}
		}
	}
	w.Remove(root)
}
