package spawn

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/Neumenon/gameobject/gameobject"
)

const flagDoc = `components {
  id: "script"
  component: "/example/examples/flag/flag.script"
}
embedded_components {
  id: "pole"
  type: "sprite"
  data: "default_animation: \"banner\"\n"
  "material: \"/builtins/materials/sprite.material\"\n"
  ""
  position {
    x: -200.0
    y: -201.0
    z: -0.1
  }
}
embedded_components {
  id: "sprite"
  type: "sprite"
  data: "default_animation: \"flag\"\n"
  "material: \"/cloth/materials/cloth.material\"\n"
  ""
}
`

func load(t *testing.T) *gameobject.Entity {
	t.Helper()
	opts := gameobject.DefaultLoadOptions()
	opts.Path = "/example/examples/flag/flag.go"
	ent, err := gameobject.LoadWithOptions([]byte(flagDoc), opts)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return ent
}

func TestSpawn(t *testing.T) {
	ent := load(t)
	w := donburi.NewWorld()

	res := Spawn(w, ent)
	if len(res.Nodes) != 3 {
		t.Fatalf("expected 3 node entities, got %d", len(res.Nodes))
	}
	if got := w.Len(); got != 4 {
		t.Errorf("world has %d entities, want 4", got)
	}

	root := RootComponent.Get(w.Entry(res.Root))
	if root.Path != ent.Path || root.UID != ent.UID || len(root.Children) != 3 {
		t.Errorf("root = %+v", root)
	}

	for i, e := range res.Nodes {
		entry := w.Entry(e)
		id := IdentityComponent.Get(entry)
		if id.ID != ent.Nodes[i].ID || id.Index != i || id.Root != res.Root {
			t.Errorf("node %d identity = %+v", i, id)
		}
	}

	script := w.Entry(res.Nodes[0])
	if !script.HasComponent(ReferenceComponent) || script.HasComponent(PayloadComponent) {
		t.Error("reference node has wrong components")
	}
	if ref := ReferenceComponent.Get(script); ref.Component != "/example/examples/flag/flag.script" {
		t.Errorf("reference = %+v", ref)
	}

	pole := w.Entry(res.Nodes[1])
	if tr := TransformComponent.Get(pole); tr.Position != (mgl64.Vec3{-200, -201, -0.1}) {
		t.Errorf("pole position = %v", tr.Position)
	}
}

func TestEachOfType(t *testing.T) {
	w := donburi.NewWorld()
	Spawn(w, load(t))

	var anims []string
	EachOfType(w, gameobject.TypeSprite, func(_ *donburi.Entry, p *Payload) {
		s, ok := gameobject.AsSprite(p.Record)
		if !ok {
			t.Fatal("payload is not a sprite")
		}
		anims = append(anims, s.DefaultAnimation)
	})
	if len(anims) != 2 {
		t.Fatalf("expected 2 sprites, got %v", anims)
	}

	refs := 0
	EachReference(w, func(_ *donburi.Entry, r *Reference) { refs++ })
	if refs != 1 {
		t.Errorf("expected 1 reference, got %d", refs)
	}

	EachOfType(w, gameobject.TypeMesh, func(*donburi.Entry, *Payload) {
		t.Error("unexpected mesh")
	})
}

func TestFindAndDespawn(t *testing.T) {
	ent := load(t)
	w := donburi.NewWorld()
	first := Spawn(w, ent)

	other := load(t)
	Spawn(w, other)

	node, _ := ent.Node("pole")
	entry, ok := Find(w, node.UID)
	if !ok {
		t.Fatal("Find failed")
	}
	if IdentityComponent.Get(entry).ID != "pole" {
		t.Errorf("found %+v", IdentityComponent.Get(entry))
	}

	Despawn(w, first.Root)
	if w.Valid(first.Root) {
		t.Error("root still valid")
	}
	for _, e := range first.Nodes {
		if w.Valid(e) {
			t.Error("node still valid after Despawn")
		}
	}
	if got := w.Len(); got != 4 {
		t.Errorf("world has %d entities, want 4", got)
	}

	if _, ok := Find(w, gameobject.NodeUID("/nowhere.go", "pole")); ok {
		t.Error("Find matched an unknown UID")
	}
}
