package gameobject

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Built-in component type names.
const (
	TypeSprite            = "sprite"
	TypeMesh              = "mesh"
	TypeModel             = "model"
	TypeLabel             = "label"
	TypeSound             = "sound"
	TypeCamera            = "camera"
	TypeFactory           = "factory"
	TypeCollectionFactory = "collectionfactory"
	TypeCollectionProxy   = "collectionproxy"
	TypeSpawnPoint        = "spawnpoint"
	TypeCollisionObject   = "collisionobject"
)

// Enum domains.
var (
	BlendModes = []string{
		"BLEND_MODE_ALPHA",
		"BLEND_MODE_ADD",
		"BLEND_MODE_ADD_ALPHA",
		"BLEND_MODE_MULT",
		"BLEND_MODE_SCREEN",
	}
	SizeModes      = []string{"SIZE_MODE_MANUAL", "SIZE_MODE_AUTO"}
	PrimitiveTypes = []string{"PRIMITIVE_LINES", "PRIMITIVE_TRIANGLES", "PRIMITIVE_TRIANGLE_STRIP"}
	Pivots         = []string{
		"PIVOT_CENTER", "PIVOT_N", "PIVOT_NE", "PIVOT_E", "PIVOT_SE",
		"PIVOT_S", "PIVOT_SW", "PIVOT_W", "PIVOT_NW",
	}
	CollisionObjectTypes = []string{
		"COLLISION_OBJECT_TYPE_DYNAMIC",
		"COLLISION_OBJECT_TYPE_KINEMATIC",
		"COLLISION_OBJECT_TYPE_STATIC",
		"COLLISION_OBJECT_TYPE_TRIGGER",
	}
	ShapeTypes = []string{"TYPE_SPHERE", "TYPE_BOX", "TYPE_CAPSULE", "TYPE_HULL"}
)

// Shared message schemas.
var (
	Vector3Schema = NewSchema("Vector3",
		NewField("x", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("y", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("z", PrimitiveType("float"), WithDefault(Float(0))),
	)

	Vector4Schema = NewSchema("Vector4",
		NewField("x", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("y", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("z", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("w", PrimitiveType("float"), WithDefault(Float(0))),
	)

	QuatSchema = NewSchema("Quat",
		NewField("x", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("y", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("z", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("w", PrimitiveType("float"), WithDefault(Float(1))),
	)

	TextureBindingSchema = NewSchema("TextureBinding",
		NewField("sampler", PrimitiveType("string")),
		NewField("texture", PrimitiveType("string")),
	)
)

func builtinSchemas() []*Schema {
	sprite := NewSchema(TypeSprite,
		NewField("tile_set", PrimitiveType("string"), WithOptional()),
		NewField("default_animation", PrimitiveType("string")),
		NewField("material", PrimitiveType("string"), WithDefault(Str("/builtins/materials/sprite.material"))),
		NewField("blend_mode", EnumType(BlendModes...), WithDefault(Enum("BLEND_MODE_ALPHA"))),
		NewField("slice9", MessageType(Vector4Schema), WithOptional()),
		NewField("size", MessageType(Vector3Schema), WithOptional()),
		NewField("size_mode", EnumType(SizeModes...), WithDefault(Enum("SIZE_MODE_AUTO"))),
		NewField("offset", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("playback_rate", PrimitiveType("float"), WithDefault(Float(1))),
		NewField("textures", MessageType(TextureBindingSchema), WithRepeated()),
	)

	mesh := NewSchema(TypeMesh,
		NewField("material", PrimitiveType("string")),
		NewField("vertices", PrimitiveType("string")),
		NewField("textures", PrimitiveType("string"), WithRepeated()),
		NewField("primitive_type", EnumType(PrimitiveTypes...), WithDefault(Enum("PRIMITIVE_TRIANGLES"))),
		NewField("position_stream", PrimitiveType("string"), WithOptional()),
		NewField("normal_stream", PrimitiveType("string"), WithOptional()),
	)

	modelMaterial := NewSchema("ModelMaterial",
		NewField("name", PrimitiveType("string")),
		NewField("material", PrimitiveType("string")),
		NewField("textures", MessageType(TextureBindingSchema), WithRepeated()),
	)
	model := NewSchema(TypeModel,
		NewField("mesh", PrimitiveType("string")),
		NewField("name", PrimitiveType("string"), WithDefault(Str("unnamed"))),
		NewField("material", PrimitiveType("string"), WithOptional()),
		NewField("textures", PrimitiveType("string"), WithRepeated()),
		NewField("materials", MessageType(modelMaterial), WithRepeated()),
		NewField("skeleton", PrimitiveType("string"), WithOptional()),
		NewField("animations", PrimitiveType("string"), WithOptional()),
		NewField("default_animation", PrimitiveType("string"), WithOptional()),
		NewField("create_go_bones", PrimitiveType("bool"), WithDefault(Bool(true))),
	)

	label := NewSchema(TypeLabel,
		NewField("size", MessageType(Vector4Schema), WithOptional()),
		NewField("color", MessageType(Vector4Schema), WithOptional()),
		NewField("outline", MessageType(Vector4Schema), WithOptional()),
		NewField("shadow", MessageType(Vector4Schema), WithOptional()),
		NewField("leading", PrimitiveType("float"), WithDefault(Float(1))),
		NewField("tracking", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("pivot", EnumType(Pivots...), WithDefault(Enum("PIVOT_CENTER"))),
		NewField("blend_mode", EnumType(BlendModes[:4]...), WithDefault(Enum("BLEND_MODE_ALPHA"))),
		NewField("line_break", PrimitiveType("bool"), WithDefault(Bool(false))),
		NewField("text", PrimitiveType("string"), WithDefault(Str(""))),
		NewField("font", PrimitiveType("string")),
		NewField("material", PrimitiveType("string")),
	)

	sound := NewSchema(TypeSound,
		NewField("sound", PrimitiveType("string")),
		NewField("looping", PrimitiveType("int"), WithDefault(Int(0))),
		NewField("group", PrimitiveType("string"), WithDefault(Str("master"))),
		NewField("gain", PrimitiveType("float"), WithDefault(Float(1))),
		NewField("pan", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("speed", PrimitiveType("float"), WithDefault(Float(1))),
		NewField("loopcount", PrimitiveType("int"), WithDefault(Int(0))),
	)

	camera := NewSchema(TypeCamera,
		NewField("aspect_ratio", PrimitiveType("float")),
		NewField("fov", PrimitiveType("float")),
		NewField("near_z", PrimitiveType("float")),
		NewField("far_z", PrimitiveType("float")),
		NewField("auto_aspect_ratio", PrimitiveType("int"), WithDefault(Int(0))),
		NewField("orthographic_projection", PrimitiveType("int"), WithDefault(Int(0))),
		NewField("orthographic_zoom", PrimitiveType("float"), WithDefault(Float(1))),
	)

	factory := func(name string) *Schema {
		return NewSchema(name,
			NewField("prototype", PrimitiveType("string")),
			NewField("load_dynamically", PrimitiveType("bool"), WithDefault(Bool(false))),
			NewField("dynamic_prototype", PrimitiveType("bool"), WithDefault(Bool(false))),
		)
	}

	collectionProxy := NewSchema(TypeCollectionProxy,
		NewField("collection", PrimitiveType("string")),
		NewField("exclude", PrimitiveType("bool"), WithDefault(Bool(false))),
	)

	spawnPoint := NewSchema(TypeSpawnPoint,
		NewField("prototype", PrimitiveType("string")),
	)

	shape := NewSchema("Shape",
		NewField("shape_type", EnumType(ShapeTypes...)),
		NewField("position", MessageType(Vector3Schema), WithOptional()),
		NewField("rotation", MessageType(QuatSchema), WithOptional()),
		NewField("index", PrimitiveType("int"), WithDefault(Int(0))),
		NewField("count", PrimitiveType("int"), WithDefault(Int(0))),
		NewField("id", PrimitiveType("string"), WithOptional()),
	)
	collisionShape := NewSchema("CollisionShape",
		NewField("shapes", MessageType(shape), WithRepeated()),
		NewField("data", PrimitiveType("float"), WithRepeated()),
	)
	collisionObject := NewSchema(TypeCollisionObject,
		NewField("collision_shape", PrimitiveType("string"), WithDefault(Str(""))),
		NewField("type", EnumType(CollisionObjectTypes...)),
		NewField("mass", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("friction", PrimitiveType("float"), WithDefault(Float(0.1))),
		NewField("restitution", PrimitiveType("float"), WithDefault(Float(0.5))),
		NewField("group", PrimitiveType("string"), WithDefault(Str("default"))),
		NewField("mask", PrimitiveType("string"), WithRepeated()),
		NewField("embedded_collision_shape", MessageType(collisionShape), WithOptional()),
		NewField("linear_damping", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("angular_damping", PrimitiveType("float"), WithDefault(Float(0))),
		NewField("locked_rotation", PrimitiveType("bool"), WithDefault(Bool(false))),
		NewField("bullet", PrimitiveType("bool"), WithDefault(Bool(false))),
		NewField("event_collision", PrimitiveType("bool"), WithDefault(Bool(true))),
		NewField("event_contact", PrimitiveType("bool"), WithDefault(Bool(true))),
		NewField("event_trigger", PrimitiveType("bool"), WithDefault(Bool(true))),
	)

	return []*Schema{
		sprite,
		mesh,
		model,
		label,
		sound,
		camera,
		factory(TypeFactory),
		factory(TypeCollectionFactory),
		collectionProxy,
		spawnPoint,
		collisionObject,
	}
}

// ============================================================
// Typed views
// ============================================================

// TextureBinding binds a texture resource to a material sampler.
type TextureBinding struct {
	Sampler string
	Texture string
}

// Sprite is the typed view of a decoded sprite payload.
type Sprite struct {
	TileSet          string
	DefaultAnimation string
	Material         string
	BlendMode        string
	SizeMode         string
	Size             *mgl64.Vec3 // nil when not given
	Offset           float64
	PlaybackRate     float64
	Textures         []TextureBinding
}

// AsSprite returns the typed view of a sprite payload.
func AsSprite(r *Record) (*Sprite, bool) {
	if r == nil || r.Type != TypeSprite {
		return nil, false
	}
	s := &Sprite{
		TileSet:          r.Str("tile_set"),
		DefaultAnimation: r.Str("default_animation"),
		Material:         r.Str("material"),
		BlendMode:        r.Str("blend_mode"),
		SizeMode:         r.Str("size_mode"),
		Offset:           r.Float("offset"),
		PlaybackRate:     r.Float("playback_rate"),
		Textures:         []TextureBinding{},
	}
	if size := r.Record("size"); size != nil {
		v := vec3(size)
		s.Size = &v
	}
	for _, t := range r.Records("textures") {
		s.Textures = append(s.Textures, TextureBinding{Sampler: t.Str("sampler"), Texture: t.Str("texture")})
	}
	return s, true
}

// Mesh is the typed view of a decoded mesh payload.
type Mesh struct {
	Material       string
	Vertices       string
	Textures       []string
	PrimitiveType  string
	PositionStream string
	NormalStream   string
}

// AsMesh returns the typed view of a mesh payload.
func AsMesh(r *Record) (*Mesh, bool) {
	if r == nil || r.Type != TypeMesh {
		return nil, false
	}
	return &Mesh{
		Material:       r.Str("material"),
		Vertices:       r.Str("vertices"),
		Textures:       r.Strings("textures"),
		PrimitiveType:  r.Str("primitive_type"),
		PositionStream: r.Str("position_stream"),
		NormalStream:   r.Str("normal_stream"),
	}, true
}

func vec3(r *Record) mgl64.Vec3 {
	return mgl64.Vec3{r.Float("x"), r.Float("y"), r.Float("z")}
}
