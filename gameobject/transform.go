package gameobject

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform places a node relative to its entity.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// IdentityTransform returns the transform used when nothing is specified.
func IdentityTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// IsIdentity reports whether t equals the identity transform exactly.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

// Normalized returns t with a unit rotation. A zero quaternion becomes the
// identity rotation.
func (t Transform) Normalized() Transform {
	if t.Rotation.Len() == 0 {
		t.Rotation = mgl64.QuatIdent()
		return t
	}
	t.Rotation = t.Rotation.Normalize()
	return t
}

// Mat4 returns the transform as translate * rotate * scale.
func (t Transform) Mat4() mgl64.Mat4 {
	n := t.Normalized()
	return mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z()).
		Mul4(n.Rotation.Mat4()).
		Mul4(mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z()))
}

// String returns a compact debug representation.
func (t Transform) String() string {
	return fmt.Sprintf("pos(%g, %g, %g) rot(%g, %g, %g, %g) scale(%g, %g, %g)",
		t.Position[0], t.Position[1], t.Position[2],
		t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2], t.Rotation.W,
		t.Scale[0], t.Scale[1], t.Scale[2])
}

// Transform sub-block names.
const (
	fieldPosition = "position"
	fieldRotation = "rotation"
	fieldScale    = "scale"
)

// ResolveTransform reads the position, rotation and scale sub-blocks of a
// node block. Each axis is resolved on its own: a missing block or axis
// takes the identity value for that axis (0 for position and rotation
// x/y/z, 1 for rotation w and every scale axis). The rotation is not
// normalized, so a given axis is never altered.
func ResolveTransform(b *Block) Transform {
	t := IdentityTransform()
	if b == nil {
		return t
	}

	if pos := b.Get(fieldPosition); pos.IsBlock() {
		t.Position = mgl64.Vec3{
			axis(pos.Block, "x", 0),
			axis(pos.Block, "y", 0),
			axis(pos.Block, "z", 0),
		}
	}
	if rot := b.Get(fieldRotation); rot.IsBlock() {
		t.Rotation = mgl64.Quat{
			W: axis(rot.Block, "w", 1),
			V: mgl64.Vec3{
				axis(rot.Block, "x", 0),
				axis(rot.Block, "y", 0),
				axis(rot.Block, "z", 0),
			},
		}
	}
	if scale := b.Get(fieldScale); scale.IsBlock() {
		t.Scale = mgl64.Vec3{
			axis(scale.Block, "x", 1),
			axis(scale.Block, "y", 1),
			axis(scale.Block, "z", 1),
		}
	}
	return t
}

func axis(b *Block, name string, def float64) float64 {
	if v, ok := b.Get(name).Number(); ok {
		return v
	}
	return def
}

// checkTransform validates the literal shape of the transform sub-blocks.
// ResolveTransform never fails; malformed blocks are rejected here, before
// resolution. Unknown names inside a transform block are left alone.
func checkTransform(b *Block) *DecodeError {
	for _, name := range []string{fieldPosition, fieldRotation, fieldScale} {
		fields := b.All(name)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 1 {
			return &DecodeError{Kind: KindInvalidFieldValue, Path: name, Pos: fields[1].Pos,
				Err: fmt.Errorf("non-repeated field %q given %d times", name, len(fields))}
		}
		f := fields[0]
		if !f.IsBlock() {
			return &DecodeError{Kind: KindInvalidFieldValue, Path: name, Value: f.Text, Pos: f.Pos,
				Err: fmt.Errorf("expected block, got %s", f.Kind)}
		}
		axes := "xyz"
		if name == fieldRotation {
			axes = "xyzw"
		}
		for _, a := range f.Block.Fields {
			path := name + "." + a.Name
			if len(a.Name) != 1 || strings.IndexByte(axes, a.Name[0]) < 0 {
				continue
			}
			if f.Block.Count(a.Name) > 1 {
				return &DecodeError{Kind: KindInvalidFieldValue, Path: path, Pos: a.Pos,
					Err: fmt.Errorf("axis %q given more than once", a.Name)}
			}
			if _, ok := a.Number(); !ok {
				return &DecodeError{Kind: KindInvalidFieldValue, Path: path, Value: a.Text, Pos: a.Pos,
					Err: fmt.Errorf("expected number, got %s", a.Kind)}
			}
		}
	}
	return nil
}
