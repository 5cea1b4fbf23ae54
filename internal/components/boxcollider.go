package components

import (
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an oriented box in the owner's local space. Triggers report
// contacts but never push anything.
type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

func NewTriggerCollider(size rl.Vector3) *BoxCollider {
	b := NewBoxCollider(size)
	b.IsTrigger = true
	return b
}

// GetCenter returns the world-space center, offset rotated and scaled with the owner.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	scale := g.WorldScale()
	offset := rl.Vector3{X: b.Offset.X * scale.X, Y: b.Offset.Y * scale.Y, Z: b.Offset.Z * scale.Z}
	return rl.Vector3Add(g.WorldPosition(), engine.RotateEuler(offset, g.WorldRotation()))
}

// GetWorldSize returns the full extents after the owner's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	scale := g.WorldScale()
	return rl.Vector3{X: b.Size.X * scale.X, Y: b.Size.Y * scale.Y, Z: b.Size.Z * scale.Z}
}

// GetRotation returns the orientation used for the oriented box.
func (b *BoxCollider) GetRotation() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.WorldRotation()
}
