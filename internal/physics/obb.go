package physics

import (
	"math"

	"pillarrun/internal/components"
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes: [3]rl.Vector3{
			engine.RotateEuler(rl.Vector3{X: 1}, rotation),
			engine.RotateEuler(rl.Vector3{Y: 1}, rotation),
			engine.RotateEuler(rl.Vector3{Z: 1}, rotation),
		},
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return NewOBB(center, size, rl.Vector3{})
}

// ColliderOBB builds the world-space box for a collider.
func ColliderOBB(box *components.BoxCollider) OBB {
	return NewOBB(box.GetCenter(), box.GetWorldSize(), box.GetRotation())
}

// Bounds is the axis-aligned box enclosing o.
func (o OBB) Bounds() AABB {
	var ext rl.Vector3
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}
	for i, axis := range o.Axes {
		ext.X += absf(axis.X) * half[i]
		ext.Y += absf(axis.Y) * half[i]
		ext.Z += absf(axis.Z) * half[i]
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, ext), Max: rl.Vector3Add(o.Center, ext)}
}

// IntersectsOBB tests if two OBBs intersect using the Separating Axis Theorem
func (a OBB) IntersectsOBB(b OBB) bool {
	t := rl.Vector3Subtract(b.Center, a.Center)

	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, a.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, b.Axes[i], t) {
			return false
		}
	}

	// Edge cross products; skip near-parallel pairs
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			if rl.Vector3Length(axis) > 0.0001 {
				if !overlapOnAxis(a, b, rl.Vector3Normalize(axis), t) {
					return false
				}
			}
		}
	}

	return true
}

func (o OBB) project(axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(rl.Vector3DotProduct(o.Axes[2], axis))
}

// overlapOnAxis checks if two OBBs overlap when projected onto a given axis
func overlapOnAxis(a, b OBB, axis, t rl.Vector3) bool {
	return absf(rl.Vector3DotProduct(t, axis)) <= a.project(axis)+b.project(axis)
}

// ResolveOBB returns the minimum translation vector to push 'a' out of 'b'
// Returns zero vector if no overlap
func (a OBB) ResolveOBB(b OBB) rl.Vector3 {
	if !a.IntersectsOBB(b) {
		return rl.Vector3Zero()
	}

	t := rl.Vector3Subtract(b.Center, a.Center)
	minPenetration := float32(math.MaxFloat32)
	var mtv rl.Vector3

	testAxis := func(axis rl.Vector3) {
		if rl.Vector3Length(axis) < 0.0001 {
			return
		}
		axis = rl.Vector3Normalize(axis)

		dist := rl.Vector3DotProduct(t, axis)
		penetration := a.project(axis) + b.project(axis) - absf(dist)

		if penetration < minPenetration {
			minPenetration = penetration
			// Push in the direction away from B
			if dist < 0 {
				mtv = rl.Vector3Scale(axis, penetration)
			} else {
				mtv = rl.Vector3Scale(axis, -penetration)
			}
		}
	}

	for i := 0; i < 3; i++ {
		testAxis(a.Axes[i])
	}
	for i := 0; i < 3; i++ {
		testAxis(b.Axes[i])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			testAxis(rl.Vector3CrossProduct(a.Axes[i], b.Axes[j]))
		}
	}

	return mtv
}

// ClosestPointOnOBB returns the closest point on the OBB surface to the given point
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(point, o.Center)
	localX := clamp(rl.Vector3DotProduct(local, o.Axes[0]), -o.HalfSize.X, o.HalfSize.X)
	localY := clamp(rl.Vector3DotProduct(local, o.Axes[1]), -o.HalfSize.Y, o.HalfSize.Y)
	localZ := clamp(rl.Vector3DotProduct(local, o.Axes[2]), -o.HalfSize.Z, o.HalfSize.Z)

	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], localX))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], localY))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], localZ))
	return result
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
