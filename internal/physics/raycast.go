package physics

import (
	"pillarrun/internal/components"
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast returns the closest solid (non-trigger) collider hit by the ray.
// ignore is skipped, typically the caster itself.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *engine.GameObject) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	closest := RaycastHit{Distance: maxDistance}
	hit := false

	for _, obj := range w.objects {
		if obj == ignore || !obj.ActiveInHierarchy() {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil || box.IsTrigger {
			continue
		}
		if info, ok := RaycastOBB(origin, direction, ColliderOBB(box), maxDistance); ok && info.Distance < closest.Distance {
			closest = info
			closest.GameObject = obj
			hit = true
		}
	}

	return closest, hit
}

// RaycastOBB intersects a ray with an oriented box using the slab test in the
// box's local frame. direction must be normalized.
func RaycastOBB(origin, direction rl.Vector3, box OBB, maxDistance float32) (RaycastHit, bool) {
	rel := rl.Vector3Subtract(origin, box.Center)
	half := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}

	tmin := float32(-1e30)
	tmax := float32(1e30)
	hitAxis := -1
	var hitSign float32

	for i, axis := range box.Axes {
		o := rl.Vector3DotProduct(rel, axis)
		d := rl.Vector3DotProduct(direction, axis)
		if absf(d) < 1e-6 {
			if o < -half[i] || o > half[i] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (-half[i] - o) / d
		t2 := (half[i] - o) / d
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			hitAxis = i
			hitSign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 {
		return RaycastHit{}, false
	}

	dist := tmin
	var normal rl.Vector3
	if dist < 0 {
		// Origin inside the box
		dist = 0
		normal = rl.Vector3Negate(direction)
	} else if hitAxis >= 0 {
		normal = rl.Vector3Scale(box.Axes[hitAxis], hitSign)
	}
	if dist > maxDistance {
		return RaycastHit{}, false
	}

	return RaycastHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, dist)),
		Normal:   normal,
		Distance: dist,
	}, true
}
