package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees, applied X then Y then Z
	Scale    rl.Vector3
}

const deg2rad = math.Pi / 180

func rotateX(v rl.Vector3, deg float32) rl.Vector3 {
	if deg == 0 {
		return v
	}
	s, c := math.Sincos(float64(deg) * deg2rad)
	y, z := float64(v.Y), float64(v.Z)
	return rl.Vector3{X: v.X, Y: float32(y*c - z*s), Z: float32(y*s + z*c)}
}

func rotateY(v rl.Vector3, deg float32) rl.Vector3 {
	if deg == 0 {
		return v
	}
	s, c := math.Sincos(float64(deg) * deg2rad)
	x, z := float64(v.X), float64(v.Z)
	return rl.Vector3{X: float32(x*c + z*s), Y: v.Y, Z: float32(-x*s + z*c)}
}

func rotateZ(v rl.Vector3, deg float32) rl.Vector3 {
	if deg == 0 {
		return v
	}
	s, c := math.Sincos(float64(deg) * deg2rad)
	x, y := float64(v.X), float64(v.Y)
	return rl.Vector3{X: float32(x*c - y*s), Y: float32(x*s + y*c), Z: v.Z}
}

// RotateEuler rotates v by Euler angles in degrees (X, then Y, then Z).
// The same order is used by MeshRenderer and the OBB builder.
func RotateEuler(v, rot rl.Vector3) rl.Vector3 {
	return rotateZ(rotateY(rotateX(v, rot.X), rot.Y), rot.Z)
}

// InverseRotateEuler undoes RotateEuler.
func InverseRotateEuler(v, rot rl.Vector3) rl.Vector3 {
	return rotateX(rotateY(rotateZ(v, -rot.Z), -rot.Y), -rot.X)
}

// Rotate rotates a local-space direction into the transform's orientation.
func (t Transform) Rotate(v rl.Vector3) rl.Vector3 {
	return RotateEuler(v, t.Rotation)
}

// InverseRotate maps a direction from world orientation back to local space.
func (t Transform) InverseRotate(v rl.Vector3) rl.Vector3 {
	return InverseRotateEuler(v, t.Rotation)
}

// Forward is local +Z in world orientation.
func (t Transform) Forward() rl.Vector3 {
	return t.Rotate(rl.Vector3{Z: 1})
}

// HeadingFromYaw returns the horizontal unit direction for a yaw angle in degrees.
func HeadingFromYaw(yaw float32) rl.Vector3 {
	s, c := math.Sincos(float64(yaw) * deg2rad)
	return rl.Vector3{X: float32(s), Z: float32(c)}
}

// YawFromDirection is the inverse of HeadingFromYaw; the Y component is ignored.
func YawFromDirection(dir rl.Vector3) float32 {
	if dir.X == 0 && dir.Z == 0 {
		return 0
	}
	return float32(math.Atan2(float64(dir.X), float64(dir.Z)) / deg2rad)
}
