package game

import (
	"pillarrun/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	clipNear = 0.1
	clipFar  = 500.0
)

// frustum is the six planes of the camera's view volume:
// left, right, bottom, top, near, far.
type frustum struct {
	planes [6]plane
}

// plane holds ax + by + cz + d = 0 with a unit normal pointing inside.
type plane struct {
	normal   rl.Vector3
	distance float32
}

// viewFrustum extracts the planes from the camera's view-projection
// matrix (Gribb/Hartmann).
func viewFrustum(camera rl.Camera3D, aspect float32) frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, clipNear, clipFar)
	vp := rl.MatrixMultiply(view, proj)

	row := func(sign float32, x, y, z, w float32) plane {
		return normalizePlane(plane{
			normal:   rl.Vector3{X: vp.M3 + sign*x, Y: vp.M7 + sign*y, Z: vp.M11 + sign*z},
			distance: vp.M15 + sign*w,
		})
	}
	var f frustum
	f.planes[0] = row(1, vp.M0, vp.M4, vp.M8, vp.M12)
	f.planes[1] = row(-1, vp.M0, vp.M4, vp.M8, vp.M12)
	f.planes[2] = row(1, vp.M1, vp.M5, vp.M9, vp.M13)
	f.planes[3] = row(-1, vp.M1, vp.M5, vp.M9, vp.M13)
	f.planes[4] = row(1, vp.M2, vp.M6, vp.M10, vp.M14)
	f.planes[5] = row(-1, vp.M2, vp.M6, vp.M10, vp.M14)
	return f
}

func normalizePlane(p plane) plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return plane{
		normal:   rl.Vector3Scale(p.normal, 1/length),
		distance: p.distance / length,
	}
}

// containsSphere reports whether any part of the sphere is inside.
func (f *frustum) containsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

// meshBounds is a sphere around the mesh in world space. It may be loose.
func meshBounds(m *components.MeshRenderer) (rl.Vector3, float32) {
	g := m.GetGameObject()
	scale := g.WorldScale()
	size := rl.Vector3Multiply(m.Size, scale)
	offset := rl.Vector3Multiply(m.Offset, scale)
	return g.WorldPosition(), rl.Vector3Length(size)/2 + rl.Vector3Length(offset)
}
