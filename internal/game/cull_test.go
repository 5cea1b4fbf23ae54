package game

import (
	"math"
	"testing"

	"pillarrun/internal/components"
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func lookingDownZ() frustum {
	cam := rl.Camera3D{Target: rl.Vector3{Z: 1}, Up: rl.Vector3{Y: 1}, Fovy: 60, Projection: rl.CameraPerspective}
	return viewFrustum(cam, 16.0/9)
}

func TestFrustumKeepsWhatIsAhead(t *testing.T) {
	f := lookingDownZ()
	cases := []struct {
		name   string
		center rl.Vector3
		radius float32
		want   bool
	}{
		{"ahead", rl.Vector3{Z: 10}, 0, true},
		{"behind", rl.Vector3{Z: -10}, 1, false},
		{"far off to the side", rl.Vector3{X: 100, Z: 10}, 1, false},
		{"big enough to reach in", rl.Vector3{X: 100, Z: 10}, 200, true},
		{"past the far plane", rl.Vector3{Z: clipFar + 50}, 1, false},
	}
	for _, tc := range cases {
		if got := f.containsSphere(tc.center, tc.radius); got != tc.want {
			t.Errorf("%s: visible = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMeshBoundsFollowScale(t *testing.T) {
	g := engine.NewGameObject("Span")
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	g.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	m := components.NewMeshRenderer(components.MeshCube, rl.White, rl.Vector3{X: 3, Y: 4})
	g.AddComponent(m)

	center, radius := meshBounds(m)
	if center != g.Transform.Position {
		t.Errorf("center = %v", center)
	}
	if !near(radius, 5, 1e-4) {
		t.Errorf("radius = %v, want 5", radius)
	}
}
