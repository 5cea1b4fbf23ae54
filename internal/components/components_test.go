package components

import (
	"math"
	"testing"

	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestRigidbodySetKinematicClearsMotion(t *testing.T) {
	rb := NewRigidbody()
	rb.Velocity = rl.Vector3{X: 3, Y: -9}
	rb.AngularVelocity = rl.Vector3{X: 40}
	rb.Sleep()

	rb.SetKinematic(true)

	if !rb.IsKinematic {
		t.Fatal("expected kinematic")
	}
	if rb.Velocity != (rl.Vector3{}) || rb.AngularVelocity != (rl.Vector3{}) {
		t.Errorf("motion not cleared: v=%v w=%v", rb.Velocity, rb.AngularVelocity)
	}
	if rb.IsSleeping {
		t.Error("switching mode should wake the body")
	}
}

func TestRigidbodyDynamicKeepsVelocity(t *testing.T) {
	rb := NewKinematicRigidbody()
	rb.Velocity = rl.Vector3{Y: 2}
	rb.SetKinematic(false)

	if rb.Velocity.Y != 2 {
		t.Errorf("going dynamic should not touch velocity, got %v", rb.Velocity)
	}
	if !rb.Simulated() {
		t.Error("awake dynamic body should be simulated")
	}
}

func TestRigidbodyTrySleep(t *testing.T) {
	rb := NewRigidbody()
	for i := 0; i < 30; i++ {
		rb.TrySleep(0.016)
	}
	if !rb.IsSleeping {
		t.Error("resting body should fall asleep")
	}
	if rb.Simulated() {
		t.Error("sleeping body should not be simulated")
	}
}

func TestBoxColliderFollowsOwnerScale(t *testing.T) {
	g := engine.NewGameObject("Span")
	g.Transform.Position = rl.Vector3{Y: 1}
	g.Transform.Scale = rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}
	box := NewBoxCollider(rl.Vector3{X: 2, Y: 4, Z: 2})
	box.Offset = rl.Vector3{Y: 2}
	g.AddComponent(box)

	if got := box.GetWorldSize(); !near(got, rl.Vector3{X: 1, Y: 2, Z: 1}) {
		t.Errorf("world size = %v", got)
	}
	if got := box.GetCenter(); !near(got, rl.Vector3{Y: 2}) {
		t.Errorf("center = %v", got)
	}
}

func TestOscillatorMotion(t *testing.T) {
	g := engine.NewGameObject("Hammer")
	osc := NewOscillator(rl.Vector3{X: 1}, rl.Vector3{X: 2}, float32(math.Pi), 0)
	g.AddComponent(osc)

	// Quarter period: sin(pi/2) = 1
	osc.Update(0.5)
	if got := g.Transform.Position; !near(got, rl.Vector3{X: 3}) {
		t.Errorf("position at quarter period = %v", got)
	}

	osc.Halt()
	osc.Update(0.5)
	if got := g.Transform.Position; !near(got, rl.Vector3{X: 3}) {
		t.Errorf("halted oscillator moved to %v", got)
	}
}

func TestOscillatorVerticalUsesDoubleFrequency(t *testing.T) {
	osc := NewOscillator(rl.Vector3{}, rl.Vector3{Y: 1}, 1, float32(math.Pi/4))
	if got := osc.Offset().Y; math.Abs(float64(got-1)) > 1e-5 {
		t.Errorf("sin(2*pi/4) should be 1, got %v", got)
	}
}

func TestOscillatorRestart(t *testing.T) {
	g := engine.NewGameObject("Platform")
	osc := NewOscillator(rl.Vector3{}, rl.Vector3{X: 1, Z: 1}, 2, 0)
	g.AddComponent(osc)
	osc.Update(0.3)
	osc.Halt()

	osc.Restart(rl.Vector3{Y: 5})
	osc.Update(0)
	if got := g.Transform.Position; !near(got, rl.Vector3{Y: 5}) {
		t.Errorf("restart should re-center on origin, got %v", got)
	}
	if osc.Paused {
		t.Error("restart should resume motion")
	}
}

func TestHingePose(t *testing.T) {
	g := engine.NewGameObject("Span")
	h := NewHinge(rl.Vector3{Y: 1}, 90, 4, 0, 90)
	g.AddComponent(h)

	h.Apply()
	if got := g.Transform.Position; !near(got, rl.Vector3{Y: 3}) {
		t.Errorf("upright center = %v", got)
	}

	h.Angle = 90
	h.Apply()
	// Lying flat toward yaw 90 (+X) with its base on the pivot
	if got := g.Transform.Position; !near(got, rl.Vector3{X: 2, Y: 1}) {
		t.Errorf("fallen center = %v", got)
	}
	if g.Transform.Rotation != (rl.Vector3{X: 90, Y: 90}) {
		t.Errorf("rotation = %v", g.Transform.Rotation)
	}
}

func TestFollowCameraSitsBehindTarget(t *testing.T) {
	player := engine.NewGameObject("Player")
	player.Transform.Rotation.Y = 90

	camObj := engine.NewGameObject("Camera")
	cam := NewFollowCamera(player)
	camObj.AddComponent(cam)
	cam.Update(0.016)

	want := rl.Vector3{X: -1.65, Y: 1.232}
	if got := camObj.Transform.Position; !near(got, want) {
		t.Errorf("camera at %v, want %v", got, want)
	}

	rc := cam.GetRaylibCamera()
	look := rl.Vector3Subtract(rc.Target, rc.Position)
	if look.X <= 0 || look.Y >= 0 {
		t.Errorf("camera should look forward and down, got %v", look)
	}
}

func TestFollowCameraSmooths(t *testing.T) {
	player := engine.NewGameObject("Player")
	camObj := engine.NewGameObject("Camera")
	cam := NewFollowCamera(player)
	camObj.AddComponent(cam)
	cam.Update(0.016)

	player.Transform.Position = rl.Vector3{Z: 10}
	cam.Update(0.05)

	got := camObj.Transform.Position.Z
	if got <= -1.65 || got >= 10-1.65 {
		t.Errorf("camera should be part way to the target, z=%v", got)
	}
}

func TestUITextOrigin(t *testing.T) {
	txt := NewUIText()
	txt.FontSize = 20
	txt.Rect = rl.Rectangle{X: 10, Y: 100, Width: 200, Height: 40}

	cases := map[TextAlignment]float32{TextAlignLeft: 10, TextAlignCenter: 60, TextAlignRight: 110}
	for align, wantX := range cases {
		txt.Alignment = align
		x, y := txt.Origin(100)
		if x != wantX || y != 110 {
			t.Errorf("alignment %d: origin (%v, %v), want (%v, 110)", align, x, y, wantX)
		}
	}
}
