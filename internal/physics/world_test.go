package physics

import (
	"math"
	"testing"

	"pillarrun/internal/components"
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type contactRecorder struct {
	engine.BaseComponent
	enters []*engine.GameObject
	exits  []*engine.GameObject
}

func (c *contactRecorder) OnCollisionEnter(other *engine.GameObject) { c.enters = append(c.enters, other) }
func (c *contactRecorder) OnCollisionExit(other *engine.GameObject)  { c.exits = append(c.exits, other) }

func newBox(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func newSpan(length float32) (*engine.GameObject, *components.Hinge) {
	span := engine.NewGameObject("Span")
	span.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: length, Z: 0.2}))
	rb := components.NewRigidbody()
	rb.UseGravity = false
	span.AddComponent(rb)
	hinge := components.NewHinge(rl.Vector3{}, 0, length, 2, 90)
	span.AddComponent(hinge)
	hinge.Apply()
	return span, hinge
}

func TestHingeTopplesToRestAngle(t *testing.T) {
	w := NewWorld(nil)
	span, hinge := newSpan(4)
	w.Add(span)

	for i := 0; i < 600 && !hinge.Resting; i++ {
		w.Step(1.0 / 60)
	}

	if !hinge.Resting {
		t.Fatalf("span never came to rest, angle %v", hinge.Angle)
	}
	if hinge.Angle != 90 {
		t.Errorf("expected rest at 90 degrees, got %v", hinge.Angle)
	}
	if got := span.Transform.Position; math.Abs(float64(got.Z-2)) > 1e-3 || math.Abs(float64(got.Y)) > 1e-3 {
		t.Errorf("fallen span center = %v, want (0, 0, 2)", got)
	}
	if rb := engine.GetComponent[*components.Rigidbody](span); !rb.IsSleeping {
		t.Error("resting span should be asleep")
	}
}

func TestHingeStopsOnFirstContact(t *testing.T) {
	w := NewWorld(nil)
	span, hinge := newSpan(4)
	w.Add(span)
	w.Add(newBox("Pillar", rl.Vector3{Z: 3}, rl.Vector3{X: 2, Y: 2, Z: 2}))

	for i := 0; i < 600 && !hinge.Resting; i++ {
		w.Step(1.0 / 60)
	}

	if !hinge.Resting {
		t.Fatal("span never came to rest")
	}
	if hinge.Angle >= 90 {
		t.Errorf("span should stop on the pillar before lying flat, angle %v", hinge.Angle)
	}
}

func TestHingeIgnoresSolidsTouchingAtRelease(t *testing.T) {
	w := NewWorld(nil)
	span, hinge := newSpan(4)
	w.Add(span)
	// The block the span stands on
	w.Add(newBox("Base", rl.Vector3{Y: -1}, rl.Vector3{X: 4, Y: 2.1, Z: 4}))

	for i := 0; i < 600 && !hinge.Resting; i++ {
		w.Step(1.0 / 60)
	}
	if hinge.Angle != 90 {
		t.Errorf("base contact should not stop the fall, angle %v", hinge.Angle)
	}
}

func TestKinematicBodiesAreNotSimulated(t *testing.T) {
	w := NewWorld(nil)
	g := newBox("Crate", rl.Vector3{Y: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	g.AddComponent(components.NewKinematicRigidbody())
	w.Add(g)

	w.Step(0.1)
	if g.Transform.Position.Y != 5 {
		t.Errorf("kinematic body moved to %v", g.Transform.Position)
	}
}

func TestFreeBodyLandsOnSolid(t *testing.T) {
	w := NewWorld(nil)
	crate := newBox("Crate", rl.Vector3{Y: 2}, rl.Vector3{X: 1, Y: 1, Z: 1})
	crate.AddComponent(components.NewRigidbody())
	w.Add(crate)
	w.Add(newBox("Ground", rl.Vector3{Y: -1}, rl.Vector3{X: 10, Y: 2, Z: 10}))

	for i := 0; i < 300; i++ {
		w.Step(1.0 / 60)
	}
	if y := crate.Transform.Position.Y; math.Abs(float64(y-0.5)) > 0.05 {
		t.Errorf("crate should rest on the ground at y=0.5, got %v", y)
	}
}

func TestContactCallbacks(t *testing.T) {
	w := NewWorld(nil)
	player := newBox("Player", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	rec := &contactRecorder{}
	player.AddComponent(rec)
	w.AddCharacter(player)

	pickup := engine.NewGameObject("Pickup")
	pickup.AddComponent(components.NewTriggerCollider(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}))
	w.Add(pickup)

	w.Step(0.016)
	w.Step(0.016)
	if len(rec.enters) != 1 || rec.enters[0] != pickup {
		t.Fatalf("expected one enter with the pickup, got %d", len(rec.enters))
	}

	pickup.SetActive(false)
	w.Step(0.016)
	if len(rec.exits) != 1 {
		t.Errorf("deactivating the pickup should end the contact, exits=%d", len(rec.exits))
	}

	pickup.SetActive(true)
	w.Step(0.016)
	if len(rec.enters) != 2 {
		t.Errorf("reactivated pickup should enter again, enters=%d", len(rec.enters))
	}
}

func TestContactsIgnoreInactiveHierarchy(t *testing.T) {
	w := NewWorld(nil)
	player := newBox("Player", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	rec := &contactRecorder{}
	player.AddComponent(rec)
	w.AddCharacter(player)

	span := engine.NewGameObject("Span")
	spike := newBox("Spike", rl.Vector3{}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	span.AddChild(spike)
	w.Add(span)
	span.SetActive(false)

	w.Step(0.016)
	if len(rec.enters) != 0 {
		t.Error("children of inactive objects should not collide")
	}
	if !w.Contains(spike) {
		t.Error("Add should register children")
	}
}

func TestRemoveForgetsContacts(t *testing.T) {
	w := NewWorld(nil)
	player := newBox("Player", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	rec := &contactRecorder{}
	player.AddComponent(rec)
	w.AddCharacter(player)
	pickup := engine.NewGameObject("Pickup")
	pickup.AddComponent(components.NewTriggerCollider(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}))
	w.Add(pickup)

	w.Step(0.016)
	w.Remove(pickup)
	w.Step(0.016)
	if w.Contains(pickup) || len(rec.enters) != 1 {
		t.Fatalf("removed pickup still tracked: contains=%v enters=%d", w.Contains(pickup), len(rec.enters))
	}

	w.Add(pickup)
	w.Step(0.016)
	if len(rec.enters) != 2 {
		t.Errorf("re-added pickup should be a new contact, enters=%d", len(rec.enters))
	}
}

func TestResolveCharacterGrounds(t *testing.T) {
	w := NewWorld(nil)
	w.Add(newBox("Ground", rl.Vector3{Y: -1}, rl.Vector3{X: 4, Y: 2, Z: 4}))
	player := engine.NewGameObject("Player")
	player.Transform.Position = rl.Vector3{Y: 0.4}
	w.AddCharacter(player)

	push, grounded := w.ResolveCharacter(player, rl.Vector3{X: 0.5, Y: 1, Z: 0.5})
	if !grounded {
		t.Fatal("expected grounded")
	}
	if math.Abs(float64(push.Y-0.1)) > 1e-4 {
		t.Errorf("push = %v, want 0.1 up", push)
	}
	if math.Abs(float64(player.Transform.Position.Y-0.5)) > 1e-4 {
		t.Errorf("player y = %v", player.Transform.Position.Y)
	}
}

func TestResolveCharacterSkipsTriggers(t *testing.T) {
	w := NewWorld(nil)
	spike := engine.NewGameObject("Spike")
	spike.AddComponent(components.NewTriggerCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	w.Add(spike)
	player := engine.NewGameObject("Player")
	w.AddCharacter(player)

	if push, grounded := w.ResolveCharacter(player, rl.Vector3{X: 1, Y: 1, Z: 1}); push != (rl.Vector3{}) || grounded {
		t.Errorf("triggers should not push characters, got %v %v", push, grounded)
	}
}

func TestRaycastHitsTopFace(t *testing.T) {
	w := NewWorld(nil)
	ground := newBox("Ground", rl.Vector3{Y: -1}, rl.Vector3{X: 4, Y: 2, Z: 4})
	w.Add(ground)

	hit, ok := w.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 10, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.GameObject != ground {
		t.Error("wrong object hit")
	}
	if math.Abs(float64(hit.Distance-5)) > 1e-4 {
		t.Errorf("distance = %v, want 5", hit.Distance)
	}
	if hit.Normal != (rl.Vector3{Y: 1}) {
		t.Errorf("normal = %v", hit.Normal)
	}

	if _, ok := w.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 2, nil); ok {
		t.Error("hit beyond max distance")
	}
}

func TestOBBRotatedIntersection(t *testing.T) {
	a := NewOBB(rl.Vector3{}, rl.Vector3{X: 4, Y: 0.2, Z: 0.2}, rl.Vector3{Y: 45})
	// Yawing +X by 45 degrees points it along (+X, -Z)
	b := NewAABBasOBB(rl.Vector3{X: 1.2, Z: -1.2}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	if !a.IntersectsOBB(b) {
		t.Error("rotated bar should reach the box on its diagonal")
	}
	c := NewAABBasOBB(rl.Vector3{X: 1.2, Z: 1.2}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	if a.IntersectsOBB(c) {
		t.Error("box on the other diagonal should be clear")
	}
	if !a.Bounds().Contains(rl.Vector3{X: 1.4, Z: -1.4}) {
		t.Error("bounds should enclose the rotated bar")
	}
}
