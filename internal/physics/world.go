package physics

import (
	"math"

	"pillarrun/internal/components"
	"pillarrun/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultGravity matches the acceleration the game was tuned against.
var DefaultGravity = rl.Vector3{Y: -9.81}

// ContactPair represents two objects whose colliders overlap.
type ContactPair struct {
	A, B *engine.GameObject
}

// makePair creates a consistent pair (smaller UID first)
func makePair(a, b *engine.GameObject) ContactPair {
	if a.UID > b.UID {
		return ContactPair{A: b, B: a}
	}
	return ContactPair{A: a, B: b}
}

// World simulates the few bodies this game needs: free-falling bodies, hinged
// spans that topple about their base, and characters that are pushed out of
// solids by their controllers. Objects that are not active in the hierarchy
// are skipped everywhere.
type World struct {
	Gravity rl.Vector3

	objects    []*engine.GameObject
	members    map[*engine.GameObject]bool
	characters map[*engine.GameObject]bool

	activeContacts map[ContactPair]bool // contacts from last step
	activeOrder    []ContactPair        // same set, in discovery order

	logger *log.Logger
}

func NewWorld(logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	return &World{
		Gravity:        DefaultGravity,
		members:        make(map[*engine.GameObject]bool),
		characters:     make(map[*engine.GameObject]bool),
		activeContacts: make(map[ContactPair]bool),
		logger:         logger.WithPrefix("physics"),
	}
}

// Add registers g and, recursively, its children. Adding twice is a no-op.
func (w *World) Add(g *engine.GameObject) {
	if g == nil {
		return
	}
	if !w.members[g] {
		w.members[g] = true
		w.objects = append(w.objects, g)
	}
	for _, child := range g.Children {
		w.Add(child)
	}
}

// AddCharacter registers a controller-driven body. Characters never stop a
// toppling span and are moved only through ResolveCharacter.
func (w *World) AddCharacter(g *engine.GameObject) {
	w.Add(g)
	w.characters[g] = true
}

func (w *World) Remove(g *engine.GameObject) {
	if !w.members[g] {
		return
	}
	delete(w.members, g)
	delete(w.characters, g)
	for i, obj := range w.objects {
		if obj == g {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			break
		}
	}
	kept := w.activeOrder[:0]
	for _, pair := range w.activeOrder {
		if pair.A == g || pair.B == g {
			delete(w.activeContacts, pair)
			continue
		}
		kept = append(kept, pair)
	}
	w.activeOrder = kept
}

func (w *World) Objects() []*engine.GameObject {
	return w.objects
}

func (w *World) Contains(g *engine.GameObject) bool {
	return w.members[g]
}

// Step advances the simulation by deltaTime seconds and dispatches contact callbacks.
func (w *World) Step(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}

	for _, obj := range w.objects {
		if !obj.ActiveInHierarchy() || w.characters[obj] {
			continue
		}
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || !rb.Simulated() {
			continue
		}
		if hinge := engine.GetComponent[*components.Hinge](obj); hinge != nil {
			w.stepHinge(obj, rb, hinge, deltaTime)
			continue
		}
		w.stepFree(obj, rb, deltaTime)
	}

	w.dispatchContacts()
}

// stepFree integrates gravity and pushes the body out of solids.
func (w *World) stepFree(obj *engine.GameObject, rb *components.Rigidbody, deltaTime float32) {
	if rb.UseGravity {
		rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(w.Gravity, deltaTime))
	}
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, deltaTime))
	obj.Transform.Rotation = rl.Vector3Add(obj.Transform.Rotation, rl.Vector3Scale(rb.AngularVelocity, deltaTime))

	box := engine.GetComponent[*components.BoxCollider](obj)
	if box != nil && !box.IsTrigger {
		for _, other := range w.solids(obj) {
			push := ColliderOBB(box).ResolveOBB(ColliderOBB(other))
			if push == (rl.Vector3{}) {
				continue
			}
			obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, push)
			// Cancel velocity into the surface
			n := rl.Vector3Normalize(push)
			if into := rl.Vector3DotProduct(rb.Velocity, n); into < 0 {
				rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(n, into))
			}
		}
	}

	rb.TrySleep(deltaTime)
}

// stepHinge rotates a released span about its base pivot. A uniform rod
// pivoting at one end has angular acceleration 3g/(2L) * sin(theta).
func (w *World) stepHinge(obj *engine.GameObject, rb *components.Rigidbody, hinge *components.Hinge, deltaTime float32) {
	if hinge.Resting {
		rb.Sleep()
		return
	}
	if hinge.Length <= 0 {
		hinge.Rest()
		rb.Sleep()
		return
	}

	box := engine.GetComponent[*components.BoxCollider](obj)
	if hinge.Ignore == nil {
		hinge.Ignore = make(map[uint64]bool)
		if box != nil {
			for _, other := range w.solids(obj) {
				if ColliderOBB(box).IntersectsOBB(ColliderOBB(other)) {
					hinge.Ignore[other.GetGameObject().UID] = true
				}
			}
		}
	}

	g := rl.Vector3Length(w.Gravity)
	theta := float64(hinge.Angle) * math.Pi / 180
	alpha := 1.5 * g / hinge.Length * float32(math.Sin(theta)) * rl.Rad2deg

	prevAngle := hinge.Angle
	hinge.AngularSpeed += alpha * deltaTime
	hinge.Angle += hinge.AngularSpeed * deltaTime

	if hinge.Angle >= hinge.RestAngle {
		hinge.Angle = hinge.RestAngle
		hinge.Apply()
		hinge.Rest()
		rb.Sleep()
		w.logger.Debug("hinge at rest", "object", obj.Name, "angle", hinge.Angle)
		return
	}
	hinge.Apply()

	if box == nil {
		return
	}
	for _, other := range w.solids(obj) {
		if hinge.Ignore[other.GetGameObject().UID] {
			continue
		}
		if ColliderOBB(box).IntersectsOBB(ColliderOBB(other)) {
			hinge.Angle = prevAngle
			hinge.Apply()
			hinge.Rest()
			rb.Sleep()
			w.logger.Debug("hinge stopped on contact", "object", obj.Name, "other", other.GetGameObject().Name, "angle", hinge.Angle)
			return
		}
	}
}

// solids returns every active non-trigger collider except self, self's
// descendants and characters.
func (w *World) solids(self *engine.GameObject) []*components.BoxCollider {
	var out []*components.BoxCollider
	for _, obj := range w.objects {
		if obj == self || w.characters[obj] || !obj.ActiveInHierarchy() || isDescendant(obj, self) {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil || box.IsTrigger {
			continue
		}
		out = append(out, box)
	}
	return out
}

func isDescendant(obj, ancestor *engine.GameObject) bool {
	for p := obj.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// ResolveCharacter pushes a character box of the given size, centered on
// g's world position, out of every solid. grounded is true when any push
// had an upward component.
func (w *World) ResolveCharacter(g *engine.GameObject, size rl.Vector3) (push rl.Vector3, grounded bool) {
	if g == nil || !g.ActiveInHierarchy() {
		return rl.Vector3{}, false
	}
	rot := rl.Vector3{Y: g.Transform.Rotation.Y}
	for _, other := range w.solids(g) {
		self := NewOBB(g.WorldPosition(), size, rot)
		out := self.ResolveOBB(ColliderOBB(other))
		if out == (rl.Vector3{}) {
			continue
		}
		g.SetWorldPosition(rl.Vector3Add(g.WorldPosition(), out))
		push = rl.Vector3Add(push, out)
		if out.Y > 0 {
			grounded = true
		}
	}
	return push, grounded
}

// dispatchContacts sends OnCollisionEnter/Exit to handlers. Only pairs where
// at least one side has a handler are tested.
func (w *World) dispatchContacts() {
	current := make(map[ContactPair]bool)
	var order []ContactPair

	for i, a := range w.objects {
		if !a.ActiveInHierarchy() {
			continue
		}
		boxA := engine.GetComponent[*components.BoxCollider](a)
		if boxA == nil {
			continue
		}
		obbA := ColliderOBB(boxA)
		boundsA := obbA.Bounds()
		handlerA := engine.FindComponent[engine.CollisionHandler](a) != nil

		for _, b := range w.objects[i+1:] {
			if !b.ActiveInHierarchy() {
				continue
			}
			if !handlerA && engine.FindComponent[engine.CollisionHandler](b) == nil {
				continue
			}
			boxB := engine.GetComponent[*components.BoxCollider](b)
			if boxB == nil {
				continue
			}
			obbB := ColliderOBB(boxB)
			if !boundsA.Intersects(obbB.Bounds()) || !obbA.IntersectsOBB(obbB) {
				continue
			}
			pair := makePair(a, b)
			current[pair] = true
			order = append(order, pair)
		}
	}

	// Enter callbacks may deactivate objects; that shows up as an exit next step.
	for _, pair := range order {
		if !w.activeContacts[pair] {
			notifyEnter(pair.A, pair.B)
			notifyEnter(pair.B, pair.A)
		}
	}
	for _, pair := range w.activeOrder {
		if !current[pair] {
			notifyExit(pair.A, pair.B)
			notifyExit(pair.B, pair.A)
		}
	}

	w.activeContacts = current
	w.activeOrder = order
}

func notifyEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionEnter(other)
		}
	}
}

func notifyExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionExit(other)
		}
	}
}
