package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Kind       Kind
	Transform  Transform
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	active     bool
	generation uint64

	// OnEnabled and OnDisabled fire on every real activation change.
	OnEnabled  Event
	OnDisabled Event
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent is GetComponent for interface types that need not embed Component.
func FindComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.ActiveInHierarchy() {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

// Active reports the object's own active flag.
func (g *GameObject) Active() bool {
	return g.active
}

// ActiveInHierarchy is false if this object or any ancestor is inactive.
func (g *GameObject) ActiveInHierarchy() bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if !obj.active {
			return false
		}
	}
	return true
}

// SetActive toggles the object. Every real change bumps the generation,
// which invalidates tokens issued before it.
func (g *GameObject) SetActive(active bool) {
	if g.active == active {
		return
	}
	g.active = active
	g.generation++
	if active {
		g.OnEnabled.Invoke()
	} else {
		g.OnDisabled.Invoke()
	}
}

// Generation counts activation changes since creation.
func (g *GameObject) Generation() uint64 {
	return g.generation
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

// AttachChild parents child to g. With keepWorld the child's world pose is
// preserved by rewriting its local transform.
func (g *GameObject) AttachChild(child *GameObject, keepWorld bool) {
	if !keepWorld {
		g.AddChild(child)
		return
	}
	pos := child.WorldPosition()
	rot := child.WorldRotation()
	scale := child.WorldScale()

	g.AddChild(child)

	parentScale := g.WorldScale()
	local := InverseRotateEuler(rl.Vector3Subtract(pos, g.WorldPosition()), g.WorldRotation())
	child.Transform.Position = divSafe(local, parentScale)
	child.Transform.Rotation = rl.Vector3Subtract(rot, g.WorldRotation())
	child.Transform.Scale = divSafe(scale, parentScale)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Detach unparents g, keeping its world pose.
func (g *GameObject) Detach() {
	if g.Parent == nil {
		return
	}
	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()
	g.Parent.RemoveChild(g)
	g.Transform.Position = pos
	g.Transform.Rotation = rot
	g.Transform.Scale = scale
}

// DetachChildren unparents every child, keeping their world pose.
func (g *GameObject) DetachChildren() {
	for len(g.Children) > 0 {
		g.Children[len(g.Children)-1].Detach()
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentScale := g.Parent.WorldScale()
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}
	rotated := RotateEuler(scaled, g.Parent.WorldRotation())
	return rl.Vector3Add(g.Parent.WorldPosition(), rotated)
}

// SetWorldPosition moves the object so its world position equals pos.
func (g *GameObject) SetWorldPosition(pos rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Position = pos
		return
	}
	local := InverseRotateEuler(rl.Vector3Subtract(pos, g.Parent.WorldPosition()), g.Parent.WorldRotation())
	g.Transform.Position = divSafe(local, g.Parent.WorldScale())
}

// WorldRotation sums Euler angles up the hierarchy. Exact for the
// single-axis parent rotations this game uses.
func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

func divSafe(v, by rl.Vector3) rl.Vector3 {
	out := v
	if by.X != 0 {
		out.X = v.X / by.X
	}
	if by.Y != 0 {
		out.Y = v.Y / by.Y
	}
	if by.Z != 0 {
		out.Z = v.Z / by.Z
	}
	return out
}
