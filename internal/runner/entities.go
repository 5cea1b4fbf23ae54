package runner

import (
	"pillarrun/internal/components"
	"pillarrun/internal/config"
	"pillarrun/internal/engine"
	"pillarrun/internal/pool"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pillar geometry. The transform position is the anchor the player stands
// HeightOffset above; the column hangs below it.
var (
	pillarSize   = rl.Vector3{X: 2, Y: 12, Z: 2}
	pillarOffset = rl.Vector3{Y: -4.5}
)

// PillarTop is the height of a pillar's walkable surface above its anchor.
const PillarTop = 1.5

var PlayerSize = rl.Vector3{X: 0.5, Y: 1, Z: 0.5}

const powerUpSize = 0.4

// Span is a bridge segment with handles to the parts the bridge manager drives.
type Span struct {
	Object   *engine.GameObject
	Body     *components.Rigidbody
	Collider *components.BoxCollider
	Hinge    *components.Hinge
}

// Pillar is a standable platform.
type Pillar struct {
	Object   *engine.GameObject
	Collider *components.BoxCollider
	Motion   *components.Oscillator
}

// Obstacle is a trap placed on a settled span. Motion is nil for spikes.
type Obstacle struct {
	Object *engine.GameObject
	Kind   engine.Kind
	Motion *components.Oscillator
}

// Catalog builds every gameplay entity and remembers the typed handles of
// each, so hot paths never search component lists.
type Catalog struct {
	bridge    config.BridgeTunables
	obstacles config.ObstacleTunables

	spans        map[*engine.GameObject]*Span
	pillars      map[*engine.GameObject]*Pillar
	obstacleRefs map[*engine.GameObject]*Obstacle
}

func NewCatalog(cfg config.Tunables) *Catalog {
	return &Catalog{
		bridge:       cfg.Bridge,
		obstacles:    cfg.Obstacles,
		spans:        make(map[*engine.GameObject]*Span),
		pillars:      make(map[*engine.GameObject]*Pillar),
		obstacleRefs: make(map[*engine.GameObject]*Obstacle),
	}
}

func (c *Catalog) Span(g *engine.GameObject) *Span { return c.spans[g] }
func (c *Catalog) Pillar(g *engine.GameObject) *Pillar { return c.pillars[g] }
func (c *Catalog) Obstacle(g *engine.GameObject) *Obstacle { return c.obstacleRefs[g] }

func (c *Catalog) NewPillar(name string) *Pillar {
	g := engine.NewGameObject(name)
	g.Kind = engine.KindPlatform

	col := components.NewBoxCollider(pillarSize)
	col.Offset = pillarOffset
	g.AddComponent(col)

	mesh := components.NewMeshRenderer(components.MeshCube, rl.NewColor(112, 104, 96, 255), pillarSize)
	mesh.Offset = pillarOffset
	mesh.Wires = true
	g.AddComponent(mesh)

	osc := components.NewOscillator(rl.Vector3{}, rl.Vector3{}, 0, 0)
	osc.Halt()
	g.AddComponent(osc)

	p := &Pillar{Object: g, Collider: col, Motion: osc}
	c.pillars[g] = p
	return p
}

// NewSpan builds a span at unit scale. The long axis is local Y, the width
// local X and the walkable face local -Z once it has toppled.
func (c *Catalog) NewSpan() *Span {
	g := engine.NewGameObject("Span")
	g.Kind = engine.KindSpan
	size := rl.Vector3{X: c.bridge.BaseWidth, Y: c.bridge.BaseLength, Z: c.bridge.BaseThickness}

	col := components.NewBoxCollider(size)
	g.AddComponent(col)
	mesh := components.NewMeshRenderer(components.MeshCube, rl.NewColor(150, 105, 60, 255), size)
	mesh.Wires = true
	g.AddComponent(mesh)
	body := components.NewKinematicRigidbody()
	g.AddComponent(body)
	hinge := components.NewHinge(rl.Vector3{}, 0, 0, 0, c.bridge.RestAngle)
	g.AddComponent(hinge)

	s := &Span{Object: g, Body: body, Collider: col, Hinge: hinge}
	c.spans[g] = s
	return s
}

// NewObstacle builds a trap standing on local +Y.
func (c *Catalog) NewObstacle(kind engine.Kind) *Obstacle {
	size := c.obstacles.Size
	ob := &Obstacle{Kind: kind}

	switch kind {
	case engine.KindHammerTrap:
		g := engine.NewGameObject("HammerTrap")
		dims := rl.Vector3{X: size, Y: size * 2, Z: size}
		g.AddComponent(components.NewTriggerCollider(dims))
		g.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.Maroon, dims))
		ob.Motion = components.NewOscillator(rl.Vector3{}, rl.Vector3{}, 0, 0)
		ob.Motion.Halt()
		g.AddComponent(ob.Motion)
		ob.Object = g
	default:
		ob.Kind = engine.KindSpikeTrap
		g := engine.NewGameObject("SpikeTrap")
		dims := rl.Vector3{X: size, Y: size, Z: size}
		g.AddComponent(components.NewTriggerCollider(dims))
		g.AddComponent(components.NewMeshRenderer(components.MeshCylinder, rl.Red, dims))
		ob.Object = g
	}
	ob.Object.Kind = ob.Kind
	c.obstacleRefs[ob.Object] = ob
	return ob
}

// Height is the obstacle's extent along its local up axis.
func (o *Obstacle) Height() float32 {
	if col := engine.GetComponent[*components.BoxCollider](o.Object); col != nil {
		return col.Size.Y
	}
	return 0
}

func NewPowerUp(kind engine.Kind) *engine.GameObject {
	g := engine.NewGameObject(kind.String())
	g.Kind = kind
	dims := rl.Vector3{X: powerUpSize, Y: powerUpSize, Z: powerUpSize}
	g.AddComponent(components.NewTriggerCollider(dims))

	color := rl.SkyBlue
	switch kind {
	case engine.KindInvincibilityPowerUp:
		color = rl.Gold
	case engine.KindHealthPowerUp:
		color = rl.Lime
	}
	g.AddComponent(components.NewMeshRenderer(components.MeshSphere, color, dims))
	return g
}

// Prototypes for the session's recyclers.

func (c *Catalog) PillarPrototype() pool.Prototype {
	return pool.Prototype{Name: "Pillar", Build: func() *engine.GameObject { return c.NewPillar("Pillar").Object }}
}

func (c *Catalog) SpanPrototype() pool.Prototype {
	return pool.Prototype{Name: "Span", Build: func() *engine.GameObject { return c.NewSpan().Object }}
}

func (c *Catalog) ObstaclePrototypes() []pool.Prototype {
	return []pool.Prototype{
		{Name: "SpikeTrap", Build: func() *engine.GameObject { return c.NewObstacle(engine.KindSpikeTrap).Object }},
		{Name: "HammerTrap", Build: func() *engine.GameObject { return c.NewObstacle(engine.KindHammerTrap).Object }},
	}
}

func PowerUpPrototypes() []pool.Prototype {
	kinds := []engine.Kind{engine.KindSpeedPowerUp, engine.KindInvincibilityPowerUp, engine.KindHealthPowerUp}
	protos := make([]pool.Prototype, len(kinds))
	for i, kind := range kinds {
		protos[i] = pool.Prototype{Name: kind.String(), Build: func() *engine.GameObject { return NewPowerUp(kind) }}
	}
	return protos
}
