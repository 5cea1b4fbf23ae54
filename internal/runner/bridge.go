package runner

import (
	"math"
	"math/rand"

	"pillarrun/internal/config"
	"pillarrun/internal/engine"
	"pillarrun/internal/pool"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type BridgeState int

const (
	BridgeIdle BridgeState = iota
	BridgeGrowing
	BridgeSettling
	BridgeActive
)

func (s BridgeState) String() string {
	switch s {
	case BridgeIdle:
		return "idle"
	case BridgeGrowing:
		return "growing"
	case BridgeSettling:
		return "settling"
	case BridgeActive:
		return "active"
	}
	return "unknown"
}

// BridgeDeps are the collaborators a BridgeManager cannot work without.
type BridgeDeps struct {
	Spans     *pool.Recycler
	Obstacles *pool.Recycler
	Catalog   *Catalog
	Player    *engine.GameObject
	Scheduler *engine.Scheduler
	Rand      *rand.Rand
}

// BridgeManager owns the single span the player can build at a time: it
// grows while the build input is held, topples when released and gets
// traps once it has had time to settle.
type BridgeManager struct {
	cfg  config.BridgeTunables
	obs  config.ObstacleTunables
	deps BridgeDeps
	ok   bool

	state   BridgeState
	current *Span
	start   rl.Vector3
	yaw     float32
	scale   float32
	growing bool
	placed  []*Obstacle

	OnStateChange     engine.EventWithArg[BridgeState]
	OnObstaclesPlaced engine.EventWithArg[int]

	logger *log.Logger
}

func NewBridgeManager(cfg config.Tunables, deps BridgeDeps, logger *log.Logger) *BridgeManager {
	if logger == nil {
		logger = log.Default()
	}
	b := &BridgeManager{
		cfg:    cfg.Bridge,
		obs:    cfg.Obstacles,
		deps:   deps,
		logger: logger.WithPrefix("bridge"),
	}
	b.ok = deps.Spans != nil && deps.Obstacles != nil && deps.Catalog != nil &&
		deps.Player != nil && deps.Scheduler != nil && deps.Rand != nil
	if !b.ok {
		b.logger.Error("missing references, bridge building disabled",
			"spans", deps.Spans != nil, "obstacles", deps.Obstacles != nil, "catalog", deps.Catalog != nil,
			"player", deps.Player != nil, "scheduler", deps.Scheduler != nil, "rand", deps.Rand != nil)
	}
	return b
}

func (b *BridgeManager) State() BridgeState { return b.state }

// Scale is the span's current uniform scale.
func (b *BridgeManager) Scale() float32 { return b.scale }

// CurrentSpan returns the tracked span object, or nil when idle.
func (b *BridgeManager) CurrentSpan() *engine.GameObject {
	if b.current == nil {
		return nil
	}
	return b.current.Object
}

// Obstacles returns the traps attached to the current span.
func (b *BridgeManager) Obstacles() []*engine.GameObject {
	out := make([]*engine.GameObject, len(b.placed))
	for i, ob := range b.placed {
		out[i] = ob.Object
	}
	return out
}

// Update feeds one frame of build input. Presses are ignored unless idle.
func (b *BridgeManager) Update(deltaTime float32, in Input) {
	if !b.ok {
		return
	}
	if in.BuildDown && b.state == BridgeIdle {
		b.startBuilding()
	}
	if in.BuildHeld && b.state == BridgeGrowing {
		b.grow(deltaTime)
	}
	if in.BuildUp && b.state == BridgeGrowing {
		b.release()
	}
}

func (b *BridgeManager) setState(s BridgeState) {
	if b.state == s {
		return
	}
	b.logger.Debug("state", "from", b.state, "to", s)
	b.state = s
	b.OnStateChange.Invoke(s)
}

func (b *BridgeManager) startBuilding() {
	player := b.deps.Player
	b.yaw = player.Transform.Rotation.Y
	heading := engine.HeadingFromYaw(b.yaw)
	b.start = rl.Vector3Add(player.WorldPosition(), rl.Vector3Add(
		rl.Vector3Scale(heading, b.cfg.SpawnForward),
		rl.Vector3{Y: b.cfg.SpawnUp},
	))

	obj := b.deps.Spans.Acquire(b.start, rl.Vector3{Y: b.yaw})
	span := b.deps.Catalog.Span(obj)
	if span == nil {
		b.logger.Error("span pool returned an unknown object")
		if obj != nil {
			obj.SetActive(false)
		}
		return
	}
	span.Body.Reset()

	b.current = span
	b.scale = b.cfg.MinScale
	b.growing = true
	b.applyGrowth()
	b.setState(BridgeGrowing)
}

// grow advances the triangle wave between MinScale and MaxScale, carrying
// any overshoot past a bound into the other direction.
func (b *BridgeManager) grow(deltaTime float32) {
	lo, hi := b.cfg.MinScale, b.cfg.MaxScale
	if hi <= lo {
		b.scale = lo
		b.applyGrowth()
		return
	}
	step := b.cfg.GrowthRate * deltaTime
	for step > 0 {
		if b.growing {
			room := hi - b.scale
			if step < room {
				b.scale += step
				break
			}
			b.scale = hi
			step -= room
			b.growing = false
		} else {
			room := b.scale - lo
			if step < room {
				b.scale -= step
				break
			}
			b.scale = lo
			step -= room
			b.growing = true
		}
	}
	b.applyGrowth()
}

// applyGrowth keeps the base on the start point while the span stands upright.
func (b *BridgeManager) applyGrowth() {
	g := b.current.Object
	g.Transform.Scale = rl.Vector3{X: b.scale, Y: b.scale, Z: b.scale}
	g.Transform.Rotation = rl.Vector3{Y: b.yaw}
	g.Transform.Position = rl.Vector3Add(b.start, rl.Vector3{Y: b.scale * b.cfg.BaseLength / 2})
}

// release hands the span to the physics world at its current scale and
// schedules trap placement.
func (b *BridgeManager) release() {
	span := b.current
	span.Body.SetKinematic(false)

	h := span.Hinge
	h.Pivot = b.start
	h.Yaw = b.yaw
	h.Length = b.scale * b.cfg.BaseLength
	h.Angle = b.cfg.ReleaseTilt
	h.AngularSpeed = 0
	h.RestAngle = b.cfg.RestAngle
	h.Resting = false
	h.Ignore = nil
	h.Apply()

	b.deps.Scheduler.After(b.cfg.SettleDelay, engine.TokenFor(span.Object), func() {
		b.placeObstacles(span)
	})
	b.logger.Debug("released", "scale", b.scale, "length", h.Length)
	b.setState(BridgeSettling)
}

func (b *BridgeManager) placeObstacles(span *Span) {
	if b.current != span || b.state != BridgeSettling {
		return
	}
	count := 1 + b.deps.Rand.Intn(b.obs.MaxCount)
	for i := 0; i < count; i++ {
		b.placeObstacle(span)
	}
	b.logger.Debug("obstacles placed", "count", len(b.placed))
	b.setState(BridgeActive)
	b.OnObstaclesPlaced.Invoke(len(b.placed))
}

// placeObstacle puts one trap on the span's walkable face, away from both
// ends, and parents it to the span.
func (b *BridgeManager) placeObstacle(span *Span) {
	rng := b.deps.Rand
	spanObj := span.Object
	rot := spanObj.WorldRotation()
	scale := b.scale

	margin := b.obs.EndMargin
	along := (rng.Float32()*(1-2*margin) - (0.5 - margin)) * b.cfg.BaseLength
	lateral := (rng.Float32()*2 - 1) * b.obs.LateralSpread * b.cfg.BaseWidth
	local := rl.Vector3{X: lateral * scale, Y: along * scale, Z: -b.cfg.BaseThickness / 2 * scale}
	normal := engine.RotateEuler(rl.Vector3{Z: -1}, rot)

	// Local +Y of the trap lines up with the face normal
	obRot := rl.Vector3{X: rot.X - 90, Y: rot.Y}
	obj := b.deps.Obstacles.Acquire(spanObj.WorldPosition(), obRot)
	ob := b.deps.Catalog.Obstacle(obj)
	if ob == nil {
		b.logger.Error("obstacle pool returned an unknown object")
		if obj != nil {
			obj.SetActive(false)
		}
		return
	}
	pos := rl.Vector3Add(spanObj.WorldPosition(), engine.RotateEuler(local, rot))
	pos = rl.Vector3Add(pos, rl.Vector3Scale(normal, ob.Height()/2))
	obj.Transform.Position = pos
	obj.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}

	spanObj.AttachChild(obj, true)
	if ob.Motion != nil {
		ob.Motion.Amplitude = rl.Vector3{X: b.obs.HammerAmplitude * b.cfg.BaseWidth}
		ob.Motion.Speed = b.obs.HammerSpeed
		ob.Motion.Phase = rng.Float32() * 2 * math.Pi
		ob.Motion.Restart(obj.Transform.Position)
	}
	b.placed = append(b.placed, ob)
}

// DeactivateCurrentBridge retires the span: traps first, then the span
// itself. Safe to call in any state.
func (b *BridgeManager) DeactivateCurrentBridge() {
	if b.current == nil {
		b.setState(BridgeIdle)
		return
	}
	span := b.current
	for _, ob := range b.placed {
		if ob.Motion != nil {
			ob.Motion.Halt()
		}
		if ob.Object.Active() {
			ob.Object.SetActive(false)
		}
		if ob.Object.Parent == span.Object {
			ob.Object.Detach()
		}
	}
	span.Body.Reset()
	span.Object.SetActive(false)

	b.logger.Debug("bridge deactivated", "obstacles", len(b.placed))
	b.current = nil
	b.placed = nil
	b.setState(BridgeIdle)
}
