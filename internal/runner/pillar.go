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

type PillarPhase int

const (
	AtInitial PillarPhase = iota
	AtNext
	Cycling
)

func (p PillarPhase) String() string {
	switch p {
	case AtInitial:
		return "at-initial"
	case AtNext:
		return "at-next"
	case Cycling:
		return "cycling"
	}
	return "unknown"
}

// Placement records where a pillar was put and whether rejection sampling
// gave up and used the fallback position.
type Placement struct {
	Position rl.Vector3
	Fallback bool
	Attempts int
}

// PillarDeps are the collaborators a PillarManager cannot work without.
// PowerUps may be nil, in which case no collectibles are spawned.
type PillarDeps struct {
	Pillars  *pool.Recycler
	PowerUps *pool.Recycler
	Catalog  *Catalog
	Bridge   *BridgeManager
	State    *State
	Player   *engine.GameObject
	Initial  *engine.GameObject
	Next     *engine.GameObject
	Rand     *rand.Rand
}

// PillarManager moves the run forward: when the player reaches the current
// pillar it retires the one behind, places the next one and scores.
type PillarManager struct {
	cfg  config.PillarTunables
	pu   config.PowerUpTunables
	deps PillarDeps
	ok   bool

	phase      PillarPhase
	current    *engine.GameObject
	previous   *engine.GameObject
	placements []Placement
	powerUps   map[*engine.GameObject][]*engine.GameObject

	OnTransition engine.EventWithArg[*engine.GameObject]

	logger *log.Logger
}

func NewPillarManager(cfg config.Tunables, deps PillarDeps, logger *log.Logger) *PillarManager {
	if logger == nil {
		logger = log.Default()
	}
	m := &PillarManager{
		cfg:      cfg.Pillars,
		pu:       cfg.PowerUps,
		deps:     deps,
		powerUps: make(map[*engine.GameObject][]*engine.GameObject),
		logger:   logger.WithPrefix("pillars"),
	}
	m.ok = deps.Pillars != nil && deps.Catalog != nil && deps.Bridge != nil && deps.State != nil &&
		deps.Player != nil && deps.Initial != nil && deps.Next != nil && deps.Rand != nil
	if !m.ok {
		m.logger.Error("missing references, pillar progression disabled",
			"pillars", deps.Pillars != nil, "catalog", deps.Catalog != nil, "bridge", deps.Bridge != nil,
			"state", deps.State != nil, "player", deps.Player != nil, "initial", deps.Initial != nil,
			"next", deps.Next != nil, "rand", deps.Rand != nil)
		return m
	}

	m.current = deps.Initial
	deps.Bridge.OnStateChange.AddListener(func(s BridgeState) {
		if s != BridgeIdle {
			m.haltCurrent()
		}
	})
	return m
}

func (m *PillarManager) State() PillarPhase { return m.phase }
func (m *PillarManager) Current() *engine.GameObject { return m.current }
func (m *PillarManager) Previous() *engine.GameObject { return m.previous }
func (m *PillarManager) Placements() []Placement { return m.placements }

// PowerUpsOn returns the collectibles spawned on pillar that are still
// parented to it.
func (m *PillarManager) PowerUpsOn(pillar *engine.GameObject) []*engine.GameObject {
	var out []*engine.GameObject
	for _, p := range m.powerUps[pillar] {
		if p.Parent == pillar {
			out = append(out, p)
		}
	}
	return out
}

// NextPillar is the pillar after the one the player is heading to: the
// pre-placed next pillar at the start, afterwards any other active pooled one.
func (m *PillarManager) NextPillar() *engine.GameObject {
	if !m.ok {
		return nil
	}
	if m.current == m.deps.Initial {
		return m.deps.Next
	}
	for _, p := range m.deps.Pillars.Objects() {
		if p.ActiveInHierarchy() && p != m.current {
			return p
		}
	}
	return nil
}

// Arrived reports whether the player stands on the current pillar.
func (m *PillarManager) Arrived() bool {
	if !m.ok || m.current == nil {
		return false
	}
	top := rl.Vector3Add(m.current.WorldPosition(), rl.Vector3{Y: m.cfg.HeightOffset})
	return rl.Vector3Distance(m.deps.Player.WorldPosition(), top) < m.cfg.ArriveRadius
}

func (m *PillarManager) Update(deltaTime float32) {
	if !m.Arrived() {
		return
	}

	switch m.phase {
	case AtInitial:
		m.previous = m.current
		m.current = m.deps.Next
		m.spawnPowerUps(m.current)
		m.startOscillation(m.current)
		m.phase = AtNext
		m.logger.Debug("reached initial pillar, heading to next")
	case AtNext, Cycling:
		m.advance()
		m.phase = Cycling
	}
	m.OnTransition.Invoke(m.current)
}

// advance retires what is behind the player and spawns the pillar ahead.
func (m *PillarManager) advance() {
	m.logger.Debug("reached pillar", "at", m.current.WorldPosition())
	if m.previous != nil {
		m.retire(m.previous)
	}
	m.deps.Bridge.DeactivateCurrentBridge()

	placement := m.placeNext(m.current.WorldPosition())
	next := m.deps.Pillars.Acquire(placement.Position, rl.Vector3{})

	m.previous = m.current
	m.current = next
	m.spawnPowerUps(next)
	m.startOscillation(next)
	m.deps.State.RegisterTransition()
	m.logger.Debug("spawned pillar", "at", placement.Position, "fallback", placement.Fallback)
}

// retire deactivates pillar and every collectible still sitting on it.
func (m *PillarManager) retire(pillar *engine.GameObject) {
	for _, p := range m.powerUps[pillar] {
		if p.Parent != pillar {
			continue // reused elsewhere after being collected
		}
		if p.Active() {
			p.SetActive(false)
		}
		p.Detach()
	}
	delete(m.powerUps, pillar)

	if rec := m.deps.Catalog.Pillar(pillar); rec != nil {
		rec.Motion.Halt()
	}
	pillar.SetActive(false)
	m.logger.Debug("deactivated previous pillar", "pillar", pillar.Name, "uid", pillar.UID)
}

// placeNext samples candidate positions around base until one keeps
// MinSeparation from every active pillar, or falls back after MaxAttempts.
func (m *PillarManager) placeNext(base rl.Vector3) Placement {
	rng := m.deps.Rand
	for attempt := 1; attempt <= m.cfg.MaxAttempts; attempt++ {
		dir := m.direction()
		dist := lerp(m.cfg.MinDistance, m.cfg.MaxDistance, rng.Float32())
		height := lerp(m.cfg.MinHeight, m.cfg.MaxHeight, rng.Float32())

		candidate := rl.Vector3Add(base, rl.Vector3Scale(dir, dist))
		candidate.Y = base.Y + height
		if m.valid(candidate) {
			p := Placement{Position: candidate, Attempts: attempt}
			m.placements = append(m.placements, p)
			return p
		}
	}

	dir := randomHorizontal(rng)
	p := Placement{
		Position: rl.Vector3Add(base, rl.Vector3Scale(dir, m.cfg.MaxDistance)),
		Fallback: true,
		Attempts: m.cfg.MaxAttempts,
	}
	m.placements = append(m.placements, p)
	m.logger.Warn("could not find valid spawn position, using fallback", "at", p.Position)
	return p
}

func (m *PillarManager) direction() rl.Vector3 {
	if m.cfg.DirectionPolicy == config.DirectionForward {
		axis := rl.Vector3{X: m.cfg.ForwardAxis.X, Z: m.cfg.ForwardAxis.Z}
		return rl.Vector3Normalize(axis)
	}
	return randomHorizontal(m.deps.Rand)
}

// valid checks candidate against the initial, next and pooled pillars that
// are currently active.
func (m *PillarManager) valid(candidate rl.Vector3) bool {
	far := func(g *engine.GameObject) bool {
		return g == nil || !g.ActiveInHierarchy() ||
			rl.Vector3Distance(candidate, g.WorldPosition()) >= m.cfg.MinSeparation
	}
	if !far(m.deps.Initial) || !far(m.deps.Next) {
		return false
	}
	for _, p := range m.deps.Pillars.Objects() {
		if !far(p) {
			return false
		}
	}
	return true
}

func (m *PillarManager) spawnPowerUps(pillar *engine.GameObject) {
	if m.deps.PowerUps == nil || m.pu.PerPillar <= 0 {
		return
	}
	rng := m.deps.Rand
	anchor := pillar.WorldPosition()
	for i := 0; i < m.pu.PerPillar; i++ {
		if rng.Float32() >= m.pu.SpawnChance {
			continue
		}
		spread := (float32(i) - float32(m.pu.PerPillar-1)/2) * powerUpSize * 2
		pos := rl.Vector3Add(anchor, rl.Vector3{X: spread, Y: m.cfg.HeightOffset})

		obj := m.deps.PowerUps.Acquire(pos, rl.Vector3{})
		if obj.Parent != nil {
			// A collected power-up may still hang off an older pillar
			obj.Parent.RemoveChild(obj)
			obj.Transform.Position = pos
			obj.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		}
		pillar.AttachChild(obj, true)
		m.powerUps[pillar] = append(m.powerUps[pillar], obj)
		m.logger.Debug("spawned power-up", "kind", obj.Kind, "pillar", pillar.UID)
	}
}

func (m *PillarManager) startOscillation(pillar *engine.GameObject) {
	if !m.cfg.Oscillate {
		return
	}
	rec := m.deps.Catalog.Pillar(pillar)
	if rec == nil {
		return
	}
	rec.Motion.Amplitude = rl.Vector3{X: m.cfg.OscillateAmplitude.X, Y: m.cfg.OscillateAmplitude.Y, Z: m.cfg.OscillateAmplitude.Z}
	rec.Motion.Speed = m.cfg.OscillateSpeed
	rec.Motion.Phase = 0
	rec.Motion.Restart(pillar.Transform.Position)
}

// haltCurrent freezes the target pillar once the player commits to a span.
func (m *PillarManager) haltCurrent() {
	if m.current == nil {
		return
	}
	if rec := m.deps.Catalog.Pillar(m.current); rec != nil && !rec.Motion.Paused {
		rec.Motion.Halt()
		m.logger.Debug("platform oscillation halted", "pillar", m.current.UID)
	}
}

func randomHorizontal(rng *rand.Rand) rl.Vector3 {
	angle := rng.Float64() * 2 * math.Pi
	s, c := math.Sincos(angle)
	return rl.Vector3{X: float32(s), Z: float32(c)}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
