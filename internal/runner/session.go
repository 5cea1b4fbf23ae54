// Package runner holds the gameplay of the pillar run: health and score,
// the bridge the player builds, the pillars that lead the way and the
// session that steps them all in order. It never touches the window, so it
// runs headless in tests.
package runner

import (
	"math/rand"
	"time"

	"pillarrun/internal/components"
	"pillarrun/internal/config"
	"pillarrun/internal/engine"
	"pillarrun/internal/physics"
	"pillarrun/internal/pool"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Option func(*Session)

// WithRand makes every random choice of the session come from rng.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// Session owns one run: scene, physics, timers, recyclers and managers.
type Session struct {
	cfg     config.Tunables
	pending *config.Tunables
	rng     *rand.Rand
	logger  *log.Logger

	state     *State
	scene     *engine.Scene
	world     *physics.World
	scheduler *engine.Scheduler
	catalog   *Catalog

	player     *engine.GameObject
	controller *PlayerController
	initial    *engine.GameObject
	next       *engine.GameObject

	pillarPool   *pool.Recycler
	spanPool     *pool.Recycler
	obstaclePool *pool.Recycler
	powerUpPool  *pool.Recycler

	bridge  *BridgeManager
	pillars *PillarManager
}

func NewSession(cfg config.Tunables, opts ...Option) *Session {
	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.state = NewState(cfg, s.logger)
	s.build()
	return s
}

// build lays out a fresh level from s.cfg.
func (s *Session) build() {
	cfg := s.cfg
	s.scene = engine.NewScene("PillarRun")
	s.world = physics.NewWorld(s.logger)
	s.world.Gravity = rl.Vector3{Y: -cfg.Game.Gravity}
	s.scheduler = engine.NewScheduler()
	s.catalog = NewCatalog(cfg)

	register := func(g *engine.GameObject) {
		s.scene.AddGameObject(g)
		s.world.Add(g)
	}

	s.initial = s.catalog.NewPillar("InitialPillar").Object
	register(s.initial)
	s.next = s.catalog.NewPillar("NextPillar").Object
	s.next.Transform.Position = rl.Vector3{X: cfg.Pillars.NextOffset.X, Y: cfg.Pillars.NextOffset.Y, Z: cfg.Pillars.NextOffset.Z}
	register(s.next)

	s.player = engine.NewGameObject("Player")
	s.player.Kind = engine.KindPlayer
	s.player.Transform.Position = rl.Vector3{Y: cfg.Pillars.HeightOffset}
	s.player.AddComponent(components.NewBoxCollider(PlayerSize))
	s.player.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.Blue, PlayerSize))
	s.controller = NewPlayerController(cfg, s.state, s.world, s.scheduler, s.logger)
	s.player.AddComponent(s.controller)
	s.scene.AddGameObject(s.player)
	s.world.AddCharacter(s.player)

	s.pillarPool = pool.New("pillars", pool.Grow, s.rng, s.logger, s.catalog.PillarPrototype())
	s.spanPool = pool.New("spans", pool.Fixed, s.rng, s.logger, s.catalog.SpanPrototype())
	s.obstaclePool = pool.New("obstacles", pool.Grow, s.rng, s.logger, s.catalog.ObstaclePrototypes()...)
	s.powerUpPool = pool.New("powerups", pool.Grow, s.rng, s.logger, PowerUpPrototypes()...)
	for _, r := range []*pool.Recycler{s.pillarPool, s.spanPool, s.obstaclePool, s.powerUpPool} {
		r.OnCreate = register
	}
	s.pillarPool.Prewarm(cfg.Pillars.PoolSize)
	s.spanPool.Prewarm(cfg.Bridge.PoolSize)
	s.obstaclePool.Prewarm(cfg.Obstacles.Prewarm)
	s.powerUpPool.Prewarm(cfg.PowerUps.Prewarm)

	s.bridge = NewBridgeManager(cfg, BridgeDeps{
		Spans:     s.spanPool,
		Obstacles: s.obstaclePool,
		Catalog:   s.catalog,
		Player:    s.player,
		Scheduler: s.scheduler,
		Rand:      s.rng,
	}, s.logger)
	s.pillars = NewPillarManager(cfg, PillarDeps{
		Pillars:  s.pillarPool,
		PowerUps: s.powerUpPool,
		Catalog:  s.catalog,
		Bridge:   s.bridge,
		State:    s.state,
		Player:   s.player,
		Initial:  s.initial,
		Next:     s.next,
		Rand:     s.rng,
	}, s.logger)

	s.scene.Start()
	s.logger.Info("level built", "pillars", s.pillarPool.Len(), "spans", s.spanPool.Len(),
		"policy", cfg.Pillars.DirectionPolicy)
}

// Update advances the run by one frame. Nothing moves while paused.
func (s *Session) Update(deltaTime float32, in Input) {
	if s.state.Paused() || deltaTime <= 0 {
		return
	}
	s.scheduler.Advance(deltaTime)
	s.controller.Step(deltaTime, in)
	s.bridge.Update(deltaTime, in)
	s.pillars.Update(deltaTime)
	s.scene.Update(deltaTime)
	s.world.Step(deltaTime)
	s.state.CheckGameOver(s.player.WorldPosition().Y)
}

// SetTunables queues cfg for the next Replay.
func (s *Session) SetTunables(cfg config.Tunables) {
	s.pending = &cfg
}

// Replay starts over with a new level, applying queued tunables.
func (s *Session) Replay() {
	if s.pending != nil {
		s.cfg = *s.pending
		s.pending = nil
		s.state.Configure(s.cfg)
		s.logger.Info("applied new tunables")
	}
	s.build()
	s.state.Reset()
	s.logger.Info("replay")
}

func (s *Session) Tunables() config.Tunables { return s.cfg }
func (s *Session) State() *State { return s.state }
func (s *Session) Scene() *engine.Scene { return s.scene }
func (s *Session) World() *physics.World { return s.world }
func (s *Session) Scheduler() *engine.Scheduler { return s.scheduler }
func (s *Session) Player() *engine.GameObject { return s.player }
func (s *Session) Controller() *PlayerController { return s.controller }
func (s *Session) Bridge() *BridgeManager { return s.bridge }
func (s *Session) Pillars() *PillarManager { return s.pillars }
func (s *Session) Catalog() *Catalog { return s.catalog }
func (s *Session) InitialPillar() *engine.GameObject { return s.initial }
func (s *Session) NextPillar() *engine.GameObject { return s.next }

// Pools returns the session's recyclers: pillars, spans, obstacles, power-ups.
func (s *Session) Pools() []*pool.Recycler {
	return []*pool.Recycler{s.pillarPool, s.spanPool, s.obstaclePool, s.powerUpPool}
}
