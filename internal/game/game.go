// Package game opens the window and runs a session in it: keyboard in,
// meshes, HUD and menus out. Everything below the window lives in runner.
package game

import (
	"time"

	"pillarrun/internal/audio"
	"pillarrun/internal/components"
	"pillarrun/internal/config"
	"pillarrun/internal/engine"
	"pillarrun/internal/runner"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxFrame caps a single step so a stalled window does not tunnel the
// player through a pillar.
const maxFrame = 1.0 / 20

// CuePlayer plays sound cues. *audio.Player satisfies it.
type CuePlayer interface {
	Play(cue audio.Cue)
}

// ScoreStore saves finished runs. *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(score, transitions int) (int64, error)
	HighScore() (int, error)
}

type Options struct {
	Width, Height int32
	FPS           int32
	Debug         bool
	Logger        *log.Logger
	Store         ScoreStore      // optional
	Cues          CuePlayer       // optional
	Watcher       *config.Watcher // optional; edits apply on replay
}

type Game struct {
	opts    Options
	session *runner.Session
	logger  *log.Logger

	Camera *engine.GameObject
	follow *components.FollowCamera
	hud    *HUD

	cues    CuePlayer
	store   ScoreStore
	watcher *config.Watcher

	highScore int
	lastScore int
	lastHP    int
	quit      bool

	// Debug stats
	updateMs      float64
	drawMs        float64
	drawn, culled int
}

type silentCues struct{}

func (silentCues) Play(audio.Cue) {}

// New wires a game around session without touching the window, so the
// frame logic can run headless.
func New(session *runner.Session, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	g := &Game{
		opts:    opts,
		session: session,
		logger:  opts.Logger.WithPrefix("game"),
		cues:    opts.Cues,
		store:   opts.Store,
		watcher: opts.Watcher,
		hud:     NewHUD(),
	}
	if g.cues == nil {
		g.cues = silentCues{}
	}
	if g.store != nil {
		high, err := g.store.HighScore()
		if err != nil {
			g.logger.Warn("cannot read high score", "err", err)
		}
		g.highScore = high
	}

	g.Camera = engine.NewGameObject("MainCamera")
	g.follow = components.NewFollowCamera(session.Player())
	g.Camera.AddComponent(g.follow)
	g.applyCameraTunables()

	g.wireState()
	g.wireBridge()
	g.lastScore = session.State().Score()
	g.lastHP = session.State().HP()
	g.hud.Refresh(session.State(), session.Controller(), g.highScore)
	return g
}

func (g *Game) Session() *runner.Session { return g.session }
func (g *Game) HUD() *HUD { return g.hud }
func (g *Game) HighScore() int { return g.highScore }
func (g *Game) Quit() bool { return g.quit }

func (g *Game) applyCameraTunables() {
	cam := g.session.Tunables().Camera
	g.follow.Distance = cam.Distance
	g.follow.Height = cam.Height
	g.follow.Tilt = cam.Tilt
	g.follow.Smoothing = cam.Smoothing
	g.follow.FOV = cam.FOV
	g.follow.Snap()
}

// wireState hooks sound and score saving to the run state. The state
// outlives replays, so this happens once.
func (g *Game) wireState() {
	st := g.session.State()
	st.OnScoreChanged.AddListener(func(score int) {
		if score > g.lastScore {
			g.cues.Play(audio.CueScore)
		}
		g.lastScore = score
	})
	st.OnHPChanged.AddListener(func(hp int) {
		if hp < g.lastHP {
			g.cues.Play(audio.CueHit)
		}
		g.lastHP = hp
	})
	st.OnPowerUp.AddListener(func(engine.Kind) {
		g.cues.Play(audio.CuePickup)
	})
	st.OnGameOver.AddListener(func() {
		g.cues.Play(audio.CueGameOver)
		g.saveScore()
	})
}

// wireBridge hooks the build cue to the current bridge manager, which is
// rebuilt on every replay.
func (g *Game) wireBridge() {
	g.session.Bridge().OnStateChange.AddListener(func(s runner.BridgeState) {
		if s == runner.BridgeGrowing {
			g.cues.Play(audio.CueBuild)
		}
	})
}

func (g *Game) saveScore() {
	st := g.session.State()
	g.highScore = max(g.highScore, st.Score())
	if g.store == nil {
		return
	}
	id, err := g.store.SaveScore(st.Score(), st.Transitions())
	if err != nil {
		g.logger.Error("cannot save score", "err", err)
		return
	}
	g.logger.Info("score saved", "id", id, "score", st.Score(), "transitions", st.Transitions())
}

// Step runs one frame of game logic.
func (g *Game) Step(deltaTime float32, in runner.Input, pausePressed bool) {
	if pausePressed {
		g.session.State().TogglePause()
	}
	g.session.Update(min(deltaTime, maxFrame), in)
	g.Camera.Update(deltaTime)
	g.pollReload()
	g.hud.Refresh(g.session.State(), g.session.Controller(), g.highScore)
}

// Replay starts a new run, picking up any reloaded tunables.
func (g *Game) Replay() {
	g.session.Replay()
	g.follow.Target = g.session.Player()
	g.applyCameraTunables()
	g.wireBridge()
	g.lastScore = 0
	g.lastHP = g.session.State().HP()
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		g.logger.Warn("tunables watcher error", "err", err)
	}
	if !changed {
		return
	}
	cfg, err := config.LoadFile(g.watcher.Path())
	if err != nil {
		g.logger.Warn("ignoring edited tunables", "err", err)
		return
	}
	g.session.SetTunables(cfg)
	g.logger.Info("tunables reloaded, applied on replay", "path", g.watcher.Path())
}

// Run opens the window and blocks until it is closed or Quit is chosen.
func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.opts.Width, g.opts.Height, "Pillar Run")
	defer rl.CloseWindow()

	// Escape pauses instead of closing
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(g.opts.FPS)
	initStyle()

	keys := raylibKeys{}
	for !rl.WindowShouldClose() && !g.quit {
		start := time.Now()
		g.Step(rl.GetFrameTime(), ReadInput(keys), PausePressed(keys))
		g.updateMs = float64(time.Since(start).Microseconds()) / 1000.0

		g.hud.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		g.Draw()
	}
}
