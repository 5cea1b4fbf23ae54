package runner

import (
	"pillarrun/internal/config"
	"pillarrun/internal/engine"

	"github.com/charmbracelet/log"
)

// State is the score, health and pause context shared by every gameplay
// component. It is passed explicitly; there is no global instance.
type State struct {
	initialHP int
	maxHP     int
	double    int
	triple    int
	fallBelow float32

	hp          int
	score       int
	streak      int
	transitions int
	paused      bool
	over        bool

	OnScoreChanged engine.EventWithArg[int]
	OnHPChanged    engine.EventWithArg[int]
	OnGameOver     engine.Event
	OnPowerUp      engine.EventWithArg[engine.Kind]
	OnPauseChanged engine.EventWithArg[bool]

	logger *log.Logger
}

func NewState(cfg config.Tunables, logger *log.Logger) *State {
	if logger == nil {
		logger = log.Default()
	}
	s := &State{logger: logger.WithPrefix("state")}
	s.Configure(cfg)
	s.Reset()
	return s
}

// Configure takes new limits. They apply from the next Reset.
func (s *State) Configure(cfg config.Tunables) {
	s.initialHP = cfg.Game.InitialHP
	s.maxHP = cfg.Game.MaxHP
	s.double = cfg.Scoring.DoubleThreshold
	s.triple = cfg.Scoring.TripleThreshold
	s.fallBelow = cfg.Game.FallThreshold
}

// Reset starts a new run.
func (s *State) Reset() {
	s.hp = s.initialHP
	s.score = 0
	s.streak = 0
	s.transitions = 0
	s.paused = false
	s.over = false
	s.OnHPChanged.Invoke(s.hp)
	s.OnScoreChanged.Invoke(s.score)
}

func (s *State) HP() int { return s.hp }
func (s *State) MaxHP() int { return s.maxHP }
func (s *State) Score() int { return s.score }
func (s *State) Streak() int { return s.streak }
func (s *State) Transitions() int { return s.transitions }
func (s *State) Paused() bool { return s.paused }
func (s *State) Over() bool { return s.over }

// Multiplier is the points awarded per transition for the current streak.
func (s *State) Multiplier() int {
	switch {
	case s.streak >= s.triple:
		return 3
	case s.streak >= s.double:
		return 2
	default:
		return 1
	}
}

// RegisterTransition extends the streak, then scores at the new multiplier.
func (s *State) RegisterTransition() {
	if s.over {
		return
	}
	s.streak++
	s.transitions++
	s.score += s.Multiplier()
	s.logger.Debug("score increased", "score", s.score, "streak", s.streak, "multiplier", s.Multiplier())
	s.OnScoreChanged.Invoke(s.score)
}

// RegisterHazardHit costs one HP and ends the streak.
func (s *State) RegisterHazardHit() {
	if s.over {
		return
	}
	s.hp--
	s.streak = 0
	s.logger.Debug("HP decreased", "hp", s.hp)
	s.OnHPChanged.Invoke(s.hp)
}

// Heal restores up to n HP without passing MaxHP.
func (s *State) Heal(n int) {
	if s.over || n <= 0 || s.hp >= s.maxHP {
		return
	}
	s.hp = min(s.hp+n, s.maxHP)
	s.OnHPChanged.Invoke(s.hp)
}

// CollectPowerUp announces a pickup.
func (s *State) CollectPowerUp(kind engine.Kind) {
	s.logger.Debug("power-up collected", "kind", kind)
	s.OnPowerUp.Invoke(kind)
}

// CheckGameOver ends the run when the player fell below the threshold or ran
// out of HP. Returns true once the run is over.
func (s *State) CheckGameOver(playerY float32) bool {
	if s.over {
		return true
	}
	if playerY >= s.fallBelow && s.hp > 0 {
		return false
	}
	s.over = true
	s.paused = true
	s.logger.Info("game over", "score", s.score, "hp", s.hp, "y", playerY)
	s.OnGameOver.Invoke()
	return true
}

func (s *State) Pause()  { s.setPaused(true) }
func (s *State) Resume() { s.setPaused(false) }

func (s *State) TogglePause() {
	s.setPaused(!s.paused)
}

// setPaused is ignored once the run is over; only Reset unpauses then.
func (s *State) setPaused(p bool) {
	if s.over || s.paused == p {
		return
	}
	s.paused = p
	s.OnPauseChanged.Invoke(p)
}
