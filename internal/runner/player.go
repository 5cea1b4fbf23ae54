package runner

import (
	"pillarrun/internal/config"
	"pillarrun/internal/engine"
	"pillarrun/internal/physics"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AnimState is what the player model should be showing.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalking
	AnimRunning
	AnimJumping
)

func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalking:
		return "walking"
	case AnimRunning:
		return "running"
	case AnimJumping:
		return "jumping"
	}
	return "unknown"
}

// PlayerController moves the player, reacts to traps and power-ups and
// keeps the power-up timers. It is stepped by the session with the frame's
// input rather than through the scene's Update.
type PlayerController struct {
	engine.BaseComponent
	cfg       config.PlayerTunables
	heal      int
	gravity   float32
	Size      rl.Vector3
	state     *State
	world     *physics.World
	scheduler *engine.Scheduler
	ok        bool

	velocity rl.Vector3
	grounded bool
	jumping  bool
	moving   bool
	clock    float32
	lastJump float32

	boostUntil      float32
	invincibleUntil float32
	slowed          bool
	slowTimer       engine.TimerID
	anim            AnimState

	logger *log.Logger
}

func NewPlayerController(cfg config.Tunables, state *State, world *physics.World, scheduler *engine.Scheduler, logger *log.Logger) *PlayerController {
	if logger == nil {
		logger = log.Default()
	}
	p := &PlayerController{
		cfg:       cfg.Player,
		heal:      cfg.PowerUps.Heal,
		gravity:   cfg.Game.Gravity,
		Size:      PlayerSize,
		state:     state,
		world:     world,
		scheduler: scheduler,
		lastJump:  -cfg.Player.JumpCooldown,
		logger:    logger.WithPrefix("player"),
	}
	p.ok = state != nil && world != nil && scheduler != nil
	if !p.ok {
		p.logger.Error("missing references, player disabled",
			"state", state != nil, "world", world != nil, "scheduler", scheduler != nil)
	}
	return p
}

func (p *PlayerController) Grounded() bool { return p.grounded }
func (p *PlayerController) Velocity() rl.Vector3 { return p.velocity }
func (p *PlayerController) Anim() AnimState { return p.anim }
func (p *PlayerController) Slowed() bool { return p.slowed }

// Boosted reports whether the speed power-up is running.
func (p *PlayerController) Boosted() bool { return p.clock < p.boostUntil }

// Invincible reports whether hazards are currently ignored.
func (p *PlayerController) Invincible() bool { return p.clock < p.invincibleUntil }

// BoostRemaining and InvincibleRemaining feed the HUD.
func (p *PlayerController) BoostRemaining() float32 { return max(0, p.boostUntil-p.clock) }

func (p *PlayerController) InvincibleRemaining() float32 { return max(0, p.invincibleUntil-p.clock) }

// Speed is the current forward speed after power-ups and slows.
func (p *PlayerController) Speed() float32 {
	speed := p.cfg.MoveSpeed
	if p.Boosted() {
		speed *= p.cfg.SpeedBoostFactor
	}
	if p.slowed {
		speed *= p.cfg.SpikeSlowFactor
	}
	return speed
}

// Step runs one frame of movement.
func (p *PlayerController) Step(deltaTime float32, in Input) {
	g := p.GetGameObject()
	if !p.ok || g == nil || deltaTime <= 0 {
		return
	}
	wasBoosted, wasInvincible := p.Boosted(), p.Invincible()
	p.clock += deltaTime
	if wasBoosted && !p.Boosted() {
		p.logger.Debug("speed boost expired")
	}
	if wasInvincible && !p.Invincible() {
		p.logger.Debug("invincibility expired")
	}

	// Positive turn input turns right, which is clockwise seen from above
	g.Transform.Rotation.Y -= in.Turn * p.cfg.TurnSpeed * deltaTime
	heading := engine.HeadingFromYaw(g.Transform.Rotation.Y)

	p.moving = in.Move != 0
	if p.moving {
		step := rl.Vector3Scale(heading, in.Move*p.Speed()*deltaTime)
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, step)
	}

	if in.Jump && p.grounded && !p.jumping && p.clock >= p.lastJump+p.cfg.JumpCooldown {
		p.velocity.Y = p.cfg.JumpForce
		p.jumping = true
		p.grounded = false
		p.lastJump = p.clock
		p.logger.Debug("jumped", "at", g.Transform.Position)
	}

	p.velocity.Y -= p.gravity * deltaTime
	p.applyDrag(deltaTime)
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(p.velocity, deltaTime))

	push, grounded := p.world.ResolveCharacter(g, p.Size)
	if grounded && p.velocity.Y < 0 {
		p.velocity.Y = 0
	}
	if push.Y < 0 && p.velocity.Y > 0 {
		p.velocity.Y = 0
	}
	p.grounded = grounded
	if p.jumping && grounded && p.velocity.Y <= 0 {
		p.jumping = false
		p.logger.Debug("landed", "at", g.Transform.Position)
	}

	p.updateAnim()
}

// applyDrag bleeds off horizontal knockback.
func (p *PlayerController) applyDrag(deltaTime float32) {
	horizontal := rl.Vector3{X: p.velocity.X, Z: p.velocity.Z}
	speed := rl.Vector3Length(horizontal)
	if speed == 0 {
		return
	}
	next := speed - p.cfg.KnockbackDrag*deltaTime
	if next <= 0 {
		p.velocity.X, p.velocity.Z = 0, 0
		return
	}
	p.velocity.X *= next / speed
	p.velocity.Z *= next / speed
}

func (p *PlayerController) updateAnim() {
	switch {
	case p.jumping:
		p.anim = AnimJumping
	case p.moving && p.Speed() >= p.cfg.MoveSpeed:
		p.anim = AnimRunning
	case p.moving:
		p.anim = AnimWalking
	default:
		p.anim = AnimIdle
	}
}

func (p *PlayerController) OnCollisionEnter(other *engine.GameObject) {
	if !p.ok || other == nil {
		return
	}

	switch other.Kind {
	case engine.KindSpikeTrap:
		if p.Invincible() {
			return
		}
		p.state.RegisterHazardHit()
		p.slow()
		p.logger.Debug("hit spike trap", "speed", p.Speed())
	case engine.KindHammerTrap:
		if p.Invincible() {
			return
		}
		p.state.RegisterHazardHit()
		p.knockback(other)
		p.logger.Debug("hit hammer trap, knocked back")
	case engine.KindSpeedPowerUp:
		p.boostUntil = p.clock + p.cfg.PowerUpDuration
		p.collect(other)
	case engine.KindInvincibilityPowerUp:
		p.invincibleUntil = p.clock + p.cfg.PowerUpDuration
		p.collect(other)
	case engine.KindHealthPowerUp:
		p.state.Heal(p.heal)
		p.collect(other)
	case engine.KindNone, engine.KindPlayer, engine.KindPlatform, engine.KindSpan:
		// Solid ground, handled by ResolveCharacter
	}
}

func (p *PlayerController) OnCollisionExit(other *engine.GameObject) {}

func (p *PlayerController) collect(powerUp *engine.GameObject) {
	powerUp.SetActive(false)
	p.state.CollectPowerUp(powerUp.Kind)
}

// slow cuts speed until SpikeSlowDuration passes without another spike hit.
func (p *PlayerController) slow() {
	p.slowed = true
	if p.slowTimer != 0 {
		p.scheduler.Cancel(p.slowTimer)
	}
	p.slowTimer = p.scheduler.After(p.cfg.SpikeSlowDuration, engine.TokenFor(p.GetGameObject()), func() {
		p.slowed = false
		p.slowTimer = 0
		p.logger.Debug("speed restored", "speed", p.Speed())
	})
}

// knockback pushes the player away from the hazard and up by half a jump.
func (p *PlayerController) knockback(hazard *engine.GameObject) {
	g := p.GetGameObject()
	away := rl.Vector3Subtract(g.WorldPosition(), hazard.WorldPosition())
	away.Y = 0
	if rl.Vector3Length(away) < 1e-4 {
		away = rl.Vector3Negate(engine.HeadingFromYaw(g.Transform.Rotation.Y))
	}
	away = rl.Vector3Normalize(away)

	impulse := rl.Vector3Add(rl.Vector3Scale(away, p.cfg.HammerKnockback), rl.Vector3{Y: p.cfg.JumpForce / 2})
	p.velocity = rl.Vector3Add(p.velocity, impulse)
	p.grounded = false
}
