package runner

import (
	"testing"

	"pillarrun/internal/config"
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func run(s *Session, frames int, in Input) {
	for i := 0; i < frames; i++ {
		s.Update(frame, in)
	}
}

func TestPlayerStandsOnPillar(t *testing.T) {
	s := newTestSession(t, config.Default(), 1)
	run(s, 60, Input{})

	pos := s.Player().WorldPosition()
	if !near(pos.Y, s.Tunables().Pillars.HeightOffset, 0.05) {
		t.Errorf("player sank or floated to y=%v", pos.Y)
	}
	if !s.Controller().Grounded() {
		t.Error("player on a pillar should be grounded")
	}
	if s.Controller().Anim() != AnimIdle {
		t.Errorf("anim = %v, want idle", s.Controller().Anim())
	}
}

func TestPlayerMovesAlongHeading(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg, 1)
	run(s, 15, Input{Move: 1})

	pos := s.Player().WorldPosition()
	want := cfg.Player.MoveSpeed * 15 * frame
	if !near(pos.Z, want, 0.01) || !near(pos.X, 0, 1e-4) {
		t.Errorf("player at %v, want z=%v", pos, want)
	}
	if s.Controller().Anim() != AnimRunning {
		t.Errorf("anim = %v, want running", s.Controller().Anim())
	}
}

func TestPositiveTurnGoesRight(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg, 1)
	run(s, 30, Input{Turn: 1})

	yaw := s.Player().Transform.Rotation.Y
	if !near(yaw, -cfg.Player.TurnSpeed*30*frame, 0.01) {
		t.Errorf("yaw = %v", yaw)
	}
	heading := engine.HeadingFromYaw(yaw)
	if heading.X >= 0 {
		t.Errorf("turning right from +Z should head toward -X, got %v", heading)
	}
}

func TestJumpRespectsCooldown(t *testing.T) {
	cfg := config.Default()
	cfg.Player.JumpCooldown = 3
	s := newTestSession(t, cfg, 1)
	c := s.Controller()

	run(s, 30, Input{})
	s.Update(frame, Input{Jump: true})
	if c.Velocity().Y <= 0 || c.Anim() != AnimJumping {
		t.Fatalf("jump did not start, vy=%v anim=%v", c.Velocity().Y, c.Anim())
	}

	s.Update(frame, Input{Jump: true})
	if c.Velocity().Y >= cfg.Player.JumpForce-0.01 {
		t.Error("jump input in the air should not jump again")
	}

	run(s, 90, Input{})
	if !c.Grounded() {
		t.Fatal("player should have landed")
	}
	s.Update(frame, Input{Jump: true})
	if c.Velocity().Y > 0 {
		t.Error("jump allowed inside the cooldown")
	}

	run(s, 100, Input{})
	s.Update(frame, Input{Jump: true})
	if c.Velocity().Y <= 0 {
		t.Error("jump refused after the cooldown")
	}
}

func TestSpikeSlowsAndHurts(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg, 1)
	c := s.Controller()
	run(s, 5, Input{})

	spike := s.Catalog().NewObstacle(engine.KindSpikeTrap).Object
	spike.Transform.Position = s.Player().WorldPosition()
	s.Scene().AddGameObject(spike)
	s.World().Add(spike)

	run(s, 5, Input{})
	if s.State().HP() != cfg.Game.InitialHP-1 {
		t.Fatalf("hp = %d after touching a spike", s.State().HP())
	}
	if !c.Slowed() || c.Speed() != cfg.Player.MoveSpeed*cfg.Player.SpikeSlowFactor {
		t.Errorf("spike should slow the player, speed=%v", c.Speed())
	}

	spike.SetActive(false)
	run(s, int(cfg.Player.SpikeSlowDuration/frame)+10, Input{})
	if c.Slowed() || c.Speed() != cfg.Player.MoveSpeed {
		t.Errorf("slow should wear off, speed=%v", c.Speed())
	}
	if s.State().HP() != cfg.Game.InitialHP-1 {
		t.Errorf("staying on a spike should not keep hurting, hp=%d", s.State().HP())
	}
}

func TestHammerKnocksBack(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg, 1)
	c := s.Controller()
	for i := 0; i < 4; i++ {
		s.State().RegisterTransition()
	}
	run(s, 5, Input{})

	hammer := engine.NewGameObject("HammerTrap")
	hammer.Kind = engine.KindHammerTrap
	hammer.Transform.Position = rl.Vector3Add(s.Player().WorldPosition(), rl.Vector3{Z: 0.3})
	c.OnCollisionEnter(hammer)

	v := c.Velocity()
	if !near(v.Z, -cfg.Player.HammerKnockback, 1e-3) || !near(v.Y, cfg.Player.JumpForce/2, 1e-3) {
		t.Errorf("knockback velocity = %v", v)
	}
	if s.State().HP() != cfg.Game.InitialHP-1 || s.State().Streak() != 0 {
		t.Errorf("hammer hit should cost HP and streak, hp=%d streak=%d", s.State().HP(), s.State().Streak())
	}

	run(s, 60, Input{})
	if v := c.Velocity(); v.X != 0 || v.Z != 0 {
		t.Errorf("drag should stop horizontal knockback, v=%v", v)
	}
}

func TestInvincibilityIgnoresHazards(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg, 1)
	c := s.Controller()
	run(s, 1, Input{})

	shield := NewPowerUp(engine.KindInvincibilityPowerUp)
	collected := engine.KindNone
	s.State().OnPowerUp.AddListener(func(k engine.Kind) { collected = k })
	c.OnCollisionEnter(shield)

	if shield.Active() || collected != engine.KindInvincibilityPowerUp {
		t.Fatal("power-up should be collected")
	}
	if !c.Invincible() {
		t.Fatal("player should be invincible")
	}

	spike := engine.NewGameObject("SpikeTrap")
	spike.Kind = engine.KindSpikeTrap
	c.OnCollisionEnter(spike)
	if s.State().HP() != cfg.Game.InitialHP || c.Slowed() {
		t.Error("invincible player took a hazard hit")
	}

	run(s, int(cfg.Player.PowerUpDuration/frame)+5, Input{})
	if c.Invincible() {
		t.Error("invincibility should expire")
	}
}

func TestSpeedBoostExpires(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg, 1)
	c := s.Controller()

	c.OnCollisionEnter(NewPowerUp(engine.KindSpeedPowerUp))
	if c.Speed() != cfg.Player.MoveSpeed*cfg.Player.SpeedBoostFactor {
		t.Errorf("boosted speed = %v", c.Speed())
	}
	run(s, int(cfg.Player.PowerUpDuration/frame)+5, Input{})
	if c.Boosted() || c.Speed() != cfg.Player.MoveSpeed {
		t.Errorf("boost should expire, speed=%v", c.Speed())
	}
}

func TestHealthPowerUpHeals(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg, 1)
	c := s.Controller()
	s.State().RegisterHazardHit()

	c.OnCollisionEnter(NewPowerUp(engine.KindHealthPowerUp))
	if s.State().HP() != cfg.Game.InitialHP-1+cfg.PowerUps.Heal {
		t.Errorf("hp = %d after healing", s.State().HP())
	}
}

func TestPlayerWithoutReferencesIsInert(t *testing.T) {
	c := NewPlayerController(config.Default(), nil, nil, nil, quietLogger())
	g := engine.NewGameObject("Player")
	g.AddComponent(c)
	c.Step(frame, Input{Move: 1, Jump: true})
	c.OnCollisionEnter(NewPowerUp(engine.KindHealthPowerUp))
	if g.Transform.Position != (rl.Vector3{}) {
		t.Error("controller without references moved the player")
	}
}
