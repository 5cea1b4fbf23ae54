package runner

import (
	"math"
	"math/rand"

	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Autopilot plays a session without a keyboard: face the pillar ahead,
// grow a span to the gap, wait for it to land, walk across.
type Autopilot struct {
	session *Session
	rng     *rand.Rand

	// Jitter is the relative error applied to every span length, so runs
	// miss now and then the way a person would.
	Jitter float32

	target float32 // span length for the build in progress
}

// facingTolerance is how far off (degrees) the heading may be before a build starts.
const facingTolerance = 2

func NewAutopilot(session *Session, rng *rand.Rand) *Autopilot {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Autopilot{session: session, rng: rng}
}

// Next decides the input for the coming frame.
func (a *Autopilot) Next() Input {
	var in Input
	s := a.session
	pillar := s.Pillars().Current()
	if pillar == nil || s.State().Paused() {
		return in
	}
	player := s.Player()
	toPillar := rl.Vector3Subtract(pillar.WorldPosition(), player.WorldPosition())
	toPillar.Y = 0

	off := wrapDegrees(engine.YawFromDirection(toPillar) - player.Transform.Rotation.Y)
	facing := float32(math.Abs(float64(off))) < facingTolerance
	if !facing {
		// Positive turn input lowers the yaw
		in.Turn = rl.Clamp(-off/10, -1, 1)
	}

	bridge := s.Bridge()
	switch bridge.State() {
	case BridgeIdle:
		if facing && s.Controller().Grounded() && !s.Pillars().Arrived() {
			a.target = a.spanLength(toPillar)
			in.BuildDown, in.BuildHeld = true, true
		}
	case BridgeGrowing:
		if bridge.Scale()*s.Tunables().Bridge.BaseLength >= a.target {
			in.BuildUp = true
		} else {
			in.BuildHeld = true
		}
	case BridgeActive:
		span := s.Catalog().Span(bridge.CurrentSpan())
		if span != nil && span.Hinge.Resting && facing {
			in.Move = 1
		}
	}
	return in
}

// spanLength is the length that reaches the pillar centre from the spawn
// point, clamped to what the bridge can grow to.
func (a *Autopilot) spanLength(toPillar rl.Vector3) float32 {
	cfg := a.session.Tunables().Bridge
	length := rl.Vector3Length(toPillar) - cfg.SpawnForward
	if a.Jitter > 0 {
		length *= 1 + (a.rng.Float32()*2-1)*a.Jitter
	}
	lo, hi := cfg.MinScale*cfg.BaseLength, cfg.MaxScale*cfg.BaseLength
	// Stay under the top so the triangle wave never has to turn around
	return rl.Clamp(length, lo, hi-0.01)
}

// wrapDegrees maps an angle to (-180, 180].
func wrapDegrees(d float32) float32 {
	d = float32(math.Mod(float64(d), 360))
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
