package runner

import (
	"math/rand"
	"testing"

	"pillarrun/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestWrapDegrees(t *testing.T) {
	cases := map[float32]float32{0: 0, 190: -170, -190: 170, 540: 180, -180: 180, 45: 45}
	for in, want := range cases {
		if got := wrapDegrees(in); !near(got, want, 1e-4) {
			t.Errorf("wrapDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestAutopilotSizesTheSpanToTheGap(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg, 3)
	pilot := NewAutopilot(s, rand.New(rand.NewSource(3)))

	for i := 0; i < 600 && s.Bridge().State() != BridgeSettling; i++ {
		s.Update(frame, pilot.Next())
	}
	if s.Bridge().State() != BridgeSettling {
		t.Fatalf("no span released, bridge %v", s.Bridge().State())
	}

	span := s.Catalog().Span(s.Bridge().CurrentSpan())
	gap := rl.Vector3Subtract(s.Pillars().Current().WorldPosition(), span.Hinge.Pivot)
	gap.Y = 0
	if !near(span.Hinge.Length, rl.Vector3Length(gap), 0.15) {
		t.Errorf("span length %v for a gap of %v", span.Hinge.Length, rl.Vector3Length(gap))
	}
}

func TestAutopilotTurnsTowardThePillar(t *testing.T) {
	s := newTestSession(t, config.Default(), 3)
	pilot := NewAutopilot(s, nil)
	s.Update(frame, Input{})

	s.Player().Transform.Rotation.Y = 90
	in := pilot.Next()
	if in.Turn <= 0 || in.BuildDown {
		t.Errorf("facing away should turn right before building, got %+v", in)
	}
}

func TestAutopilotIdleWhilePaused(t *testing.T) {
	s := newTestSession(t, config.Default(), 3)
	pilot := NewAutopilot(s, nil)
	s.State().Pause()
	if in := pilot.Next(); in != (Input{}) {
		t.Errorf("paused input = %+v", in)
	}
}
