package components

import (
	"math"

	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Oscillator moves its owner's local position around Origin. X and Z follow
// sin(t), Y follows sin(2t) so vertical bobbing reads as a separate motion.
type Oscillator struct {
	engine.BaseComponent
	Origin    rl.Vector3
	Amplitude rl.Vector3
	Speed     float32 // radians per second
	Phase     float32
	Paused    bool
	time      float32
}

func NewOscillator(origin, amplitude rl.Vector3, speed, phase float32) *Oscillator {
	return &Oscillator{
		Origin:    origin,
		Amplitude: amplitude,
		Speed:     speed,
		Phase:     phase,
	}
}

// Restart re-centers the motion on origin and rewinds it.
func (o *Oscillator) Restart(origin rl.Vector3) {
	o.Origin = origin
	o.time = 0
	o.Paused = false
}

// Halt freezes the owner at its current offset.
func (o *Oscillator) Halt() {
	o.Paused = true
}

// Offset is the displacement from Origin at the current time.
func (o *Oscillator) Offset() rl.Vector3 {
	t := float64(o.time*o.Speed + o.Phase)
	return rl.Vector3{
		X: float32(math.Sin(t)) * o.Amplitude.X,
		Y: float32(math.Sin(2*t)) * o.Amplitude.Y,
		Z: float32(math.Sin(t)) * o.Amplitude.Z,
	}
}

func (o *Oscillator) Update(deltaTime float32) {
	g := o.GetGameObject()
	if g == nil || o.Paused {
		return
	}

	o.time += deltaTime
	g.Transform.Position = rl.Vector3Add(o.Origin, o.Offset())
}
