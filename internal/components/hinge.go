package components

import (
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hinge pins the base of an upright body to Pivot so that, once simulated,
// it topples forward along Yaw instead of falling freely.
type Hinge struct {
	engine.BaseComponent
	Pivot        rl.Vector3 // world space
	Yaw          float32    // degrees; the body falls toward HeadingFromYaw(Yaw)
	Length       float32    // world length of the body along its local Y
	Angle        float32    // tilt from vertical in degrees
	AngularSpeed float32    // degrees per second
	RestAngle    float32
	Resting      bool

	// Solids already touching the body when it was released. Contact with
	// these does not stop the fall.
	Ignore map[uint64]bool
}

func NewHinge(pivot rl.Vector3, yaw, length, startAngle, restAngle float32) *Hinge {
	return &Hinge{
		Pivot:     pivot,
		Yaw:       yaw,
		Length:    length,
		Angle:     startAngle,
		RestAngle: restAngle,
	}
}

// Axis is the body's long axis in world space for the current angle.
func (h *Hinge) Axis() rl.Vector3 {
	return engine.RotateEuler(rl.Vector3{Y: 1}, rl.Vector3{X: h.Angle, Y: h.Yaw})
}

// Apply writes the pose for the current angle into the owner's transform.
func (h *Hinge) Apply() {
	g := h.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = rl.Vector3Add(h.Pivot, rl.Vector3Scale(h.Axis(), h.Length/2))
	g.Transform.Rotation = rl.Vector3{X: h.Angle, Y: h.Yaw}
}

// Rest stops the swing at the current angle.
func (h *Hinge) Rest() {
	h.AngularSpeed = 0
	h.Resting = true
}
