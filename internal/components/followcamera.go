package components

import (
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowCamera trails Target from behind and above, matching its yaw.
type FollowCamera struct {
	engine.BaseComponent
	Target    *engine.GameObject
	Distance  float32
	Height    float32
	Tilt      float32 // degrees, positive looks down
	Smoothing float32 // fraction of the gap closed per second
	FOV       float32
	snapped   bool
}

func NewFollowCamera(target *engine.GameObject) *FollowCamera {
	return &FollowCamera{
		Target:    target,
		Distance:  1.65,
		Height:    1.232,
		Tilt:      26.3,
		Smoothing: 10,
		FOV:       60,
	}
}

// Desired is where the camera wants to be this frame.
func (c *FollowCamera) Desired() rl.Vector3 {
	if c.Target == nil {
		return rl.Vector3{}
	}
	offset := engine.RotateEuler(rl.Vector3{Y: c.Height, Z: -c.Distance}, rl.Vector3{Y: c.Target.Transform.Rotation.Y})
	return rl.Vector3Add(c.Target.WorldPosition(), offset)
}

// Update runs after the target moved.
func (c *FollowCamera) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil || c.Target == nil {
		return
	}

	want := c.Desired()
	if !c.snapped {
		g.Transform.Position = want
		c.snapped = true
	} else {
		t := c.Smoothing * deltaTime
		if t > 1 {
			t = 1
		}
		g.Transform.Position = rl.Vector3Lerp(g.Transform.Position, want, t)
	}
	g.Transform.Rotation = rl.Vector3{X: c.Tilt, Y: c.Target.Transform.Rotation.Y}
}

// Snap jumps straight to the desired position on the next update.
func (c *FollowCamera) Snap() {
	c.snapped = false
}

func (c *FollowCamera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	pos := g.WorldPosition()
	look := engine.RotateEuler(rl.Vector3{Z: 1}, g.Transform.Rotation)
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Add(pos, look),
		Up:         rl.Vector3{Y: 1},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
