package components

import (
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshCylinder
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Offset   rl.Vector3 // local, before scale
	Wires    bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw renders the mesh with the owner's world transform. Must be called
// between BeginMode3D and EndMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}

	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	// Matches engine.RotateEuler: X first, then Y, then Z
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.Scalef(scale.X, scale.Y, scale.Z)
	rl.Translatef(m.Offset.X, m.Offset.Y, m.Offset.Z)

	switch m.MeshType {
	case MeshCube:
		rl.DrawCube(rl.Vector3{}, m.Size.X, m.Size.Y, m.Size.Z, m.Color)
		if m.Wires {
			rl.DrawCubeWires(rl.Vector3{}, m.Size.X, m.Size.Y, m.Size.Z, rl.Fade(rl.Black, 0.4))
		}
	case MeshSphere:
		rl.DrawSphere(rl.Vector3{}, m.Size.X/2, m.Color)
	case MeshCylinder:
		base := rl.Vector3{Y: -m.Size.Y / 2}
		rl.DrawCylinder(base, m.Size.X/2, m.Size.X/2, m.Size.Y, 12, m.Color)
		if m.Wires {
			rl.DrawCylinderWires(base, m.Size.X/2, m.Size.X/2, m.Size.Y, 12, rl.Fade(rl.Black, 0.4))
		}
	}

	rl.PopMatrix()
}
