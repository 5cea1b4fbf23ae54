package game

import (
	"pillarrun/internal/runner"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keys is the keyboard as the game sees it. raylibKeys reads the window;
// tests supply their own.
type Keys interface {
	Down(key int32) bool
	Pressed(key int32) bool
	Released(key int32) bool
}

type raylibKeys struct{}

func (raylibKeys) Down(key int32) bool     { return rl.IsKeyDown(key) }
func (raylibKeys) Pressed(key int32) bool  { return rl.IsKeyPressed(key) }
func (raylibKeys) Released(key int32) bool { return rl.IsKeyReleased(key) }

const (
	keyBuild = rl.KeySpace
	keyJump  = rl.KeyJ
)

// ReadInput maps the keyboard to one frame of gameplay input.
// W/S or Up/Down move, A/D or Left/Right turn, Space builds, J jumps.
func ReadInput(k Keys) runner.Input {
	var in runner.Input
	if k.Down(rl.KeyW) || k.Down(rl.KeyUp) {
		in.Move++
	}
	if k.Down(rl.KeyS) || k.Down(rl.KeyDown) {
		in.Move--
	}
	if k.Down(rl.KeyD) || k.Down(rl.KeyRight) {
		in.Turn++
	}
	if k.Down(rl.KeyA) || k.Down(rl.KeyLeft) {
		in.Turn--
	}
	in.Jump = k.Pressed(keyJump)
	in.BuildDown = k.Pressed(keyBuild)
	in.BuildHeld = k.Down(keyBuild)
	in.BuildUp = k.Released(keyBuild)
	return in
}

// PausePressed reports the pause toggle, P or Escape.
func PausePressed(k Keys) bool {
	return k.Pressed(rl.KeyP) || k.Pressed(rl.KeyEscape)
}
