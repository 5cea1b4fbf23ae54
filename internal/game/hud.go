package game

import (
	"fmt"
	"strings"

	"pillarrun/internal/components"
	"pillarrun/internal/engine"
	"pillarrun/internal/runner"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD is a screen-space overlay built from UIText components on one object.
type HUD struct {
	Root     *engine.GameObject
	HP       *components.UIText
	Score    *components.UIText
	PowerUps *components.UIText
	Hint     *components.UIText
}

func NewHUD() *HUD {
	h := &HUD{Root: engine.NewGameObject("HUD")}
	line := func(y float32, size int32, color rl.Color) *components.UIText {
		t := components.NewUIText()
		t.FontSize = size
		t.Color = color
		t.Rect = rl.Rectangle{X: 16, Y: y, Width: 480, Height: float32(size) + 6}
		h.Root.AddComponent(t)
		return t
	}
	h.HP = line(12, 24, rl.Red)
	h.Score = line(42, 24, rl.RayWhite)
	h.PowerUps = line(72, 20, rl.Gold)
	h.Hint = line(0, 16, rl.LightGray)
	h.Hint.Alignment = components.TextAlignCenter
	return h
}

// Refresh copies the run's numbers into the text components.
func (h *HUD) Refresh(state *runner.State, player *runner.PlayerController, highScore int) {
	h.HP.Text = fmt.Sprintf("HP %s", hearts(state.HP(), state.MaxHP()))
	h.Score.Text = fmt.Sprintf("Score %d  x%d  Best %d", state.Score(), state.Multiplier(), max(highScore, state.Score()))
	h.PowerUps.Text = powerUpLine(player)
}

// Layout centres the hint line along the bottom edge.
func (h *HUD) Layout(width, height int32) {
	h.Hint.Rect = rl.Rectangle{X: 0, Y: float32(height) - 28, Width: float32(width), Height: 22}
	h.Hint.Text = "W/S move  A/D turn  hold Space to build  J jump  P pause"
}

func (h *HUD) Draw() {
	for _, c := range h.Root.Components() {
		if t, ok := c.(*components.UIText); ok {
			t.Draw()
		}
	}
}

func hearts(hp, maxHP int) string {
	hp = min(max(hp, 0), maxHP)
	return strings.Repeat("#", hp) + strings.Repeat("-", maxHP-hp)
}

func powerUpLine(p *runner.PlayerController) string {
	if p == nil {
		return ""
	}
	var parts []string
	if p.Boosted() {
		parts = append(parts, fmt.Sprintf("Speed %.1fs", p.BoostRemaining()))
	}
	if p.Invincible() {
		parts = append(parts, fmt.Sprintf("Shield %.1fs", p.InvincibleRemaining()))
	}
	if p.Slowed() {
		parts = append(parts, "Slowed")
	}
	return strings.Join(parts, "  ")
}
