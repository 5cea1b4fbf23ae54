package game

import (
	"fmt"
	"time"

	"pillarrun/internal/components"
	"pillarrun/internal/physics"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors
var (
	colorSky       = rl.NewColor(24, 26, 38, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextLight = rl.NewColor(255, 255, 255, 255)
)

const shadowReach = 50

func initStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextLight))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextLight))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
}

func (g *Game) Draw() {
	drawStart := time.Now()
	rl.BeginDrawing()
	rl.ClearBackground(colorSky)

	cam := g.follow.GetRaylibCamera()
	rl.BeginMode3D(cam)
	g.drawScene(viewFrustum(cam, float32(rl.GetScreenWidth())/float32(max(rl.GetScreenHeight(), 1))))
	if hit, ok := g.shadow(); ok {
		rl.DrawCylinder(rl.Vector3Add(hit.Point, rl.Vector3{Y: 0.01}), 0.3, 0.3, 0.01, 16, rl.Fade(rl.Black, 0.35))
	}
	rl.EndMode3D()

	g.hud.Draw()
	g.drawMenu()
	if g.opts.Debug {
		g.drawDebug()
	}
	rl.EndDrawing()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

func (g *Game) drawScene(view frustum) {
	g.drawn, g.culled = 0, 0
	for _, obj := range g.session.Scene().GameObjects {
		if !obj.ActiveInHierarchy() {
			continue
		}
		for _, c := range obj.Components() {
			m, ok := c.(*components.MeshRenderer)
			if !ok {
				continue
			}
			if center, radius := meshBounds(m); !view.containsSphere(center, radius) {
				g.culled++
				continue
			}
			m.Draw()
			g.drawn++
		}
	}
}

// shadow finds the ground under the player so a jump or a fall can be judged.
func (g *Game) shadow() (physics.RaycastHit, bool) {
	player := g.session.Player()
	return g.session.World().Raycast(player.WorldPosition(), rl.Vector3{Y: -1}, shadowReach, player)
}

// drawMenu shows the pause or game-over panel. Buttons act immediately.
func (g *Game) drawMenu() {
	st := g.session.State()
	if !st.Paused() {
		return
	}
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, int32(w), int32(h), rl.Fade(rl.Black, 0.45))

	panel := rl.Rectangle{X: w/2 - 160, Y: h/2 - 130, Width: 320, Height: 260}
	title := "Paused"
	if st.Over() {
		title = "Game Over"
	}
	gui.Panel(panel, title)

	row := func(i int) rl.Rectangle {
		return rl.Rectangle{X: panel.X + 30, Y: panel.Y + 40 + float32(i)*48, Width: panel.Width - 60, Height: 36}
	}
	gui.Label(row(0), fmt.Sprintf("Score %d   Best %d", st.Score(), max(g.highScore, st.Score())))

	next := 1
	if !st.Over() {
		if gui.Button(row(next), "Resume") {
			st.Resume()
		}
		next++
	}
	if gui.Button(row(next), "Replay") {
		g.Replay()
	}
	if gui.Button(row(next+1), "Quit") {
		g.quit = true
	}
}

func (g *Game) drawDebug() {
	x := int32(rl.GetScreenWidth()) - 260
	rl.DrawFPS(x, 10)
	p := g.session.Player().WorldPosition()
	rl.DrawText(fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)", p.X, p.Y, p.Z), x, 35, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Bridge: %v  Pillars: %v", g.session.Bridge().State(), g.session.Pillars().State()), x, 55, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Anim: %v", g.session.Controller().Anim()), x, 75, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Meshes: %d drawn, %d culled", g.drawn, g.culled), x, 95, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), x, 115, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), x, 135, 16, rl.Green)
}
