package game

import (
	"fmt"

	"lightpuzzle/internal/components"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel       = rl.NewColor(18, 18, 24, 220)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorSolved        = rl.NewColor(120, 230, 140, 255)
)

func setupHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func (g *Game) DrawUI() {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	// Crosshair
	cx, cy := int32(screenW/2), int32(screenH/2)
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.White)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.White)

	panel := rl.NewRectangle(10, 10, 260, 110)
	gui.Panel(panel, g.World.LevelName)

	progress := g.World.Progress()
	gui.Label(rl.NewRectangle(20, 40, 80, 20), "Contact")
	gui.ProgressBar(rl.NewRectangle(90, 40, 170, 16), "", fmt.Sprintf("%3.0f%%", progress*100), progress, 0, 1)

	status := "Aim the beam at the target"
	if g.solved {
		status = "Solved!"
	} else if m := g.focusedMirror(); m != nil {
		if m.Locked {
			status = "Mirror is locked"
		} else {
			status = fmt.Sprintf("%s  Q/E rotate  Z undo", components.ColorName(m.Tint))
		}
	}
	gui.Label(rl.NewRectangle(20, 64, 240, 20), status)

	if gui.Button(rl.NewRectangle(20, 90, 100, 22), "Restart") {
		g.Restart()
	}

	if g.solved {
		text := "LEVEL CLEARED"
		w := rl.MeasureText(text, 40)
		rl.DrawText(text, int32(screenW/2)-w/2, int32(screenH*0.25), 40, colorSolved)
	}

	if g.DebugMode {
		g.drawDebug(screenW)
	}
}

func (g *Game) drawDebug(screenW float32) {
	x := int32(screenW) - 230
	rl.DrawRectangle(x-10, 10, 230, 110, colorBgPanel)
	rl.DrawFPS(x, 18)
	rl.DrawText(fmt.Sprintf("update %.2fms draw %.2fms", g.updateMs, g.drawMs), x, 40, 12, colorTextSecondary)
	rl.DrawText(fmt.Sprintf("culled %d  bodies %d", g.Renderer.Culled, g.World.Physics.BodyCount()), x, 58, 12, colorTextSecondary)
	y := int32(76)
	for _, gen := range g.World.Generators() {
		res := gen.Result()
		rl.DrawText(fmt.Sprintf("%s: %d segs %s", gen.GetGameObject().Name, len(res.Segments), res.Status), x, y, 12, colorTextSecondary)
		y += 16
	}
}

func (g *Game) focusedMirror() *components.Mirror {
	if h := g.playerHandle(); h != nil {
		return h.Focused()
	}
	return nil
}
