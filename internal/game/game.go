package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lightpuzzle/internal/beamstream"
	"lightpuzzle/internal/components"
	"lightpuzzle/internal/config"
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    config.Config
	World     *world.World
	Renderer  *world.Renderer
	Publisher *Publisher
	DebugMode bool

	watcher     *world.Watcher
	undo        undoStack
	solved      bool
	cursorShown bool
	log         *slog.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New prepares a game. hub may be nil when streaming is disabled.
func New(cfg config.Config, hub *beamstream.Hub) *Game {
	g := &Game{
		Config:   cfg,
		World:    world.New(),
		Renderer: world.NewRenderer(),
		log:      slog.With("component", "game"),
	}
	if hub != nil {
		g.Publisher = NewPublisher(hub, cfg.Stream.Every)
	}
	return g
}

func (g *Game) Run(ctx context.Context) error {
	flags := uint32(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	if g.Config.Window.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)
	rl.SetExitKey(0)
	rl.DisableCursor()
	setupHUDStyle()

	if err := g.LoadLevel(g.Config.Level.Path); err != nil {
		return err
	}
	g.World.SpawnPlayer()

	if g.Config.Level.HotReload {
		debounce := time.Duration(float64(g.Config.Level.DebounceSeconds) * float64(time.Second))
		w, err := world.WatchLevel(ctx, g.Config.Level.Path, debounce)
		if err != nil {
			g.log.Warn("level hot reload disabled", "error", err)
		} else {
			g.watcher = w
		}
	}

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		g.Update()
		g.Draw()
	}
	return nil
}

// LoadLevel (re)loads path and resets per-level state.
func (g *Game) LoadLevel(path string) error {
	if err := g.World.LoadLevel(path); err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	ApplyBeamConfig(g.World, g.Config.Beam)
	g.undo.clear()
	g.solved = false
	if g.Publisher != nil {
		g.Publisher.Reset()
	}
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if g.watcher != nil {
		select {
		case <-g.watcher.Changes():
			if err := g.LoadLevel(g.World.LevelPath); err != nil {
				g.log.Error("level reload failed, keeping current level", "error", err)
			}
		default:
		}
	}

	if handle := g.playerHandle(); handle != nil && (rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyE)) {
		if m := handle.Focus(); m != nil {
			g.undo.push(m.GetGameObject())
		}
	}

	g.World.Update(deltaTime)

	if rl.IsKeyPressed(rl.KeyZ) {
		g.undo.pop()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Restart()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.toggleCursor()
	}

	if !g.solved && g.World.Solved() {
		g.solved = true
		g.log.Info("level cleared", "level", g.World.LevelName)
	}

	if g.Publisher != nil {
		g.Publisher.Publish(g.World)
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// Restart reloads the current level from disk.
func (g *Game) Restart() {
	if err := g.LoadLevel(g.World.LevelPath); err != nil {
		g.log.Error("restart failed", "error", err)
		return
	}
	g.World.RespawnPlayer()
}

func (g *Game) toggleCursor() {
	g.cursorShown = !g.cursorShown
	if g.cursorShown {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
}

func (g *Game) playerHandle() *components.MirrorHandle {
	if g.World.Player == nil {
		return nil
	}
	return engine.GetComponent[*components.MirrorHandle](g.World.Player)
}

func (g *Game) Draw() {
	cam := g.World.MainCamera()
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(12, 12, 18, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.Renderer.Draw(camera, g.World.Scene.GameObjects)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}
