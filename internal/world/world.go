package world

import (
	"log/slog"

	"lightpuzzle/internal/components"
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collision layers. Beams trace against LayerReflective|LayerBlock by default;
// the player lives on its own layer so beams pass through it.
const (
	LayerReflective uint32 = 1 << 0
	LayerBlock      uint32 = 1 << 1
	LayerPlayer     uint32 = 1 << 2
)

const FloorSize = 40.0

type World struct {
	Scene     *engine.Scene
	Physics   *physics.PhysicsWorld
	LevelName string
	LevelPath string
	Spawn     SpawnDef
	Player    *engine.GameObject
	started   bool
	log       *slog.Logger
}

func New() *World {
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewPhysicsWorld(),
		Spawn:   defaultSpawn(),
		log:     slog.With("component", "world"),
	}
	w.Scene.World = w
	return w
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance, mask)
}

func (w *World) Destroy(g *engine.GameObject) {
	for _, child := range g.Children {
		w.Physics.RemoveObject(child)
	}
	w.Physics.RemoveObject(g)
	w.Scene.RemoveGameObject(g)
	if g == w.Player {
		w.Player = nil
	}
}

// Add places g in the scene and registers its colliders. Objects added after
// Start are started immediately.
func (w *World) Add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	if w.started {
		g.Start()
	}
}

func (w *World) Start() {
	w.started = true
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Clear drops every object, the player included.
func (w *World) Clear() {
	w.Scene = engine.NewScene(w.Scene.Name)
	w.Scene.World = w
	w.Physics.Clear()
	w.Player = nil
	w.started = false
}

func (w *World) Generators() []*components.LightGenerator {
	return engine.FindComponents[*components.LightGenerator](w.Scene)
}

func (w *World) Targets() []*components.TargetPoint {
	return engine.FindComponents[*components.TargetPoint](w.Scene)
}

// Solved reports whether the level has targets and every one of them is solved.
func (w *World) Solved() bool {
	targets := w.Targets()
	if len(targets) == 0 {
		return false
	}
	for _, t := range targets {
		if !t.IsSolved() {
			return false
		}
	}
	return true
}

// Progress is the best dwell progress over all emitters.
func (w *World) Progress() float32 {
	var best float32
	for _, g := range w.Generators() {
		best = max(best, g.Progress())
	}
	return best
}

// SpawnPlayer creates the code-managed player at the level's spawn point.
func (w *World) SpawnPlayer() *engine.GameObject {
	player := engine.NewGameObject("Player")
	player.Layer = LayerPlayer
	player.Transform.Position = w.Spawn.position()

	fps := components.NewFPSController()
	fps.Yaw = w.Spawn.Yaw
	player.AddComponent(fps)

	cam := components.NewCamera()
	cam.IsMain = true
	player.AddComponent(cam)

	player.AddComponent(components.NewMirrorHandle())
	player.AddComponent(NewPlayerCollision(w.Physics))

	w.Add(player)
	w.Player = player
	return player
}

// RespawnPlayer moves an existing player back to the spawn point.
func (w *World) RespawnPlayer() {
	if w.Player == nil {
		return
	}
	w.Player.Transform.Position = w.Spawn.position()
	if fps := engine.GetComponent[*components.FPSController](w.Player); fps != nil {
		fps.Yaw = w.Spawn.Yaw
		fps.Pitch = 0
	}
}

// MainCamera returns the camera of the player, if one is spawned.
func (w *World) MainCamera() *components.Camera {
	if w.Player == nil {
		return nil
	}
	return engine.GetComponent[*components.Camera](w.Player)
}
