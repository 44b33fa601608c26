package world

import (
	"lightpuzzle/internal/components"
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws every Drawable in the scene. Objects with colliders are
// culled against the camera frustum; beams are never culled.
type Renderer struct {
	FloorColor rl.Color
	GridColor  rl.Color
	Culled     int // objects skipped last frame
}

func NewRenderer() *Renderer {
	return &Renderer{
		FloorColor: rl.NewColor(40, 40, 48, 255),
		GridColor:  rl.DarkGray,
	}
}

// Draw must be called between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(camera rl.Camera3D, gameObjects []*engine.GameObject) {
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	frustum := ExtractFrustum(camera, aspect)

	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: FloorSize, Y: FloorSize}, r.FloorColor)
	rl.DrawGrid(int32(FloorSize), 1)

	r.Culled = 0
	for _, g := range gameObjects {
		if !g.Active {
			continue
		}
		if col := engine.FindComponent[physics.Collider](g); col != nil && !frustum.ContainsAABB(col.Bounds()) {
			r.Culled++
			continue
		}
		for _, c := range g.Components() {
			if _, beam := c.(*components.BeamRenderer); beam {
				continue
			}
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}

	// Beams cross the whole level, so they skip culling and draw over geometry.
	for _, g := range gameObjects {
		if b := engine.GetComponent[*components.BeamRenderer](g); b != nil {
			b.Draw()
		}
	}
}
