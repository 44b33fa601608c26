package components

import (
	"lightpuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		IsMain:     false,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()

	// Look for any LookProvider component on this object or parents
	var lookProvider engine.LookProvider
	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			lookProvider = lp
			break
		}
	}

	// A camera sharing the controller's object sits at eye height; a child
	// camera keeps its own local offset.
	if lookProvider != nil && g.Parent == nil {
		eyePos.Y += lookProvider.GetEyeHeight()
	}

	var lookDir rl.Vector3
	if lookProvider != nil {
		lookDir = lookProvider.GetLookDirection()
	} else {
		lookDir = g.Forward()
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, lookDir),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
