package components

import (
	"lightpuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshNames = map[MeshType]string{
	MeshCube:   "cube",
	MeshSphere: "sphere",
	MeshPlane:  "plane",
}

func (m MeshType) String() string {
	return meshNames[m]
}

// ParseMeshType maps a level-file mesh name to a MeshType.
func ParseMeshType(name string) (MeshType, bool) {
	for t, n := range meshNames {
		if n == name {
			return t, true
		}
	}
	return MeshCube, false
}

// MeshRenderer draws a primitive in immediate mode, so levels load without
// allocating GPU meshes.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      rl.Vector3
	Wireframe bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.Scalef(scale.X, scale.Y, scale.Z)

	origin := rl.Vector3Zero()
	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(origin, m.Size, m.Color)
		if m.Wireframe {
			rl.DrawCubeWiresV(origin, m.Size, rl.DarkGray)
		}
	case MeshSphere:
		rl.DrawSphere(origin, m.Size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(origin, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}

	rl.PopMatrix()
}
