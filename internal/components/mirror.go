package components

import (
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/reflection"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type MixMode int

const (
	MixAdditive MixMode = iota
	MixAverage
)

func (m MixMode) String() string {
	if m == MixAverage {
		return "average"
	}
	return "additive"
}

func ParseMixMode(s string) MixMode {
	if s == "average" {
		return MixAverage
	}
	return MixAdditive
}

// Mirror reflects beams off the broad faces of its collider, the ones whose
// normal is the object's local Z axis. Edge hits absorb the beam unless
// ReflectEdges is set.
type Mirror struct {
	engine.BaseComponent
	Tint         rl.Color
	MaxAngle     float32 // degrees from the normal; 0 means any angle
	MixMode      MixMode
	ReflectEdges bool
	Locked       bool // the player cannot rotate it
}

var _ reflection.Mirror = (*Mirror)(nil)

func NewMirror(tint rl.Color) *Mirror {
	return &Mirror{Tint: tint}
}

func (m *Mirror) Color() rl.Color {
	return m.Tint
}

func (m *Mirror) MixColor(incoming rl.Color) rl.Color {
	if m.MixMode == MixAverage {
		return reflection.MixAverage(incoming, m.Tint)
	}
	return reflection.MixAdditive(incoming, m.Tint)
}

func (m *Mirror) Reflect(incoming, normal rl.Vector3) (rl.Vector3, bool) {
	in := rl.Vector3Normalize(incoming)
	n := rl.Vector3Normalize(normal)

	cosIncidence := -rl.Vector3DotProduct(in, n)
	if cosIncidence <= 0 {
		return rl.Vector3{}, false
	}
	if !m.ReflectEdges && !m.isFace(n) {
		return rl.Vector3{}, false
	}
	if m.MaxAngle > 0 {
		angle := math32.Acos(min(cosIncidence, 1)) * rl.Rad2deg
		if angle > m.MaxAngle {
			return rl.Vector3{}, false
		}
	}
	return rl.Vector3Reflect(in, n), true
}

func (m *Mirror) isFace(n rl.Vector3) bool {
	g := m.GetGameObject()
	if g == nil {
		return true
	}
	return math32.Abs(rl.Vector3DotProduct(n, g.Forward())) > 0.99
}

// Rotate turns the mirror around the world Y axis.
func (m *Mirror) Rotate(degrees float32) {
	g := m.GetGameObject()
	if g == nil || m.Locked {
		return
	}
	g.Transform.Rotation.Y = math32.Mod(g.Transform.Rotation.Y+degrees+360, 360)
}
