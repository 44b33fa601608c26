package components

import (
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// WorldRadius scales the radius by the largest world scale axis.
func (s *SphereCollider) WorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	return s.Radius * max(sc.X, sc.Y, sc.Z)
}

func (s *SphereCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	return physics.RaycastSphere(origin, direction, s.GetCenter(), s.WorldRadius(), maxDistance)
}

func (s *SphereCollider) Contains(point rl.Vector3, skin float32) bool {
	r := s.WorldRadius() + skin
	d := rl.Vector3Subtract(point, s.GetCenter())
	return rl.Vector3DotProduct(d, d) <= r*r
}

func (s *SphereCollider) Bounds() physics.AABB {
	r := s.WorldRadius()
	return physics.NewAABBFromCenter(s.GetCenter(), rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r})
}
