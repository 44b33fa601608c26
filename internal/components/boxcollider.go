package components

import (
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3 // local space, rotates with the object
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// OBB returns the collider's world-space box.
func (b *BoxCollider) OBB() physics.OBB {
	g := b.GetGameObject()
	rot := g.WorldRotation()
	scale := g.WorldScale()
	offset := rl.Vector3Transform(rl.Vector3Multiply(b.Offset, scale), engine.RotationMatrix(rot))
	center := rl.Vector3Add(g.WorldPosition(), offset)
	return physics.NewOBBFromBox(center, b.Size, rot, scale)
}

func (b *BoxCollider) GetAABB() physics.AABB {
	return b.OBB().Bounds()
}

func (b *BoxCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	return physics.RaycastOBB(origin, direction, b.OBB(), maxDistance)
}

func (b *BoxCollider) Contains(point rl.Vector3, skin float32) bool {
	return b.OBB().Contains(point, skin)
}

func (b *BoxCollider) Bounds() physics.AABB {
	return b.OBB().Bounds()
}
