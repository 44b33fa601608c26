package physics

import (
	"lightpuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skin is the tolerance used when deciding whether a ray starts inside a
// collider. Rays that start inside (or on) a collider never report it, so a
// beam leaving a mirror surface does not hit the same mirror again.
const Skin float32 = 1e-3

// Collider is implemented by collider components.
type Collider interface {
	engine.Component
	Raycast(origin, direction rl.Vector3, maxDistance float32) (Hit, bool)
	Contains(point rl.Vector3, skin float32) bool
	Bounds() AABB
}

type body struct {
	object   *engine.GameObject
	collider Collider
}

// PhysicsWorld answers spatial queries over static colliders.
type PhysicsWorld struct {
	bodies []body
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{bodies: make([]body, 0)}
}

// AddObject registers every collider on g. Objects without colliders are ignored.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	for _, c := range g.Components() {
		if col, ok := c.(Collider); ok {
			p.bodies = append(p.bodies, body{object: g, collider: col})
		}
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	kept := p.bodies[:0]
	for _, b := range p.bodies {
		if b.object != g {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(p.bodies); i++ {
		p.bodies[i] = body{}
	}
	p.bodies = kept
}

func (p *PhysicsWorld) Clear() {
	p.bodies = p.bodies[:0]
}

func (p *PhysicsWorld) BodyCount() int {
	return len(p.bodies)
}

// Raycast returns the closest hit among active objects whose layer shares a
// bit with mask.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (engine.RaycastResult, bool) {
	direction = rl.Vector3Normalize(direction)
	var closest engine.RaycastResult
	closest.Distance = maxDistance
	found := false

	for _, b := range p.bodies {
		if !b.object.Active || b.object.Layer&mask == 0 {
			continue
		}
		if b.collider.Contains(origin, Skin) {
			continue
		}
		hit, ok := b.collider.Raycast(origin, direction, closest.Distance)
		if !ok || hit.Distance > closest.Distance {
			continue
		}
		closest = engine.RaycastResult{
			GameObject: b.object,
			Point:      hit.Point,
			Normal:     hit.Normal,
			Distance:   hit.Distance,
		}
		found = true
	}

	return closest, found
}

// Overlapping returns the static bounds that intersect box, for simple
// character push-out.
func (p *PhysicsWorld) Overlapping(box AABB, skip *engine.GameObject) []AABB {
	var result []AABB
	for _, b := range p.bodies {
		if b.object == skip || !b.object.Active {
			continue
		}
		if bounds := b.collider.Bounds(); bounds.Intersects(box) {
			result = append(result, bounds)
		}
	}
	return result
}
