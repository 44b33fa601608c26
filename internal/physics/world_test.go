package physics

import (
	"testing"

	"lightpuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type testBox struct {
	engine.BaseComponent
	size rl.Vector3
}

func (b *testBox) obb() OBB {
	g := b.GetGameObject()
	return NewOBBFromBox(g.WorldPosition(), b.size, g.WorldRotation(), g.WorldScale())
}

func (b *testBox) Raycast(origin, direction rl.Vector3, maxDistance float32) (Hit, bool) {
	return RaycastOBB(origin, direction, b.obb(), maxDistance)
}

func (b *testBox) Contains(point rl.Vector3, skin float32) bool {
	return b.obb().Contains(point, skin)
}

func (b *testBox) Bounds() AABB {
	return b.obb().Bounds()
}

func boxAt(name string, pos rl.Vector3, layer uint32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.Layer = layer
	g.AddComponent(&testBox{size: rl.Vector3{X: 2, Y: 2, Z: 2}})
	return g
}

func TestPhysicsWorldRaycastNearest(t *testing.T) {
	w := NewPhysicsWorld()
	far := boxAt("Far", rl.Vector3{Z: 20}, 1)
	close := boxAt("Near", rl.Vector3{Z: 10}, 1)
	w.AddObject(far)
	w.AddObject(close)
	w.AddObject(engine.NewGameObject("NoCollider"))

	if w.BodyCount() != 2 {
		t.Fatalf("Expected 2 bodies, got %d", w.BodyCount())
	}

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 3}, 100, 1)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.GameObject != close {
		t.Errorf("Expected nearest object 'Near', got '%s'", hit.GameObject.Name)
	}
	if !near(hit.Distance, 9) {
		t.Errorf("Expected distance 9, got %f", hit.Distance)
	}
}

func TestPhysicsWorldRaycastLayerMask(t *testing.T) {
	w := NewPhysicsWorld()
	w.AddObject(boxAt("Ignored", rl.Vector3{Z: 10}, 1<<3))
	want := boxAt("Wanted", rl.Vector3{Z: 20}, 1<<1)
	w.AddObject(want)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100, 1<<0|1<<1)
	if !ok || hit.GameObject != want {
		t.Fatal("Raycast should skip objects outside the mask")
	}
}

func TestPhysicsWorldIgnoresColliderContainingOrigin(t *testing.T) {
	w := NewPhysicsWorld()
	mirror := boxAt("Mirror", rl.Vector3{}, 1)
	wall := boxAt("Wall", rl.Vector3{Z: 10}, 1)
	w.AddObject(mirror)
	w.AddObject(wall)

	// Start on the mirror's front face
	hit, ok := w.Raycast(rl.Vector3{Z: 1}, rl.Vector3{Z: 1}, 100, 1)
	if !ok || hit.GameObject != wall {
		t.Fatal("Ray leaving a surface should not hit that surface again")
	}
}

func TestPhysicsWorldInactiveAndRemoved(t *testing.T) {
	w := NewPhysicsWorld()
	a := boxAt("A", rl.Vector3{Z: 10}, 1)
	b := boxAt("B", rl.Vector3{Z: 20}, 1)
	w.AddObject(a)
	w.AddObject(b)

	a.Active = false
	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100, 1)
	if !ok || hit.GameObject != b {
		t.Error("Inactive objects should be skipped")
	}

	w.RemoveObject(b)
	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100, 1); ok {
		t.Error("Removed object should not be hit")
	}
	if w.BodyCount() != 1 {
		t.Errorf("Expected 1 body after removal, got %d", w.BodyCount())
	}

	w.Clear()
	if w.BodyCount() != 0 {
		t.Error("Clear should drop all bodies")
	}
}

func TestPhysicsWorldOverlapping(t *testing.T) {
	w := NewPhysicsWorld()
	player := boxAt("Player", rl.Vector3{}, 1)
	w.AddObject(player)
	w.AddObject(boxAt("Wall", rl.Vector3{X: 1.5}, 1))
	w.AddObject(boxAt("Far", rl.Vector3{X: 10}, 1))

	got := w.Overlapping(NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}), player)
	if len(got) != 1 {
		t.Errorf("Expected 1 overlapping box, got %d", len(got))
	}
}
