package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

func nearVec(a, b rl.Vector3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestRaycastOBBAxisAligned(t *testing.T) {
	box := NewOBB(rl.Vector3{Z: 10}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{})

	hit, ok := RaycastOBB(rl.Vector3{}, rl.Vector3{Z: 1}, box, 100)
	if !ok {
		t.Fatal("Expected hit on box ahead")
	}
	if !near(hit.Distance, 9) {
		t.Errorf("Expected distance 9, got %f", hit.Distance)
	}
	if !nearVec(hit.Normal, rl.Vector3{Z: -1}) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
	if !nearVec(hit.Point, rl.Vector3{Z: 9}) {
		t.Errorf("Expected point (0,0,9), got %v", hit.Point)
	}
}

func TestRaycastOBBOutOfRange(t *testing.T) {
	box := NewOBB(rl.Vector3{Z: 10}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{})

	if _, ok := RaycastOBB(rl.Vector3{}, rl.Vector3{Z: 1}, box, 5); ok {
		t.Error("Box beyond max distance should not be hit")
	}
	if _, ok := RaycastOBB(rl.Vector3{}, rl.Vector3{Z: -1}, box, 100); ok {
		t.Error("Box behind the ray should not be hit")
	}
	if _, ok := RaycastOBB(rl.Vector3{X: 5}, rl.Vector3{Z: 1}, box, 100); ok {
		t.Error("Parallel ray outside the slab should miss")
	}
}

func TestRaycastOBBRotated(t *testing.T) {
	// Thin mirror turned 45 degrees about Y
	box := NewOBB(rl.Vector3{Z: 5}, rl.Vector3{X: 4, Y: 2, Z: 0.1}, rl.Vector3{Y: 45})

	hit, ok := RaycastOBB(rl.Vector3{}, rl.Vector3{Z: 1}, box, 100)
	if !ok {
		t.Fatal("Expected hit on rotated box")
	}
	if hit.Distance > 5 || hit.Distance < 4.8 {
		t.Errorf("Expected hit just before z=5, got %f", hit.Distance)
	}
	s := math32.Sqrt(0.5)
	if !nearVec(hit.Normal, rl.Vector3{X: -s, Z: -s}) {
		t.Errorf("Expected normal (-0.707,0,-0.707), got %v", hit.Normal)
	}
}

func TestRaycastOBBFromInsideReportsExit(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{})

	hit, ok := RaycastOBB(rl.Vector3{}, rl.Vector3{X: 1}, box, 100)
	if !ok {
		t.Fatal("Expected exit hit from inside")
	}
	if !near(hit.Distance, 1) || !nearVec(hit.Normal, rl.Vector3{X: 1}) {
		t.Errorf("Unexpected exit hit %+v", hit)
	}
}

func TestRaycastSphere(t *testing.T) {
	hit, ok := RaycastSphere(rl.Vector3{}, rl.Vector3{X: 1}, rl.Vector3{X: 10}, 2, 100)
	if !ok {
		t.Fatal("Expected sphere hit")
	}
	if !near(hit.Distance, 8) || !nearVec(hit.Normal, rl.Vector3{X: -1}) {
		t.Errorf("Unexpected sphere hit %+v", hit)
	}

	if _, ok := RaycastSphere(rl.Vector3{}, rl.Vector3{Y: 1}, rl.Vector3{X: 10}, 2, 100); ok {
		t.Error("Ray pointing away should miss")
	}
}

func TestOBBContainsAndBounds(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{Y: 45})

	if !box.Contains(rl.Vector3{}, 0) {
		t.Error("Center should be inside")
	}
	// Along the rotated local X axis the face sits at distance 1
	if box.Contains(rl.Vector3Scale(box.Axes[0], 1.2), 0) {
		t.Error("Point beyond the rotated face should be outside")
	}
	if !box.Contains(rl.Vector3{X: 1.41}, 0) {
		// corner direction after 45 degree yaw reaches sqrt(2)
		t.Error("Point toward the rotated corner should be inside")
	}

	b := box.Bounds()
	if !near(b.Max.X, math32.Sqrt(2)) || !near(b.Max.Y, 1) {
		t.Errorf("Unexpected bounds %+v", b)
	}
}

func TestClosestPointOnOBB(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{})

	p := ClosestPointOnOBB(box, rl.Vector3{X: 5, Y: 0.5})
	if !nearVec(p, rl.Vector3{X: 1, Y: 0.5}) {
		t.Errorf("Expected (1,0.5,0), got %v", p)
	}
}

func TestAABBResolve(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{X: 0.9}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})

	push := a.Resolve(b)
	if !near(push.X, 0.1) || push.Y != 0 || push.Z != 0 {
		t.Errorf("Expected push (0.1,0,0), got %v", push)
	}

	c := NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	if push := c.Resolve(b); push != rl.Vector3Zero() {
		t.Errorf("Disjoint boxes should not push, got %v", push)
	}
}
