package physics

import (
	"lightpuzzle/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rotMatrix := engine.RotationMatrix(rotation)

	// Extract rotated axes
	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: math32.Abs(size.X) / 2, Y: math32.Abs(size.Y) / 2, Z: math32.Abs(size.Z) / 2},
		Axes:     axes,
	}
}

// NewOBBFromBox creates an OBB from center, size, rotation, and scale
func NewOBBFromBox(center, size, rotation, scale rl.Vector3) OBB {
	scaledSize := rl.Vector3{
		X: size.X * scale.X,
		Y: size.Y * scale.Y,
		Z: size.Z * scale.Z,
	}
	return NewOBB(center, scaledSize, rotation)
}

// ToLocal expresses a world-space point in the box's frame, relative to its center.
func (o OBB) ToLocal(point rl.Vector3) rl.Vector3 {
	rel := rl.Vector3Subtract(point, o.Center)
	return o.localDir(rel)
}

func (o OBB) localDir(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: rl.Vector3DotProduct(v, o.Axes[0]),
		Y: rl.Vector3DotProduct(v, o.Axes[1]),
		Z: rl.Vector3DotProduct(v, o.Axes[2]),
	}
}

// Contains reports whether point lies inside the box grown by skin on every side.
func (o OBB) Contains(point rl.Vector3, skin float32) bool {
	l := o.ToLocal(point)
	return math32.Abs(l.X) <= o.HalfSize.X+skin &&
		math32.Abs(l.Y) <= o.HalfSize.Y+skin &&
		math32.Abs(l.Z) <= o.HalfSize.Z+skin
}

// Bounds returns the world-space AABB enclosing the box.
func (o OBB) Bounds() AABB {
	var ext rl.Vector3
	for i, h := range [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z} {
		a := o.Axes[i]
		ext.X += math32.Abs(a.X) * h
		ext.Y += math32.Abs(a.Y) * h
		ext.Z += math32.Abs(a.Z) * h
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, ext), Max: rl.Vector3Add(o.Center, ext)}
}

// ClosestPointOnOBB returns the closest point on the OBB surface to the given point
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	l := o.ToLocal(point)

	// Clamp to box extents
	closestX := clampf(l.X, -o.HalfSize.X, o.HalfSize.X)
	closestY := clampf(l.Y, -o.HalfSize.Y, o.HalfSize.Y)
	closestZ := clampf(l.Z, -o.HalfSize.Z, o.HalfSize.Z)

	// Transform back to world space
	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], closestX))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], closestY))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], closestZ))

	return result
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
