package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hit is a single ray/shape intersection.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastOBB runs the slab test in the box's local frame. direction must be
// normalized. The normal is the world-space normal of the entered face.
func RaycastOBB(origin, direction rl.Vector3, box OBB, maxDistance float32) (Hit, bool) {
	o := box.ToLocal(origin)
	d := box.localDir(direction)
	half := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}
	lo := [3]float32{o.X, o.Y, o.Z}
	ld := [3]float32{d.X, d.Y, d.Z}

	tmin := float32(-1e30)
	tmax := float32(1e30)
	enterAxis, exitAxis := -1, -1
	var enterSign, exitSign float32

	for i := 0; i < 3; i++ {
		if math32.Abs(ld[i]) < 1e-8 {
			// Parallel to this slab: must already be between the planes
			if lo[i] < -half[i] || lo[i] > half[i] {
				return Hit{}, false
			}
			continue
		}
		t1 := (-half[i] - lo[i]) / ld[i]
		t2 := (half[i] - lo[i]) / ld[i]
		// Entering through the -half face when moving along +axis
		sign1, sign2 := float32(-1), float32(1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign1, sign2 = sign2, sign1
		}
		if t1 > tmin {
			tmin = t1
			enterAxis = i
			enterSign = sign1
		}
		if t2 < tmax {
			tmax = t2
			exitAxis = i
			exitSign = sign2
		}
		if tmin > tmax {
			return Hit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}

	t, axis, sign := tmin, enterAxis, enterSign
	if t < 0 {
		// Origin inside the box: report the exit face
		t, axis, sign = tmax, exitAxis, exitSign
	}
	if t < 0 || t > maxDistance || axis < 0 {
		return Hit{}, false
	}

	return Hit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
		Normal:   rl.Vector3Scale(box.Axes[axis], sign),
		Distance: t,
	}, true
}

// RaycastSphere intersects a normalized ray with a sphere.
func RaycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (Hit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	sq := math32.Sqrt(discriminant)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return Hit{Point: point, Normal: normal, Distance: t}, true
}
