package world

import (
	"lightpuzzle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from a view-projection matrix
// Uses the Gribb/Hartmann method for plane extraction
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.GetCameraMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, 0.1, 1000.0)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, 0.1, 1000.0)
	}

	// raylib matrices are column-major: row r of VP is (M[r], M[r+4], M[r+8], M[r+12])
	vp := rl.MatrixMultiply(view, proj)
	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for i := 0; i < 3; i++ {
		for j, sign := range [2]float32{1, -1} {
			f.planes[i*2+j] = normalizePlane(Plane{
				normal: rl.Vector3{
					X: rows[3][0] + sign*rows[i][0],
					Y: rows[3][1] + sign*rows[i][1],
					Z: rows[3][2] + sign*rows[i][2],
				},
				distance: rows[3][3] + sign*rows[i][3],
			})
		}
	}
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

// ContainsAABB tests the box's bounding sphere.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	center := rl.Vector3Scale(rl.Vector3Add(box.Min, box.Max), 0.5)
	radius := rl.Vector3Distance(box.Min, box.Max) / 2
	return f.ContainsSphere(center, radius)
}
