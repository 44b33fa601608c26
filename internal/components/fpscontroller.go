package components

import (
	"lightpuzzle/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type FPSController struct {
	engine.BaseComponent
	Yaw          float32
	Pitch        float32
	MoveSpeed    float32
	LookSpeed    float32
	Velocity     rl.Vector3
	Gravity      float32
	JumpStrength float32
	Grounded     bool
	EyeHeight    float32
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:          90.0,
		Pitch:        0,
		MoveSpeed:    5.0,
		LookSpeed:    0.1,
		Gravity:      20.0,
		JumpStrength: 6.0,
		Grounded:     false,
		EyeHeight:    1.6,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}

	// Mouse look
	mouseDelta := rl.GetMouseDelta()
	f.Look(mouseDelta.X, mouseDelta.Y)

	forward, right := f.getDirections()

	var moveDir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		moveDir = rl.Vector3Add(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveDir = rl.Vector3Subtract(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveDir = rl.Vector3Add(moveDir, right)
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveDir = rl.Vector3Subtract(moveDir, right)
	}

	// Normalize diagonal movement
	if moveLen := math32.Hypot(moveDir.X, moveDir.Z); moveLen > 0 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	f.Velocity.X = moveDir.X * f.MoveSpeed
	f.Velocity.Z = moveDir.Z * f.MoveSpeed

	if rl.IsKeyPressed(rl.KeySpace) && f.Grounded {
		f.Velocity.Y = f.JumpStrength
		f.Grounded = false
	}

	if !f.Grounded {
		f.Velocity.Y -= f.Gravity * deltaTime
	}

	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(f.Velocity, deltaTime))
}

// Look applies a mouse delta to yaw and pitch, clamping pitch short of the poles.
func (f *FPSController) Look(dx, dy float32) {
	f.Yaw += dx * f.LookSpeed
	f.Pitch -= dy * f.LookSpeed
	f.Pitch = min(max(f.Pitch, -89), 89)
}

// Land stops the fall at floor height y.
func (f *FPSController) Land(y float32) {
	g := f.GetGameObject()
	g.Transform.Position.Y = y
	f.Velocity.Y = 0
	f.Grounded = true
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := f.Yaw * rl.Deg2rad
	forward = rl.Vector3{
		X: math32.Cos(yawRad),
		Y: 0,
		Z: math32.Sin(yawRad),
	}
	right = rl.Vector3{
		X: math32.Sin(yawRad),
		Y: 0,
		Z: -math32.Cos(yawRad),
	}
	return
}

func (f *FPSController) GetLookDirection() rl.Vector3 {
	yawRad := f.Yaw * rl.Deg2rad
	pitchRad := f.Pitch * rl.Deg2rad
	return rl.Vector3{
		X: math32.Cos(yawRad) * math32.Cos(pitchRad),
		Y: math32.Sin(pitchRad),
		Z: math32.Sin(yawRad) * math32.Cos(pitchRad),
	}
}

func (f *FPSController) GetEyeHeight() float32 {
	return f.EyeHeight
}

// EyePosition is where the camera sits and where interaction rays start.
func (f *FPSController) EyePosition() rl.Vector3 {
	pos := f.GetGameObject().WorldPosition()
	pos.Y += f.EyeHeight
	return pos
}
