package components

import (
	"lightpuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MirrorHandle lets the player turn the mirror under the crosshair with Q and E.
// It belongs on the object carrying the FPSController.
type MirrorHandle struct {
	engine.BaseComponent
	Reach float32 // world units
	Speed float32 // degrees per second
	Mask  uint32

	focused *Mirror
}

func NewMirrorHandle() *MirrorHandle {
	return &MirrorHandle{
		Reach: 6,
		Speed: 60,
		Mask:  ^uint32(0),
	}
}

func (h *MirrorHandle) Update(deltaTime float32) {
	h.Focus()
	if h.focused == nil {
		return
	}
	if rl.IsKeyDown(rl.KeyQ) {
		h.focused.Rotate(-h.Speed * deltaTime)
	}
	if rl.IsKeyDown(rl.KeyE) {
		h.focused.Rotate(h.Speed * deltaTime)
	}
}

// Focus casts from the eye along the look direction and remembers the mirror
// it lands on, if any.
func (h *MirrorHandle) Focus() *Mirror {
	h.focused = nil
	g := h.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return nil
	}
	look := engine.FindComponent[engine.LookProvider](g)
	if look == nil {
		return nil
	}
	eye := g.WorldPosition()
	eye.Y += look.GetEyeHeight()

	res, ok := g.Scene.World.Raycast(eye, look.GetLookDirection(), h.Reach, h.Mask)
	if !ok || res.GameObject == nil {
		return nil
	}
	if m := engine.GetComponent[*Mirror](res.GameObject); m != nil && !m.Locked {
		h.focused = m
	}
	return h.focused
}

// Focused is the mirror found by the last Focus call.
func (h *MirrorHandle) Focused() *Mirror {
	return h.focused
}
