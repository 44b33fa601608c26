package components

import (
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/reflection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fadingBeam is a segment that left the beam and is shrinking out of view.
type fadingBeam struct {
	segment  reflection.Segment
	elapsed  float32
	duration float32
}

func (f fadingBeam) factor() float32 {
	if f.duration <= 0 {
		return 0
	}
	return max(1-f.elapsed/f.duration, 0)
}

// BeamRenderer draws the segments of a LightGenerator. Each tick replaces the
// segment list; segments that disappear fade out instead of vanishing.
type BeamRenderer struct {
	engine.BaseComponent
	Radius float32
	Sides  int32
	// Glow multiplies the beam color to fake emission.
	Glow float32
	// FadeDuration applies to the beam that was on screen when the puzzle cleared.
	FadeDuration float32
	// ChurnFade applies to segments replaced while the beam is still live. 0 drops them at once.
	ChurnFade float32
	MaxFading int

	segments []reflection.Segment
	fading   []fadingBeam
	solved   bool
}

func NewBeamRenderer() *BeamRenderer {
	return &BeamRenderer{
		Radius:       0.05,
		Sides:        8,
		Glow:         2,
		FadeDuration: 1.5,
		MaxFading:    64,
	}
}

// SetSegments installs the segments of the latest trace.
func (b *BeamRenderer) SetSegments(next []reflection.Segment, status reflection.Status) {
	duration := b.ChurnFade
	if b.solved {
		duration = b.FadeDuration
	}
	if duration > 0 {
		for _, old := range b.segments {
			if !containsSegment(next, old) {
				b.addFader(fadingBeam{segment: old, duration: duration})
			}
		}
	}
	b.segments = append(b.segments[:0], next...)
	b.solved = status == reflection.TargetSolved
}

func (b *BeamRenderer) addFader(f fadingBeam) {
	if b.MaxFading > 0 && len(b.fading) >= b.MaxFading {
		copy(b.fading, b.fading[1:])
		b.fading = b.fading[:len(b.fading)-1]
	}
	b.fading = append(b.fading, f)
}

func containsSegment(list []reflection.Segment, s reflection.Segment) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func (b *BeamRenderer) Update(deltaTime float32) {
	kept := b.fading[:0]
	for _, f := range b.fading {
		f.elapsed += deltaTime
		if f.elapsed < f.duration {
			kept = append(kept, f)
		}
	}
	b.fading = kept
}

func (b *BeamRenderer) Segments() []reflection.Segment {
	return b.segments
}

// FadingCount is the number of segments still fading out.
func (b *BeamRenderer) FadingCount() int {
	return len(b.fading)
}

func (b *BeamRenderer) Clear() {
	b.segments = b.segments[:0]
	b.fading = b.fading[:0]
	b.solved = false
}

func (b *BeamRenderer) Draw() {
	g := b.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	for _, s := range b.segments {
		b.drawSegment(s, 1)
	}
	for _, f := range b.fading {
		b.drawSegment(f.segment, f.factor())
	}
}

func (b *BeamRenderer) drawSegment(s reflection.Segment, factor float32) {
	length := s.Length()
	if length == 0 || factor <= 0 {
		return
	}
	radius := b.Radius * factor
	end := rl.Vector3Add(s.Start, rl.Vector3Scale(s.Direction(), length))
	color := EmissiveColor(s.Color, b.Glow)
	color.A = uint8(float32(color.A) * factor)
	rl.DrawCylinderEx(s.Start, end, radius, radius, b.Sides, color)
}

// EmissiveColor scales the RGB channels by glow, saturating at 255.
func EmissiveColor(c rl.Color, glow float32) rl.Color {
	scale := func(v uint8) uint8 {
		return uint8(min(float32(v)*glow, 255))
	}
	return rl.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
