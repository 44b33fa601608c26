package components

import (
	"log/slog"

	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/reflection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TargetTag marks objects the beam may solve.
const TargetTag = "TargetPoint"

// TargetPoint is solved by the first delivered beam, or only by beams close
// to RequiredColor when RequireColor is set.
type TargetPoint struct {
	engine.BaseComponent
	RequireColor  bool
	RequiredColor rl.Color
	Tolerance     uint8

	OnHit    engine.EventWithArg[rl.Color]
	OnSolved engine.Event

	solved    bool
	lastColor rl.Color
	hits      int
}

var _ reflection.Target = (*TargetPoint)(nil)

func NewTargetPoint() *TargetPoint {
	return &TargetPoint{Tolerance: 8}
}

func (t *TargetPoint) OnLightHit(color rl.Color) {
	t.lastColor = color
	t.hits++
	t.OnHit.Invoke(color)
	if t.solved {
		return
	}
	if t.RequireColor && !reflection.ColorsClose(color, t.RequiredColor, t.Tolerance) {
		return
	}
	t.solved = true
	name := ""
	if g := t.GetGameObject(); g != nil {
		name = g.Name
	}
	slog.Info("target solved", "target", name, "color", ColorName(color))
	t.OnSolved.Invoke()
}

func (t *TargetPoint) IsSolved() bool {
	return t.solved
}

// LastColor is the color of the most recent delivered beam.
func (t *TargetPoint) LastColor() (rl.Color, bool) {
	return t.lastColor, t.hits > 0
}

func (t *TargetPoint) Reset() {
	t.solved = false
	t.hits = 0
	t.lastColor = rl.Color{}
}
