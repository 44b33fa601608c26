package reflection

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FallbackDirection is reported for segments whose start and end coincide.
var FallbackDirection = rl.Vector3{X: 0, Y: 0, Z: 1}

// Segment is one straight, single-colored piece of a traced beam.
type Segment struct {
	Start rl.Vector3
	End   rl.Vector3
	Color rl.Color
}

func (s Segment) Length() float32 {
	return rl.Vector3Distance(s.Start, s.End)
}

// Direction returns the unit direction from Start to End, or
// FallbackDirection for a zero-length segment.
func (s Segment) Direction() rl.Vector3 {
	d := rl.Vector3Subtract(s.End, s.Start)
	if rl.Vector3DotProduct(d, d) == 0 {
		return FallbackDirection
	}
	return rl.Vector3Normalize(d)
}

// Midpoint is where a visualizer centers the primitive for this segment.
func (s Segment) Midpoint() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(s.Start, s.End), 0.5)
}

type Status int

const (
	Continuing Status = iota
	TargetSolved
)

func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case TargetSolved:
		return "target_solved"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText lets Status travel as a string in JSON frames.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type SurfaceKind int

const (
	SurfaceNone SurfaceKind = iota
	SurfaceMirror
	SurfaceTarget
	SurfaceBlocker
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceMirror:
		return "mirror"
	case SurfaceTarget:
		return "target"
	case SurfaceBlocker:
		return "blocker"
	default:
		return "none"
	}
}

// LayerMask selects which colliders a cast may report.
type LayerMask uint32

const AllLayers LayerMask = ^LayerMask(0)

func (m LayerMask) Has(layer LayerMask) bool {
	return m&layer != 0
}

// Hit describes the nearest intersection reported by a RayCaster.
// Surface carries the Mirror or Target behind the hit when Kind names one.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
	Kind     SurfaceKind
	Surface  any
}

// RayCaster is the intersection service the simulator queries. Cast must be
// side-effect free and see a consistent snapshot of the scene.
type RayCaster interface {
	Cast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (Hit, bool)
}

// RayCasterFunc adapts a plain function to RayCaster.
type RayCasterFunc func(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (Hit, bool)

func (f RayCasterFunc) Cast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (Hit, bool) {
	return f(origin, direction, maxDistance, mask)
}

// Mirror is a reflecting surface.
type Mirror interface {
	Color() rl.Color
	MixColor(incoming rl.Color) rl.Color
	// Reflect returns the outgoing direction, or false when the mirror
	// refuses to reflect the incoming ray.
	Reflect(incoming, normal rl.Vector3) (rl.Vector3, bool)
}

// Target receives the beam once the dwell time has elapsed.
type Target interface {
	OnLightHit(color rl.Color)
	IsSolved() bool
}

// ContactState persists across ticks. Since is only meaningful while
// Contacting is true.
type ContactState struct {
	Contacting bool
	Since      time.Time
	Solved     bool
}

type Result struct {
	Segments []Segment
	Status   Status
}

func (r Result) TotalLength() float32 {
	var total float32
	for _, s := range r.Segments {
		total += s.Length()
	}
	return total
}
