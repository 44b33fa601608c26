// Package reflection traces a light beam from an emitter through mirrors
// until it leaves range, is blocked, or dwells on a target long enough to
// solve the puzzle.
package reflection

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNilCaster     = errors.New("reflection: nil ray caster")
	ErrInvalidConfig = errors.New("reflection: invalid config")
)

const (
	DefaultReflectableLayer LayerMask = 1 << 0
	DefaultBlockLayer       LayerMask = 1 << 1
)

type Config struct {
	MaxDistance      float32
	RequiredContact  time.Duration
	StartColor       rl.Color
	ReflectableLayer LayerMask
	BlockLayer       LayerMask
	// MinStep is the least distance a single cast consumes from the budget,
	// so a trace always terminates even when hits come back at distance 0.
	MinStep float32
	// MaxBounces caps reflections per tick.
	MaxBounces int
}

func DefaultConfig() Config {
	return Config{
		MaxDistance:      100,
		RequiredContact:  2 * time.Second,
		StartColor:       rl.White,
		ReflectableLayer: DefaultReflectableLayer,
		BlockLayer:       DefaultBlockLayer,
		MinStep:          1e-3,
		MaxBounces:       64,
	}
}

func (c Config) Validate() error {
	switch {
	case !(c.MaxDistance > 0) || math32.IsInf(c.MaxDistance, 0):
		return fmt.Errorf("%w: max distance %v must be positive and finite", ErrInvalidConfig, c.MaxDistance)
	case c.RequiredContact < 0:
		return fmt.Errorf("%w: required contact %v is negative", ErrInvalidConfig, c.RequiredContact)
	case !(c.MinStep > 0):
		return fmt.Errorf("%w: min step %v must be positive", ErrInvalidConfig, c.MinStep)
	case c.MaxBounces < 0:
		return fmt.Errorf("%w: max bounces %d is negative", ErrInvalidConfig, c.MaxBounces)
	case c.ReflectableLayer|c.BlockLayer == 0:
		return fmt.Errorf("%w: empty layer mask", ErrInvalidConfig)
	}
	return nil
}

type Option func(*Simulator)

// WithContactState seeds the contact state, e.g. to restore a saved puzzle.
func WithContactState(cs ContactState) Option {
	return func(s *Simulator) {
		s.contact = cs
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.log = logger
		}
	}
}

// Simulator owns the contact state of a single emitter. It is not safe for
// concurrent use; every emitter needs its own instance.
type Simulator struct {
	cfg     Config
	caster  RayCaster
	contact ContactState
	log     *slog.Logger
}

// traceState lives for exactly one Simulate call.
type traceState struct {
	direction     rl.Vector3
	position      rl.Vector3
	remaining     float32
	color         rl.Color
	isFirstBounce bool
}

func New(cfg Config, caster RayCaster, opts ...Option) (*Simulator, error) {
	if caster == nil {
		return nil, ErrNilCaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		cfg:    cfg,
		caster: caster,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Simulator) Config() Config {
	return s.cfg
}

// Contact returns a copy of the current contact state.
func (s *Simulator) Contact() ContactState {
	return s.contact
}

func (s *Simulator) Solved() bool {
	return s.contact.Solved
}

// Reset clears contact and solved state, e.g. when a level restarts.
func (s *Simulator) Reset() {
	s.contact = ContactState{}
}

// Progress reports how far the current dwell is toward solving, in [0, 1].
func (s *Simulator) Progress(now time.Time) float32 {
	if s.contact.Solved {
		return 1
	}
	if !s.contact.Contacting {
		return 0
	}
	if s.cfg.RequiredContact <= 0 {
		return 1
	}
	p := float32(now.Sub(s.contact.Since)) / float32(s.cfg.RequiredContact)
	return min(max(p, 0), 1)
}

// Simulate traces the beam once from origin along direction. now must not
// decrease between calls; it drives the dwell timer.
func (s *Simulator) Simulate(origin, direction rl.Vector3, now time.Time) Result {
	if s.contact.Solved {
		return Result{Status: TargetSolved}
	}
	if rl.Vector3DotProduct(direction, direction) == 0 {
		s.releaseContact()
		return Result{Status: Continuing}
	}

	st := traceState{
		direction:     rl.Vector3Normalize(direction),
		position:      origin,
		remaining:     s.cfg.MaxDistance,
		color:         s.cfg.StartColor,
		isFirstBounce: true,
	}
	mask := s.cfg.ReflectableLayer | s.cfg.BlockLayer
	segments := make([]Segment, 0, 4)
	status := Continuing
	hitTarget := false
	bounces := 0

trace:
	for st.remaining > 0 {
		hit, ok := s.caster.Cast(st.position, st.direction, st.remaining, mask)
		if !ok {
			end := rl.Vector3Add(st.position, rl.Vector3Scale(st.direction, st.remaining))
			segments = append(segments, Segment{Start: st.position, End: end, Color: st.color})
			break
		}

		point := hit.Point
		traveled := rl.Vector3Distance(st.position, point)
		if traveled > st.remaining {
			traveled = st.remaining
			point = rl.Vector3Add(st.position, rl.Vector3Scale(st.direction, traveled))
		}
		segments = append(segments, Segment{Start: st.position, End: point, Color: st.color})
		st.remaining -= max(traveled, s.cfg.MinStep)

		switch hit.Kind {
		case SurfaceTarget:
			target, ok := hit.Surface.(Target)
			if !ok {
				break trace
			}
			hitTarget = true
			if !s.contact.Contacting {
				s.contact.Contacting = true
				s.contact.Since = now
				s.log.Debug("beam contact started")
			}
			if now.Sub(s.contact.Since) >= s.cfg.RequiredContact {
				target.OnLightHit(st.color)
				s.contact.Solved = target.IsSolved()
				if s.contact.Solved {
					status = TargetSolved
					s.log.Info("target solved", "color", st.color, "segments", len(segments))
				}
			}
			break trace

		case SurfaceMirror:
			mirror, ok := hit.Surface.(Mirror)
			if !ok {
				break trace
			}
			if st.isFirstBounce {
				st.color = mirror.Color()
				st.isFirstBounce = false
			} else {
				st.color = mirror.MixColor(st.color)
			}
			out, ok := mirror.Reflect(st.direction, hit.Normal)
			if !ok || rl.Vector3DotProduct(out, out) == 0 {
				break trace
			}
			bounces++
			if bounces > s.cfg.MaxBounces {
				break trace
			}
			st.direction = rl.Vector3Normalize(out)
			st.position = point

		default:
			break trace
		}
	}

	if !hitTarget {
		s.releaseContact()
	}
	return Result{Segments: segments, Status: status}
}

func (s *Simulator) releaseContact() {
	if s.contact.Contacting && !s.contact.Solved {
		s.contact.Contacting = false
		s.contact.Since = time.Time{}
		s.log.Debug("beam contact lost, dwell reset")
	}
}
