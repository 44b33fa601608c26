package components

import (
	"fmt"
	"log/slog"
	"time"

	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/reflection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LightGenerator emits a beam along its object's forward axis every frame.
type LightGenerator struct {
	engine.BaseComponent
	MaxDistance      float32
	ContactSeconds   float32
	StartColor       rl.Color
	ReflectableLayer uint32
	BlockLayer       uint32
	MaxBounces       int
	TargetTag        string

	OnSolved engine.Event

	sim         *reflection.Simulator
	clock       time.Time
	last        reflection.Result
	ticks       uint64
	solvedFired bool
	log         *slog.Logger
}

func NewLightGenerator() *LightGenerator {
	def := reflection.DefaultConfig()
	return &LightGenerator{
		MaxDistance:      def.MaxDistance,
		ContactSeconds:   float32(def.RequiredContact.Seconds()),
		StartColor:       def.StartColor,
		ReflectableLayer: uint32(def.ReflectableLayer),
		BlockLayer:       uint32(def.BlockLayer),
		MaxBounces:       def.MaxBounces,
		TargetTag:        TargetTag,
		clock:            time.Unix(0, 0),
	}
}

// SimConfig converts the component fields to a simulator config.
func (l *LightGenerator) SimConfig() reflection.Config {
	cfg := reflection.DefaultConfig()
	cfg.MaxDistance = l.MaxDistance
	cfg.RequiredContact = time.Duration(float64(l.ContactSeconds) * float64(time.Second))
	cfg.StartColor = l.StartColor
	cfg.ReflectableLayer = reflection.LayerMask(l.ReflectableLayer)
	cfg.BlockLayer = reflection.LayerMask(l.BlockLayer)
	cfg.MaxBounces = l.MaxBounces
	return cfg
}

func (l *LightGenerator) Start() {
	g := l.GetGameObject()
	l.log = slog.With("component", "LightGenerator", "object", g.Name)
	if g.Scene == nil || g.Scene.World == nil {
		l.log.Warn("light generator has no world to trace against")
		return
	}
	if err := l.Reconfigure(); err != nil {
		l.log.Error("light generator disabled", "error", err)
		return
	}
	if engine.GetComponent[*BeamRenderer](g) == nil {
		g.AddComponent(NewBeamRenderer())
	}
}

// Reconfigure rebuilds the simulator from the current fields, carrying the
// contact state over so an in-progress dwell survives a prop edit.
func (l *LightGenerator) Reconfigure() error {
	g := l.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return fmt.Errorf("light generator %q: no world", l.objectName())
	}
	opts := []reflection.Option{reflection.WithLogger(l.log)}
	if l.sim != nil {
		opts = append(opts, reflection.WithContactState(l.sim.Contact()))
	}
	sim, err := reflection.New(l.SimConfig(), SceneCaster{World: g.Scene.World, TargetTag: l.TargetTag}, opts...)
	if err != nil {
		return fmt.Errorf("light generator %q: %w", l.objectName(), err)
	}
	l.sim = sim
	return nil
}

func (l *LightGenerator) objectName() string {
	if g := l.GetGameObject(); g != nil {
		return g.Name
	}
	return ""
}

func (l *LightGenerator) Update(deltaTime float32) {
	if l.sim == nil {
		return
	}
	g := l.GetGameObject()
	l.clock = l.clock.Add(time.Duration(float64(deltaTime) * float64(time.Second)))
	l.ticks++

	l.last = l.sim.Simulate(g.WorldPosition(), g.Forward(), l.clock)
	if r := engine.GetComponent[*BeamRenderer](g); r != nil {
		r.SetSegments(l.last.Segments, l.last.Status)
	}
	if l.last.Status == reflection.TargetSolved && !l.solvedFired {
		l.solvedFired = true
		l.OnSolved.Invoke()
	}
}

// Result is the outcome of the most recent tick.
func (l *LightGenerator) Result() reflection.Result {
	return l.last
}

func (l *LightGenerator) Ticks() uint64 {
	return l.ticks
}

// Clock is the generator's own time, advanced by Update.
func (l *LightGenerator) Clock() time.Time {
	return l.clock
}

func (l *LightGenerator) Ready() bool {
	return l.sim != nil
}

func (l *LightGenerator) Solved() bool {
	return l.sim != nil && l.sim.Solved()
}

// Progress is the dwell progress toward solving, in [0, 1].
func (l *LightGenerator) Progress() float32 {
	if l.sim == nil {
		return 0
	}
	return l.sim.Progress(l.clock)
}

func (l *LightGenerator) Reset() {
	if l.sim != nil {
		l.sim.Reset()
	}
	l.solvedFired = false
	l.last = reflection.Result{}
	if r := engine.GetComponent[*BeamRenderer](l.GetGameObject()); r != nil {
		r.Clear()
	}
}
