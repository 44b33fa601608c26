package game

import (
	"log/slog"
	"time"

	"lightpuzzle/internal/beamstream"
	"lightpuzzle/internal/components"
	"lightpuzzle/internal/config"
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/reflection"
	"lightpuzzle/internal/world"
)

var clockEpoch = time.Unix(0, 0)

// Publisher streams the beams of a world to a hub. Frames go out every
// `every` calls, and immediately whenever an emitter's status changes.
type Publisher struct {
	hub   *beamstream.Hub
	every int
	calls int
	last  map[string]reflection.Status
	log   *slog.Logger
}

func NewPublisher(hub *beamstream.Hub, every int) *Publisher {
	return &Publisher{
		hub:   hub,
		every: max(every, 1),
		last:  make(map[string]reflection.Status),
		log:   slog.With("component", "publisher"),
	}
}

// Publish broadcasts the emitters that are due and returns how many frames
// were sent.
func (p *Publisher) Publish(w *world.World) int {
	p.calls++
	periodic := p.calls%p.every == 0
	sent := 0
	for _, gen := range w.Generators() {
		name := gen.GetGameObject().Name
		res := gen.Result()
		prev, seen := p.last[name]
		if !periodic && seen && prev == res.Status {
			continue
		}
		p.last[name] = res.Status
		frame := beamstream.NewFrame(name, gen.Ticks(), gen.Clock().Sub(clockEpoch), res, gen.Progress())
		if err := p.hub.Broadcast(frame); err != nil {
			p.log.Warn("broadcast failed", "emitter", name, "error", err)
			continue
		}
		sent++
	}
	return sent
}

// Reset forgets published state after a level change.
func (p *Publisher) Reset() {
	p.calls = 0
	clear(p.last)
	p.hub.Reset()
}

// ApplyBeamConfig pushes the configured beam look onto every renderer in w.
func ApplyBeamConfig(w *world.World, cfg config.BeamConfig) {
	for _, g := range w.Scene.GameObjects {
		br := engine.GetComponent[*components.BeamRenderer](g)
		if br == nil {
			continue
		}
		if cfg.Radius > 0 {
			br.Radius = cfg.Radius
		}
		if cfg.Glow > 0 {
			br.Glow = cfg.Glow
		}
		br.FadeDuration = cfg.FadeSeconds
		br.ChurnFade = cfg.ChurnFadeSeconds
	}
}
