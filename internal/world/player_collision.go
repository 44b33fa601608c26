package world

import (
	"lightpuzzle/internal/components"
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerCollision keeps the player above the floor and out of level geometry.
// The player's position is at its feet.
type PlayerCollision struct {
	engine.BaseComponent
	Size    rl.Vector3
	FloorY  float32
	physics *physics.PhysicsWorld
}

func NewPlayerCollision(p *physics.PhysicsWorld) *PlayerCollision {
	return &PlayerCollision{
		Size:    rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6},
		physics: p,
	}
}

func (p *PlayerCollision) bounds() physics.AABB {
	g := p.GetGameObject()
	center := g.Transform.Position
	center.Y += p.Size.Y / 2
	return physics.NewAABBFromCenter(center, p.Size)
}

func (p *PlayerCollision) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	fps := engine.GetComponent[*components.FPSController](g)
	if fps == nil {
		return
	}

	if g.Transform.Position.Y <= p.FloorY {
		fps.Land(p.FloorY)
	} else {
		fps.Grounded = false
	}

	if p.physics == nil {
		return
	}
	for _, other := range p.physics.Overlapping(p.bounds(), g) {
		pushOut := p.bounds().Resolve(other)
		if pushOut == (rl.Vector3{}) {
			continue
		}
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		if pushOut.Y > 0 {
			fps.Velocity.Y = 0
			fps.Grounded = true
		}
		if pushOut.Y < 0 && fps.Velocity.Y > 0 {
			fps.Velocity.Y = 0
		}
	}
}
