package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LookProvider is implemented by components that control camera look direction.
// Used by Camera and other components that need to follow a look direction.
type LookProvider interface {
	GetLookDirection() rl.Vector3
	GetEyeHeight() float32
}

// Drawable is implemented by components that render themselves in 3D mode.
type Drawable interface {
	Draw()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
