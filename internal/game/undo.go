package game

import (
	"lightpuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxUndoStack = 50

// undoState captures a mirror's rotation before the player turned it.
type undoState struct {
	Object   *engine.GameObject
	Rotation rl.Vector3
}

type undoStack struct {
	states []undoState
}

// push saves the current rotation of obj. Repeated pushes for the same
// rotation collapse into one.
func (u *undoStack) push(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	if n := len(u.states); n > 0 {
		top := u.states[n-1]
		if top.Object == obj && top.Rotation == obj.Transform.Rotation {
			return
		}
	}
	// Cap stack size
	if len(u.states) >= maxUndoStack {
		u.states = u.states[1:]
	}
	u.states = append(u.states, undoState{Object: obj, Rotation: obj.Transform.Rotation})
}

// pop restores the last saved rotation and returns the object it touched.
func (u *undoStack) pop() *engine.GameObject {
	if len(u.states) == 0 {
		return nil
	}
	state := u.states[len(u.states)-1]
	u.states = u.states[:len(u.states)-1]
	state.Object.Transform.Rotation = state.Rotation
	return state.Object
}

func (u *undoStack) size() int {
	return len(u.states)
}

func (u *undoStack) clear() {
	u.states = u.states[:0]
}
