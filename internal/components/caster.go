package components

import (
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/reflection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneCaster answers beam queries against the world and classifies what the
// beam hit by the components on the object.
type SceneCaster struct {
	World engine.WorldAccess
	// TargetTag, when set, must be carried by an object for its TargetPoint
	// to count. Untagged targets act as blockers.
	TargetTag string
}

func (c SceneCaster) Cast(origin, direction rl.Vector3, maxDistance float32, mask reflection.LayerMask) (reflection.Hit, bool) {
	res, ok := c.World.Raycast(origin, direction, maxDistance, uint32(mask))
	if !ok {
		return reflection.Hit{}, false
	}
	hit := reflection.Hit{
		Point:    res.Point,
		Normal:   res.Normal,
		Distance: res.Distance,
		Kind:     reflection.SurfaceBlocker,
	}
	g := res.GameObject
	if g == nil {
		return hit, true
	}
	if target := engine.GetComponent[*TargetPoint](g); target != nil && (c.TargetTag == "" || g.HasTag(c.TargetTag)) {
		hit.Kind = reflection.SurfaceTarget
		hit.Surface = target
	} else if mirror := engine.GetComponent[*Mirror](g); mirror != nil {
		hit.Kind = reflection.SurfaceMirror
		hit.Surface = mirror
	}
	return hit, true
}
