package components

import (
	"lightpuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScriptWithApplier("Mirror", mirrorFactory, mirrorSerializer, mirrorApplier)
	engine.RegisterScript("TargetPoint", targetPointFactory, targetPointSerializer)
	engine.RegisterScriptWithApplier("LightGenerator", lightGeneratorFactory, lightGeneratorSerializer, lightGeneratorApplier)
	engine.RegisterScript("BeamRenderer", beamRendererFactory, beamRendererSerializer)
	engine.RegisterScript("MirrorHandle", mirrorHandleFactory, mirrorHandleSerializer)
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
}

func mirrorFactory(props map[string]any) engine.Component {
	m := NewMirror(propColor(props, "color", rl.White))
	m.MaxAngle = engine.PropFloat(props, "maxAngle", 0)
	m.MixMode = ParseMixMode(engine.PropString(props, "mix", "additive"))
	m.ReflectEdges = engine.PropBool(props, "reflectEdges", false)
	m.Locked = engine.PropBool(props, "locked", false)
	return m
}

func mirrorSerializer(c engine.Component) map[string]any {
	m, ok := c.(*Mirror)
	if !ok {
		return nil
	}
	return map[string]any{
		"color":        ColorName(m.Tint),
		"maxAngle":     m.MaxAngle,
		"mix":          m.MixMode.String(),
		"reflectEdges": m.ReflectEdges,
		"locked":       m.Locked,
	}
}

func mirrorApplier(c engine.Component, propName string, value any) bool {
	m, ok := c.(*Mirror)
	if !ok {
		return false
	}
	props := map[string]any{propName: value}
	switch propName {
	case "color":
		m.Tint = propColor(props, propName, m.Tint)
	case "maxAngle":
		m.MaxAngle = engine.PropFloat(props, propName, m.MaxAngle)
	case "mix":
		m.MixMode = ParseMixMode(engine.PropString(props, propName, m.MixMode.String()))
	case "reflectEdges":
		m.ReflectEdges = engine.PropBool(props, propName, m.ReflectEdges)
	case "locked":
		m.Locked = engine.PropBool(props, propName, m.Locked)
	default:
		return false
	}
	return true
}

func targetPointFactory(props map[string]any) engine.Component {
	t := NewTargetPoint()
	if _, ok := props["color"]; ok {
		t.RequireColor = true
		t.RequiredColor = propColor(props, "color", rl.White)
	}
	t.Tolerance = uint8(min(max(engine.PropFloat(props, "tolerance", float32(t.Tolerance)), 0), 255))
	return t
}

func targetPointSerializer(c engine.Component) map[string]any {
	t, ok := c.(*TargetPoint)
	if !ok {
		return nil
	}
	props := map[string]any{"tolerance": t.Tolerance}
	if t.RequireColor {
		props["color"] = ColorName(t.RequiredColor)
	}
	return props
}

func lightGeneratorFactory(props map[string]any) engine.Component {
	l := NewLightGenerator()
	l.MaxDistance = engine.PropFloat(props, "maxDistance", l.MaxDistance)
	l.ContactSeconds = engine.PropFloat(props, "contactTime", l.ContactSeconds)
	l.StartColor = propColor(props, "color", l.StartColor)
	l.ReflectableLayer = uint32(engine.PropFloat(props, "reflectableLayer", float32(l.ReflectableLayer)))
	l.BlockLayer = uint32(engine.PropFloat(props, "blockLayer", float32(l.BlockLayer)))
	l.MaxBounces = int(engine.PropFloat(props, "maxBounces", float32(l.MaxBounces)))
	l.TargetTag = engine.PropString(props, "targetTag", l.TargetTag)
	return l
}

func lightGeneratorSerializer(c engine.Component) map[string]any {
	l, ok := c.(*LightGenerator)
	if !ok {
		return nil
	}
	return map[string]any{
		"maxDistance":      l.MaxDistance,
		"contactTime":      l.ContactSeconds,
		"color":            ColorName(l.StartColor),
		"reflectableLayer": l.ReflectableLayer,
		"blockLayer":       l.BlockLayer,
		"maxBounces":       l.MaxBounces,
		"targetTag":        l.TargetTag,
	}
}

func lightGeneratorApplier(c engine.Component, propName string, value any) bool {
	l, ok := c.(*LightGenerator)
	if !ok {
		return false
	}
	props := map[string]any{propName: value}
	switch propName {
	case "maxDistance":
		l.MaxDistance = engine.PropFloat(props, propName, l.MaxDistance)
	case "contactTime":
		l.ContactSeconds = engine.PropFloat(props, propName, l.ContactSeconds)
	case "color":
		l.StartColor = propColor(props, propName, l.StartColor)
	case "maxBounces":
		l.MaxBounces = int(engine.PropFloat(props, propName, float32(l.MaxBounces)))
	case "targetTag":
		l.TargetTag = engine.PropString(props, propName, l.TargetTag)
	default:
		return false
	}
	return l.Reconfigure() == nil
}

func beamRendererFactory(props map[string]any) engine.Component {
	b := NewBeamRenderer()
	b.Radius = engine.PropFloat(props, "radius", b.Radius)
	b.Glow = engine.PropFloat(props, "glow", b.Glow)
	b.FadeDuration = engine.PropFloat(props, "fadeDuration", b.FadeDuration)
	b.ChurnFade = engine.PropFloat(props, "churnFade", b.ChurnFade)
	return b
}

func beamRendererSerializer(c engine.Component) map[string]any {
	b, ok := c.(*BeamRenderer)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius":       b.Radius,
		"glow":         b.Glow,
		"fadeDuration": b.FadeDuration,
		"churnFade":    b.ChurnFade,
	}
}

func mirrorHandleFactory(props map[string]any) engine.Component {
	h := NewMirrorHandle()
	h.Reach = engine.PropFloat(props, "reach", h.Reach)
	h.Speed = engine.PropFloat(props, "speed", h.Speed)
	return h
}

func mirrorHandleSerializer(c engine.Component) map[string]any {
	h, ok := c.(*MirrorHandle)
	if !ok {
		return nil
	}
	return map[string]any{
		"reach": h.Reach,
		"speed": h.Speed,
	}
}

// Rotator is a simple script that spins an object around the Y axis.
type Rotator struct {
	engine.BaseComponent
	Speed float32
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y += r.Speed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
	if g.Transform.Rotation.Y < 0 {
		g.Transform.Rotation.Y += 360
	}
}

func rotatorFactory(props map[string]any) engine.Component {
	return &Rotator{Speed: engine.PropFloat(props, "speed", 90)}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": r.Speed,
	}
}
