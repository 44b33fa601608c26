package world

import (
	"encoding/json"
	"fmt"
	"os"

	"lightpuzzle/internal/components"
	"lightpuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type LevelFile struct {
	Name    string      `json:"name,omitempty"`
	Spawn   *SpawnDef   `json:"spawn,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type SpawnDef struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw"`
}

func defaultSpawn() SpawnDef {
	return SpawnDef{Position: [3]float32{0, 0, -8}, Yaw: 90}
}

func (s SpawnDef) position() rl.Vector3 {
	return rl.Vector3{X: s.Position[0], Y: s.Position[1], Z: s.Position[2]}
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      uint32            `json:"layer,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type      string     `json:"type"`
	Mesh      string     `json:"mesh"`
	Size      [3]float32 `json:"size"`
	Color     string     `json:"color"`
	Wireframe bool       `json:"wireframe,omitempty"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

func ParseLevel(data []byte) (*LevelFile, error) {
	var lf LevelFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	return &lf, nil
}

// LoadLevel replaces the world contents with the level at path and starts it.
// A spawned player survives the reload.
func (w *World) LoadLevel(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read level: %w", err)
	}
	lf, err := ParseLevel(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Build(lf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	w.LevelPath = path
	return nil
}

// Build instantiates lf into a cleared world and starts it.
func (w *World) Build(lf *LevelFile) error {
	objects := make([]*engine.GameObject, 0, len(lf.Objects))
	for i, def := range lf.Objects {
		g, err := buildObject(def)
		if err != nil {
			return fmt.Errorf("object %d (%s): %w", i, def.Name, err)
		}
		objects = append(objects, g)
	}

	player := w.Player
	w.Clear()
	w.LevelName = lf.Name
	w.Spawn = defaultSpawn()
	if lf.Spawn != nil {
		w.Spawn = *lf.Spawn
	}
	for _, g := range objects {
		w.Add(g)
	}
	if player != nil {
		w.Add(player)
		w.Player = player
	}
	w.Start()
	w.log.Info("level loaded", "level", lf.Name, "objects", len(objects),
		"emitters", len(w.Generators()), "targets", len(w.Targets()))
	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	if def.Layer != 0 {
		g.Layer = def.Layer
	}
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = vec3(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = vec3(def.Scale)
	}

	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, fmt.Errorf("component header: %w", err)
		}

		var err error
		switch header.Type {
		case "MeshRenderer":
			err = loadMeshRenderer(g, raw)
		case "BoxCollider":
			err = loadBoxCollider(g, raw)
		case "SphereCollider":
			err = loadSphereCollider(g, raw)
		case "Script":
			err = loadScript(g, raw)
		default:
			err = fmt.Errorf("unknown component type %q", header.Type)
		}
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

func loadMeshRenderer(g *engine.GameObject, raw json.RawMessage) error {
	var def meshRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("mesh renderer: %w", err)
	}
	mesh, ok := components.ParseMeshType(def.Mesh)
	if !ok {
		return fmt.Errorf("mesh renderer: unknown mesh %q", def.Mesh)
	}
	color := rl.White
	if def.Color != "" {
		c, err := components.ParseColor(def.Color)
		if err != nil {
			return fmt.Errorf("mesh renderer: %w", err)
		}
		color = c
	}
	r := components.NewMeshRenderer(mesh, color, vec3(def.Size))
	r.Wireframe = def.Wireframe
	g.AddComponent(r)
	return nil
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("box collider: %w", err)
	}
	col := components.NewBoxCollider(vec3(def.Size))
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("sphere collider: %w", err)
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadScript(g *engine.GameObject, raw json.RawMessage) error {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	comp := engine.CreateScript(def.Name, def.Props)
	if comp == nil {
		return fmt.Errorf("unknown script %q", def.Name)
	}
	g.AddComponent(comp)
	return nil
}

// --- Saving ---

// Encode converts the world back to a level file. The player is skipped.
func (w *World) Encode() *LevelFile {
	spawn := w.Spawn
	lf := &LevelFile{Name: w.LevelName, Spawn: &spawn}

	for _, g := range w.Scene.GameObjects {
		if g == w.Player || g.Parent != nil {
			continue
		}
		def := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr3(g.Transform.Position),
			Rotation: arr3(g.Transform.Rotation),
			Scale:    arr3(g.Transform.Scale),
		}
		if g.Layer != engine.DefaultLayer {
			def.Layer = g.Layer
		}
		if !g.Active {
			inactive := false
			def.Active = &inactive
		}
		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				def.Components = append(def.Components, raw)
			}
		}
		lf.Objects = append(lf.Objects, def)
	}
	return lf
}

func (w *World) SaveLevel(path string) error {
	data, err := json.MarshalIndent(w.Encode(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal level: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}

	return nil
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.MeshRenderer:
		def = meshRendererDef{
			Type:      "MeshRenderer",
			Mesh:      comp.MeshType.String(),
			Size:      arr3(comp.Size),
			Color:     components.ColorName(comp.Color),
			Wireframe: comp.Wireframe,
		}

	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   arr3(comp.Size),
			Offset: arr3(comp.Offset),
		}

	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:   "SphereCollider",
			Radius: comp.Radius,
			Offset: arr3(comp.Offset),
		}

	default:
		// Try script registry
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
