// Package beamstream broadcasts traced beams to remote visualizers over
// WebSocket.
package beamstream

import (
	"fmt"
	"time"

	"lightpuzzle/internal/reflection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Vec3 [3]float32

func vec(v rl.Vector3) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

type SegmentFrame struct {
	Start  Vec3    `json:"start"`
	End    Vec3    `json:"end"`
	Dir    Vec3    `json:"dir"`
	Length float32 `json:"length"`
	Color  string  `json:"color"` // #rrggbbaa
}

// Frame is one emitter's beam at one tick.
type Frame struct {
	Type     string            `json:"type"`
	Tick     uint64            `json:"tick"`
	Time     float64           `json:"time"` // seconds of emitter clock
	Emitter  string            `json:"emitter"`
	Status   reflection.Status `json:"status"`
	Progress float32           `json:"progress"`
	Segments []SegmentFrame    `json:"segments"`
}

func NewFrame(emitter string, tick uint64, elapsed time.Duration, res reflection.Result, progress float32) Frame {
	segs := make([]SegmentFrame, 0, len(res.Segments))
	for _, s := range res.Segments {
		segs = append(segs, SegmentFrame{
			Start:  vec(s.Start),
			End:    vec(s.End),
			Dir:    vec(s.Direction()),
			Length: s.Length(),
			Color:  hexColor(s.Color),
		})
	}
	return Frame{
		Type:     "beam",
		Tick:     tick,
		Time:     elapsed.Seconds(),
		Emitter:  emitter,
		Status:   res.Status,
		Progress: progress,
		Segments: segs,
	}
}

func hexColor(c rl.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
