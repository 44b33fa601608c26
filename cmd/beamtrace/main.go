// Command beamtrace runs a level headless and prints where each beam goes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"lightpuzzle/internal/beamstream"
	"lightpuzzle/internal/components"
	"lightpuzzle/internal/config"
	"lightpuzzle/internal/engine"
	"lightpuzzle/internal/game"
	"lightpuzzle/internal/reflection"
	"lightpuzzle/internal/world"
)

// propOverride sets one script property on a named object.
type propOverride struct {
	Object string
	Key    string
	Value  any
}

type propList []propOverride

func (p *propList) String() string {
	parts := make([]string, 0, len(*p))
	for _, o := range *p {
		parts = append(parts, fmt.Sprintf("%s.%s=%v", o.Object, o.Key, o.Value))
	}
	return strings.Join(parts, ",")
}

func (p *propList) Set(s string) error {
	o, err := parseProp(s)
	if err != nil {
		return err
	}
	*p = append(*p, o)
	return nil
}

// parseProp reads Object.key=value. Values that parse as numbers or bools
// keep that type, everything else is a string.
func parseProp(s string) (propOverride, error) {
	lhs, raw, ok := strings.Cut(s, "=")
	if !ok {
		return propOverride{}, fmt.Errorf("prop %q: missing '='", s)
	}
	object, key, ok := strings.Cut(lhs, ".")
	if !ok || object == "" || key == "" {
		return propOverride{}, fmt.Errorf("prop %q: want Object.key=value", s)
	}
	o := propOverride{Object: object, Key: key, Value: raw}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		o.Value = f
	} else if b, err := strconv.ParseBool(raw); err == nil {
		o.Value = b
	}
	return o, nil
}

// applyProp applies o to the first script on the object that accepts it.
// The key "rotationY" sets the object's yaw instead.
func applyProp(w *world.World, o propOverride) error {
	g := w.Scene.FindByName(o.Object)
	if g == nil {
		return fmt.Errorf("no object named %q", o.Object)
	}
	if o.Key == "rotationY" {
		f, ok := o.Value.(float64)
		if !ok {
			return fmt.Errorf("%s.rotationY: %v is not a number", o.Object, o.Value)
		}
		g.Transform.Rotation.Y = float32(f)
		return nil
	}
	for _, c := range g.Components() {
		if engine.ApplyScriptProperty(c, o.Key, o.Value) {
			return nil
		}
	}
	return fmt.Errorf("%s has no script property %q", o.Object, o.Key)
}

func main() {
	var props propList
	configPath := flag.String("config", "lightpuzzle.toml", "path to the TOML config")
	level := flag.String("level", "", "level file, overrides the config")
	ticks := flag.Int("ticks", 240, "ticks to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per tick")
	stream := flag.String("stream", "", "serve beam frames over websocket on this address, pacing ticks in real time")
	save := flag.String("save", "", "write the level with overrides applied to this path")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	expectSolved := flag.Bool("expect-solved", false, "exit 1 unless every target is solved")
	flag.Var(&props, "prop", "Object.key=value script override (repeatable)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "beamtrace: %v\n", err)
		os.Exit(1)
	}
	if *level != "" {
		cfg.Level.Path = *level
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	slog.SetDefault(cfg.Log.NewLogger(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := world.New()
	if err := w.LoadLevel(cfg.Level.Path); err != nil {
		fmt.Fprintf(os.Stderr, "beamtrace: %v\n", err)
		os.Exit(1)
	}
	for _, o := range props {
		if err := applyProp(w, o); err != nil {
			fmt.Fprintf(os.Stderr, "beamtrace: %v\n", err)
			os.Exit(1)
		}
	}
	if *save != "" {
		if err := w.SaveLevel(*save); err != nil {
			fmt.Fprintf(os.Stderr, "beamtrace: %v\n", err)
			os.Exit(1)
		}
	}

	var pub *game.Publisher
	var tick <-chan time.Time
	if *stream != "" {
		hub := beamstream.NewHub(slog.Default())
		pub = game.NewPublisher(hub, cfg.Stream.Every)
		go func() {
			if err := beamstream.Serve(ctx, *stream, hub); err != nil {
				slog.Error("beam stream stopped", "error", err)
				stop()
			}
		}()
		ticker := time.NewTicker(time.Duration(*dt * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	}

	// A solved emitter stops tracing, so keep the last beam that was drawn.
	traced := make(map[*components.LightGenerator]reflection.Result)
	start := time.Now()
	ran := 0
	for ran < *ticks && ctx.Err() == nil {
		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
				continue
			}
		}
		w.Update(float32(*dt))
		for _, gen := range w.Generators() {
			if res := gen.Result(); len(res.Segments) > 0 {
				traced[gen] = res
			}
		}
		if pub != nil {
			pub.Publish(w)
		}
		ran++
	}

	fmt.Printf("%s: %d ticks in %v\n", w.LevelName, ran, time.Since(start).Round(time.Microsecond))
	for _, gen := range w.Generators() {
		printGenerator(gen, traced[gen])
	}
	fmt.Printf("solved: %v\n", w.Solved())

	if *expectSolved && !w.Solved() {
		os.Exit(1)
	}
}

func printGenerator(gen *components.LightGenerator, last reflection.Result) {
	fmt.Printf("%-16s %-14s progress %3.0f%% segments %d\n",
		gen.GetGameObject().Name, gen.Result().Status, gen.Progress()*100, len(last.Segments))
	for i, s := range last.Segments {
		fmt.Printf("  %2d (%6.2f %6.2f %6.2f) -> (%6.2f %6.2f %6.2f) len %6.2f %s\n", i,
			s.Start.X, s.Start.Y, s.Start.Z, s.End.X, s.End.Y, s.End.Z, s.Length(), components.ColorName(s.Color))
	}
}
