// Package config loads lightpuzzle.toml. Every field has a default, so an
// empty or partial file is valid.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window WindowConfig `toml:"window"`
	Level  LevelConfig  `toml:"level"`
	Beam   BeamConfig   `toml:"beam"`
	Stream StreamConfig `toml:"stream"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
	MSAA      bool   `toml:"msaa"`
}

type LevelConfig struct {
	Path            string  `toml:"path"`
	HotReload       bool    `toml:"hot_reload"`
	DebounceSeconds float32 `toml:"debounce_seconds"`
}

// BeamConfig tunes how beams look. Simulation settings live on each
// LightGenerator in the level file.
type BeamConfig struct {
	Radius           float32 `toml:"radius"`
	Glow             float32 `toml:"glow"`
	FadeSeconds      float32 `toml:"fade_seconds"`
	ChurnFadeSeconds float32 `toml:"churn_fade_seconds"`
}

type StreamConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
	// Every sends one frame per this many ticks.
	Every int `toml:"every"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Light Puzzle",
			TargetFPS: 120,
			MSAA:      true,
		},
		Level: LevelConfig{
			Path:            "assets/levels/corner.json",
			HotReload:       true,
			DebounceSeconds: 0.25,
		},
		Beam: BeamConfig{
			Radius:      0.05,
			Glow:        2,
			FadeSeconds: 1.5,
		},
		Stream: StreamConfig{
			Addr:  "127.0.0.1:8765",
			Every: 2,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. A missing file returns the defaults
// together with an error satisfying errors.Is(err, fs.ErrNotExist).
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg and validates the result. Unknown keys
// are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return fmt.Errorf("decode config: %w", err)
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS < 0:
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	case c.Level.Path == "":
		return fmt.Errorf("%w: empty level path", ErrInvalid)
	case c.Level.DebounceSeconds < 0:
		return fmt.Errorf("%w: debounce_seconds %v", ErrInvalid, c.Level.DebounceSeconds)
	case c.Beam.Radius <= 0:
		return fmt.Errorf("%w: beam radius %v", ErrInvalid, c.Beam.Radius)
	case c.Beam.FadeSeconds < 0 || c.Beam.ChurnFadeSeconds < 0:
		return fmt.Errorf("%w: negative fade", ErrInvalid)
	case c.Stream.Enabled && c.Stream.Addr == "":
		return fmt.Errorf("%w: stream enabled without addr", ErrInvalid)
	case c.Stream.Every < 1:
		return fmt.Errorf("%w: stream every %d", ErrInvalid, c.Stream.Every)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	return level, nil
}

// NewLogger builds the process logger described by l.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
