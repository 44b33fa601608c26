package config

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	cfg := Default()
	err := Decode([]byte(`
[window]
width = 800

[level]
path = "levels/a.json"
hot_reload = false

[stream]
enabled = true
every = 4

[log]
level = "debug"
`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, int32(720), cfg.Window.Height)
	assert.Equal(t, "levels/a.json", cfg.Level.Path)
	assert.False(t, cfg.Level.HotReload)
	assert.True(t, cfg.Stream.Enabled)
	assert.Equal(t, "127.0.0.1:8765", cfg.Stream.Addr)
	assert.Equal(t, 4, cfg.Stream.Every)
	assert.Equal(t, float32(1.5), cfg.Beam.FadeSeconds)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "[window]\nwidht = 3\n",
		"bad size":     "[window]\nwidth = 0\n",
		"bad radius":   "[beam]\nradius = -1\n",
		"bad level":    "[log]\nlevel = \"loud\"\n",
		"bad format":   "[log]\nformat = \"xml\"\n",
		"no addr":      "[stream]\nenabled = true\naddr = \"\"\n",
		"empty path":   "[level]\npath = \"\"\n",
		"never stream": "[stream]\nevery = 0\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			err := Decode([]byte(data), &cfg)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	cfg := Default()
	err := Decode([]byte("[window\n"), &cfg)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "lightpuzzle.toml")
	require.NoError(t, os.WriteFile(path, []byte("[beam]\nglow = 3.5\n"), 0644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), cfg.Beam.Glow)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":1`)
}
