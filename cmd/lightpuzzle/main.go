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
	"path/filepath"
	"strings"
	"syscall"

	"lightpuzzle/internal/beamstream"
	"lightpuzzle/internal/config"
	"lightpuzzle/internal/game"
)

const defaultConfigPath = "lightpuzzle.toml"

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", defaultConfigPath, "path to the TOML config")
	level := flag.String("level", "", "level file, overrides the config")
	stream := flag.String("stream", "", "serve beam frames over websocket on this address")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || *configPath != defaultConfigPath {
			fmt.Fprintf(os.Stderr, "lightpuzzle: %v\n", err)
			os.Exit(1)
		}
	}
	if *level != "" {
		cfg.Level.Path = *level
	}
	if *stream != "" {
		cfg.Stream.Enabled = true
		cfg.Stream.Addr = *stream
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "lightpuzzle: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.Log.NewLogger(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var hub *beamstream.Hub
	if cfg.Stream.Enabled {
		hub = beamstream.NewHub(slog.Default())
		go func() {
			if err := beamstream.Serve(ctx, cfg.Stream.Addr, hub); err != nil {
				slog.Error("beam stream stopped", "error", err)
			}
		}()
	}

	g := game.New(cfg, hub)
	if err := g.Run(ctx); err != nil {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}
