// spidr-form shows the Spidr survey card over an animated particle field.
//
// Usage:
//
//	spidr-form                          # open the window
//	spidr-form -theme theme.json        # colours from a file, reloaded on save
//	spidr-form -snapshot field.png      # render headless and exit
//	spidr-form -sound=false -dialogs    # no chime, native dialogs on submit
//
// Every flag can also be set through a SPIDR_* environment variable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/spidr-form/internal/audio"
	"github.com/iburimskiy/spidr-form/internal/config"
	"github.com/iburimskiy/spidr-form/internal/game"
	"github.com/iburimskiy/spidr-form/internal/particles"
	"github.com/iburimskiy/spidr-form/internal/raster"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Snapshot != "" {
		if err := snapshot(cfg, logger); err != nil {
			logger.Fatalf("snapshot: %v", err)
		}
		return
	}

	var styles <-chan particles.Style
	if cfg.ThemeFile != "" {
		styles, err = config.WatchTheme(ctx, cfg.ThemeFile, cfg.ReloadWait, logger)
		if err != nil {
			logger.Printf("%v; using the default theme", err)
		}
	}

	chime := audio.NewChime(cfg.Sound, cfg.Volume, logger)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(ctx, cfg, logger, chime, styles)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}

func snapshot(cfg config.Config, logger *log.Logger) error {
	field := particles.NewField(cfg.Width, cfg.Height, cfg.Seed)
	if cfg.ThemeFile != "" {
		theme, err := config.LoadTheme(cfg.ThemeFile)
		if err != nil {
			return err
		}
		style, err := theme.Style()
		if err != nil {
			return fmt.Errorf("theme %s: %w", cfg.ThemeFile, err)
		}
		field.SetStyle(style)
	}

	f, err := os.Create(cfg.Snapshot)
	if err != nil {
		return err
	}
	if err := raster.Snapshot(field, cfg.Frames, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Printf("snapshot: wrote %s after %d frames", cfg.Snapshot, max(cfg.Frames, 1))
	return nil
}
