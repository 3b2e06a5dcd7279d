package config

import (
	"context"
	"flag"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != WindowWidth || cfg.Height != WindowHeight {
		t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, WindowWidth, WindowHeight)
	}
	if !cfg.Sound {
		t.Error("Sound should default to true")
	}
	if cfg.Seed == 0 {
		t.Error("Seed should be picked when unset")
	}
	if cfg.Frames != 120 {
		t.Errorf("Frames = %d, want 120", cfg.Frames)
	}
}

func TestParseEnvThenFlags(t *testing.T) {
	t.Setenv("SPIDR_WIDTH", "640")
	t.Setenv("SPIDR_HEIGHT", "480")
	t.Setenv("SPIDR_SEED", "42")
	t.Setenv("SPIDR_SOUND", "false")

	cfg, err := Parse(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-height", "360", "-theme", "theme.json"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 640 {
		t.Errorf("Width = %d, want 640 from env", cfg.Width)
	}
	if cfg.Height != 360 {
		t.Errorf("Height = %d, want 360 from flag", cfg.Height)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Sound {
		t.Error("Sound = true, want false from env")
	}
	if cfg.ThemeFile != "theme.json" {
		t.Errorf("ThemeFile = %q", cfg.ThemeFile)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad env", map[string]string{"SPIDR_WIDTH": "wide"}, nil},
		{"zero width", nil, []string{"-width", "0"}},
		{"negative frames", nil, []string{"-frames", "-1"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			if _, err := Parse(fs, tt.args); err == nil {
				t.Error("Parse should fail")
			}
		})
	}
}

func TestThemeStyle(t *testing.T) {
	s, err := Theme{
		Background: "#000",
		Particle:   "#112233",
		LineAlpha:  0.5,
		LineWidth:  2,
	}.Style()
	if err != nil {
		t.Fatalf("Style: %v", err)
	}

	if s.Background != (color.RGBA{A: 0xff}) {
		t.Errorf("Background = %v", s.Background)
	}
	if s.Particle != (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}) {
		t.Errorf("Particle = %v", s.Particle)
	}
	if s.Line != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 128}) {
		t.Errorf("Line = %v", s.Line)
	}
	if s.LineWidth != 2 {
		t.Errorf("LineWidth = %v", s.LineWidth)
	}
}

func TestThemeStyleErrors(t *testing.T) {
	bad := []Theme{
		{Background: "#12"},
		{Particle: "#zzzzzz"},
		{LineAlpha: 1.5},
	}
	for _, th := range bad {
		if _, err := th.Style(); err == nil {
			t.Errorf("Style(%+v) should fail", th)
		}
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"background":"#101010","lineWidth":1.5}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if th.Background != "#101010" || th.LineWidth != 1.5 {
		t.Errorf("theme = %+v", th)
	}

	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadTheme should fail for a missing file")
	}
}

func TestWatcherDetectsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`{"lineWidth":3}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal after write")
	}
}

func TestNewWatcherBadPath(t *testing.T) {
	if _, err := NewWatcher("/nonexistent/dir/theme.json", time.Millisecond); err == nil {
		t.Error("NewWatcher should fail for a missing directory")
	}
}

func TestWatchThemeReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"lineWidth":2}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	styles, err := WatchTheme(ctx, path, 20*time.Millisecond, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("WatchTheme: %v", err)
	}

	select {
	case s := <-styles:
		if s.LineWidth != 2 {
			t.Fatalf("initial LineWidth = %v, want 2", s.LineWidth)
		}
	case <-time.After(time.Second):
		t.Fatal("no initial style")
	}

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`{"lineWidth":4}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case s := <-styles:
		if s.LineWidth != 4 {
			t.Fatalf("reloaded LineWidth = %v, want 4", s.LineWidth)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no reloaded style")
	}
}
