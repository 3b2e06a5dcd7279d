package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Form card
	CardWidth      = 500
	CardPadding    = 40
	FieldHeight    = 32
	FieldSpacing   = 20
	LabelHeight    = 18
	ButtonHeight   = 40
	CharWidth      = 7
	CharHeight     = 13
	KeyRepeatDelay = 30
	KeyRepeatEvery = 3

	// Audio
	SampleRate  = 44100
	LevelWindow = 1024
	TapRingSize = 8192
)

// Config holds runtime settings. Environment variables seed the values and
// command-line flags override them.
type Config struct {
	Width      int           `env:"SPIDR_WIDTH"        envDefault:"1024"`
	Height     int           `env:"SPIDR_HEIGHT"       envDefault:"768"`
	Title      string        `env:"SPIDR_TITLE"        envDefault:"Spidr"`
	Seed       int64         `env:"SPIDR_SEED"`
	Sound      bool          `env:"SPIDR_SOUND"        envDefault:"true"`
	Volume     float64       `env:"SPIDR_VOLUME"       envDefault:"-1"`
	Dialogs    bool          `env:"SPIDR_DIALOGS"      envDefault:"false"`
	ThemeFile  string        `env:"SPIDR_THEME"`
	Snapshot   string        `env:"SPIDR_SNAPSHOT"`
	Frames     int           `env:"SPIDR_FRAMES"       envDefault:"120"`
	ReloadWait time.Duration `env:"SPIDR_RELOAD_WAIT"  envDefault:"100ms"`
}

// Parse loads Config from the environment and then args.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "particle layout seed (0 picks one from the clock)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play a chime on submit")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "chime volume in beep's log2 scale")
	fs.BoolVar(&cfg.Dialogs, "dialogs", cfg.Dialogs, "show native dialogs for blocked submissions")
	fs.StringVar(&cfg.ThemeFile, "theme", cfg.ThemeFile, "path to a JSON theme file, reloaded on change")
	fs.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "render headless frames to this PNG and exit")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "frames to render before writing the snapshot")
	fs.DurationVar(&cfg.ReloadWait, "reload-wait", cfg.ReloadWait, "debounce for theme file changes")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}
	return nil
}
