package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/iburimskiy/spidr-form/internal/particles"
)

// Theme is the on-disk form of the background colours. Empty fields keep
// the defaults.
type Theme struct {
	Background string  `json:"background"`
	Particle   string  `json:"particle"`
	Line       string  `json:"line"`
	LineAlpha  float64 `json:"lineAlpha"`
	LineWidth  float64 `json:"lineWidth"`
}

// LoadTheme reads a JSON theme file.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("decode theme %s: %w", path, err)
	}
	return t, nil
}

// Style merges t over the default style.
func (t Theme) Style() (particles.Style, error) {
	s := particles.DefaultStyle()

	if t.Background != "" {
		c, err := parseHex(t.Background)
		if err != nil {
			return s, fmt.Errorf("background: %w", err)
		}
		s.Background = c
	}
	if t.Particle != "" {
		c, err := parseHex(t.Particle)
		if err != nil {
			return s, fmt.Errorf("particle: %w", err)
		}
		s.Particle = c
	}
	if t.Line != "" || t.LineAlpha != 0 {
		line := color.NRGBAModel.Convert(s.Line).(color.NRGBA)
		if t.Line != "" {
			c, err := parseHex(t.Line)
			if err != nil {
				return s, fmt.Errorf("line: %w", err)
			}
			line.R, line.G, line.B = c.R, c.G, c.B
		}
		if t.LineAlpha != 0 {
			if t.LineAlpha < 0 || t.LineAlpha > 1 {
				return s, fmt.Errorf("lineAlpha %v outside [0,1]", t.LineAlpha)
			}
			line.A = uint8(t.LineAlpha*255 + 0.5)
		}
		s.Line = line
	}
	if t.LineWidth > 0 {
		s.LineWidth = t.LineWidth
	}
	return s, nil
}

// parseHex accepts #rgb and #rrggbb.
func parseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
