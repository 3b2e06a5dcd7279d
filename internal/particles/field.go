// Package particles animates the decorative point field drawn behind the form.
//
// A Field owns every piece of animation state: viewport size, the particle
// set, the pointer and a running flag. The host drives it by calling
// RenderFrame once per display refresh and forwarding pointer and resize
// events between frames. Nothing here is safe for concurrent use; the host
// loop is single-threaded.
package particles

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	// Count is the number of particles after every (re)initialization.
	Count = 100

	// Radius of every particle.
	Radius = 1.0

	// MaxSpeed bounds each velocity component to [-MaxSpeed, MaxSpeed).
	MaxSpeed = 0.5

	// PointerReach is the exclusive pointer distance within which a
	// particle may take part in a connection.
	PointerReach = 150.0

	// LinkDistance is the exclusive distance between two particles under
	// which they are connected.
	LinkDistance = 100.0
)

// Particle is a moving point.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Pointer is the last known pointer position over the surface.
// X and Y are meaningless unless Present is true.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Style holds the colours used to render a frame.
type Style struct {
	Background color.Color
	Particle   color.Color
	Line       color.Color
	LineWidth  float64
}

// DefaultStyle matches the dark grey page: #222 background, #666 points and
// white connections at 20% opacity.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
		Particle:   color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		Line:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 51},
		LineWidth:  1,
	}
}

// Surface is a 2D immediate-mode drawing target.
type Surface interface {
	Fill(c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	Line(x0, y0, x1, y1, width float64, c color.Color)
}

// Segment connects two particles by index, I < J.
type Segment struct {
	I, J int
}

// Field is the animated particle background.
type Field struct {
	width, height float64
	particles     []Particle
	pointer       Pointer
	style         Style
	rng           *rand.Rand
	running       bool
}

// NewField creates a running field of the given size, seeded for
// reproducible layouts.
func NewField(width, height int, seed int64) *Field {
	f := &Field{
		style:   DefaultStyle(),
		rng:     rand.New(rand.NewSource(seed)),
		running: true,
	}
	f.Initialize(width, height)
	return f
}

// Initialize replaces the particle set with Count freshly randomized
// particles inside [0,width) x [0,height).
func (f *Field) Initialize(width, height int) {
	f.width = float64(width)
	f.height = float64(height)

	ps := make([]Particle, Count)
	for i := range ps {
		ps[i] = Particle{
			X:      f.rng.Float64() * f.width,
			Y:      f.rng.Float64() * f.height,
			VX:     (f.rng.Float64() - 0.5) * 2 * MaxSpeed,
			VY:     (f.rng.Float64() - 0.5) * 2 * MaxSpeed,
			Radius: Radius,
		}
	}
	f.particles = ps
}

// Resize discards every particle and reinitializes at the new size.
func (f *Field) Resize(width, height int) {
	f.Initialize(width, height)
}

// Size returns the current viewport size.
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Particles returns the live particle slice. Callers must not retain it
// across a Resize.
func (f *Field) Particles() []Particle {
	return f.particles
}

// SetStyle replaces the render colours.
func (f *Field) SetStyle(s Style) {
	f.style = s
}

// Style returns the render colours.
func (f *Field) Style() Style {
	return f.style
}

// Advance moves p by its velocity and reflects the velocity when p ends up
// outside the viewport. The position is not clamped.
func (f *Field) Advance(p *Particle) {
	p.X += p.VX
	p.Y += p.VY
	if p.X < 0 || p.X > f.width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > f.height {
		p.VY = -p.VY
	}
}

// PointerMove records a pointer position given in host coordinates,
// translated by the surface origin.
func (f *Field) PointerMove(x, y, originX, originY float64) {
	f.pointer = Pointer{X: x - originX, Y: y - originY, Present: true}
}

// PointerLeave clears the pointer.
func (f *Field) PointerLeave() {
	f.pointer = Pointer{}
}

// Pointer returns the current pointer state.
func (f *Field) Pointer() Pointer {
	return f.pointer
}

// Stop ends the animation. Later frames draw nothing.
func (f *Field) Stop() {
	f.running = false
}

// Running reports whether frames are still rendered.
func (f *Field) Running() bool {
	return f.running
}

// RenderFrame draws one frame and reports whether it did. A stopped field
// leaves the surface untouched.
func (f *Field) RenderFrame(s Surface) bool {
	if !f.running {
		return false
	}

	s.Fill(f.style.Background)
	for i := range f.particles {
		p := &f.particles[i]
		f.Advance(p)
		s.FillCircle(p.X, p.Y, p.Radius, f.style.Particle)
	}
	f.drawConnections(s)
	return true
}

func (f *Field) drawConnections(s Surface) {
	for _, seg := range f.Connections() {
		a, b := f.particles[seg.I], f.particles[seg.J]
		s.Line(a.X, a.Y, b.X, b.Y, f.style.LineWidth, f.style.Line)
	}
}

// Connections lists every particle pair close to each other and to the
// pointer. It is empty while the pointer is unset.
func (f *Field) Connections() []Segment {
	if !f.pointer.Present {
		return nil
	}

	var segs []Segment
	ps := f.particles
	for i := 0; i < len(ps); i++ {
		if dist(ps[i].X, ps[i].Y, f.pointer.X, f.pointer.Y) >= PointerReach {
			continue
		}
		for j := i + 1; j < len(ps); j++ {
			if dist(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y) >= LinkDistance {
				continue
			}
			if dist(ps[j].X, ps[j].Y, f.pointer.X, f.pointer.Y) >= PointerReach {
				continue
			}
			segs = append(segs, Segment{I: i, J: j})
		}
	}
	return segs
}

func dist(x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	return math.Sqrt(dx*dx + dy*dy)
}
