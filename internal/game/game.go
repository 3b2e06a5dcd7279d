// Package game hosts the form card and its particle background in an
// ebiten window. Ebiten's tick is the display refresh signal that drives
// the animation.
package game

import (
	"context"
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spidr-form/internal/audio"
	"github.com/iburimskiy/spidr-form/internal/config"
	"github.com/iburimskiy/spidr-form/internal/form"
	"github.com/iburimskiy/spidr-form/internal/particles"
	"github.com/iburimskiy/spidr-form/internal/ui"
)

// The canvas covers the whole window.
const canvasOriginX, canvasOriginY = 0, 0

type Game struct {
	ctx    context.Context
	cfg    config.Config
	logger *log.Logger

	field  *particles.Field
	form   *ui.Form
	layout ui.Layout
	chime  *audio.Chime
	styles <-chan particles.Style

	width, height int

	// button state
	buttonHovered bool
	buttonPressed bool

	frame int

	// listening is false once input handlers are detached.
	listening bool
	closed    bool
}

// New builds a game sized from cfg. styles may be nil.
func New(ctx context.Context, cfg config.Config, logger *log.Logger, chime *audio.Chime, styles <-chan particles.Style) *Game {
	return &Game{
		ctx:       ctx,
		cfg:       cfg,
		logger:    logger,
		field:     particles.NewField(cfg.Width, cfg.Height, cfg.Seed),
		form:      ui.NewForm(form.NewLogSink(logger)),
		layout:    ui.NewLayout(cfg.Width, cfg.Height),
		chime:     chime,
		styles:    styles,
		width:     cfg.Width,
		height:    cfg.Height,
		listening: true,
	}
}

func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	select {
	case <-g.ctx.Done():
		g.Close()
		return ebiten.Termination
	default:
	}

	g.applyStyle()
	g.frame++
	if !g.listening {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	g.trackPointer(x, y)
	g.buttonHovered = g.layout.Button.Contains(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch t := g.layout.HitTest(x, y); {
		case t == ui.TargetButton:
			g.buttonPressed = true
		case t >= ui.TargetInput:
			g.form.SetFocus(int(t - ui.TargetInput))
		default:
			g.form.SetFocus(ui.NoFocus)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.submit()
		}
		g.buttonPressed = false
	}

	_, editing := g.form.Focused()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !editing {
			g.Close()
			return ebiten.Termination
		}
		g.form.SetFocus(ui.NoFocus)
		editing = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.form.FocusNext(ebiten.IsKeyPressed(ebiten.KeyShift))
		editing = true
	}

	if editing {
		g.form.Type(ebiten.AppendInputChars(nil))
		if repeating(ebiten.KeyBackspace) {
			g.form.Backspace()
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.submit()
	}
	return nil
}

// repeating fires on the first press and then periodically while held.
func repeating(k ebiten.Key) bool {
	if inpututil.IsKeyJustPressed(k) {
		return true
	}
	d := inpututil.KeyPressDuration(k)
	return d > config.KeyRepeatDelay && d%config.KeyRepeatEvery == 0
}

func (g *Game) trackPointer(x, y float64) {
	if g.layout.PointerOverCanvas(g.width, g.height, x, y, ebiten.IsFocused()) {
		g.field.PointerMove(x, y, canvasOriginX, canvasOriginY)
		return
	}
	if g.field.Pointer().Present {
		g.field.PointerLeave()
	}
}

func (g *Game) applyStyle() {
	if g.styles == nil {
		return
	}
	select {
	case s := <-g.styles:
		g.field.SetStyle(s)
	default:
	}
}

func (g *Game) submit() {
	err := g.form.Submit()

	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		g.logger.Printf("submit blocked: %v", err)
		msg := verr.First().Error()
		g.dialog(func() error {
			return zenity.Warning(msg, zenity.Title(g.cfg.Title), zenity.WarningIcon)
		})
	case err != nil:
		g.logger.Printf("submit: %v", err)
	default:
		g.chime.Play()
		msg := "Thanks, " + g.form.Record.FirstName + "! Your answers were recorded."
		g.dialog(func() error {
			return zenity.Notify(msg, zenity.Title(g.cfg.Title))
		})
	}
}

// dialog shows a native dialog off the game loop when dialogs are enabled.
func (g *Game) dialog(show func() error) {
	if !g.cfg.Dialogs {
		return
	}
	go func() {
		if err := show(); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			g.logger.Printf("dialog: %v", err)
		}
	}()
}

// Close detaches input, stops the animation and silences audio. The next
// Update ends the run loop.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.listening = false
	g.field.Stop()
	g.chime.Close()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Resize(outsideWidth, outsideHeight)
		g.layout = ui.NewLayout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
