package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/spidr-form/internal/config"
	"github.com/iburimskiy/spidr-form/internal/form"
	"github.com/iburimskiy/spidr-form/internal/ui"
)

const helpText = "Tab: next field  Enter: submit  Esc: leave field / quit"

var face = text.NewGoXFace(basicfont.Face7x13)

// Card palette, neutral greys on near-black.
var (
	cardFill      = hex(0x171717)
	cardBorder    = hex(0x262626)
	labelColor    = hex(0xa3a3a3)
	inputFill     = hex(0x262626)
	inputBorder   = hex(0x404040)
	focusBorder   = hex(0xd4d4d4)
	problemColor  = hex(0xf87171)
	placeholder   = hex(0x737373)
	valueColor    = hex(0xffffff)
	buttonFill    = hex(0xffffff)
	buttonHover   = hex(0xd4d4d4)
	buttonPressed = hex(0xa3a3a3)
	buttonText    = hex(0x000000)
)

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.field.RenderFrame(screenSurface{dst: screen}) {
		return
	}

	g.drawCard(screen)
	ebitenutil.DebugPrintAt(screen, helpText, 12, 12)
}

func (g *Game) drawCard(screen *ebiten.Image) {
	fillRect(screen, g.layout.Card, cardFill)
	strokeRect(screen, g.layout.Card, 1, cardBorder)

	for i, row := range g.layout.Rows {
		g.drawRow(screen, i, row)
	}
	g.drawButton(screen)

	if g.form.Submitted {
		drawText(screen, "Submitted. Thanks for playing!", g.layout.Status.X, g.layout.Status.Y+4, labelColor)
	}
}

func (g *Game) drawRow(screen *ebiten.Image, i int, row ui.Row) {
	drawText(screen, row.Field.Label(), row.Label.X, row.Label.Y, labelColor)

	focused := g.form.Focus == i
	problem := g.form.Problem != nil && g.form.Problem.Field == row.Field

	border := inputBorder
	switch {
	case problem:
		border = problemColor
	case focused:
		border = focusBorder
	}
	fillRect(screen, row.Input, inputFill)
	strokeRect(screen, row.Input, 1, border)

	const inset = 8
	tx := row.Input.X + inset
	ty := row.Input.Y + (row.Input.H-config.CharHeight)/2
	maxChars := int((row.Input.W - 2*inset) / config.CharWidth)

	value := g.form.Record.Get(row.Field)
	switch {
	case value == "" && row.Field == form.SpidrPin:
		drawText(screen, form.PINPattern, tx, ty, placeholder)
	default:
		shown := ui.Visible(value, maxChars-1)
		drawText(screen, shown, tx, ty, valueColor)
		tx += text.Advance(shown, face)
	}

	// caret blinks twice a second at 60 ticks/s
	if focused && (g.frame/30)%2 == 0 {
		vector.DrawFilledRect(screen, float32(tx), float32(ty), 1, config.CharHeight, valueColor, false)
	}

	if problem {
		drawText(screen, g.form.Problem.Err.Error(), row.Hint.X, row.Hint.Y, problemColor)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	b := g.layout.Button

	var bg color.Color
	switch {
	case g.buttonPressed:
		bg = buttonPressed
	case g.buttonHovered:
		bg = buttonHover
	default:
		bg = buttonFill
	}
	fillRect(screen, b, bg)

	if glow := glowColor(g.chime.Level(), float64(g.frame)); glow.A > 0 {
		strokeRect(screen, ui.Rect{X: b.X - 2, Y: b.Y - 2, W: b.W + 4, H: b.H + 4}, 3, glow)
	}

	label := "Submit"
	lx := b.X + (b.W-text.Advance(label, face))/2
	ly := b.Y + (b.H-config.CharHeight)/2
	drawText(screen, label, lx, ly, buttonText)
}

func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

func fillRect(dst *ebiten.Image, r ui.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(dst *ebiten.Image, r ui.Rect, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}
