// Package ui is the toolkit-independent part of the form card: geometry,
// focus and text editing. The game package feeds it input and draws it.
package ui

import (
	"github.com/iburimskiy/spidr-form/internal/config"
	"github.com/iburimskiy/spidr-form/internal/form"
)

// Rect is an axis-aligned box in window pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Row is one labelled input.
type Row struct {
	Field form.Field
	Label Rect
	Input Rect
	// Hint is where a validation message is drawn.
	Hint Rect
}

// Layout places the form card in the window.
type Layout struct {
	Card   Rect
	Rows   []Row
	Button Rect
	Status Rect
}

const (
	minMargin    = 16
	statusHeight = 24
)

// NewLayout centres the card in a width x height window. The card shrinks
// on narrow windows and scrolls off the bottom on short ones.
func NewLayout(width, height int) Layout {
	w := float64(width)
	h := float64(height)

	cardW := min(float64(config.CardWidth), w-2*minMargin)
	cardW = max(cardW, 2*config.CardPadding+config.CharWidth)
	rows := float64(len(form.Fields))
	cardH := 2*config.CardPadding +
		rows*(config.LabelHeight+config.FieldHeight) +
		(rows-1)*config.FieldSpacing +
		config.FieldSpacing + config.ButtonHeight + statusHeight

	l := Layout{
		Card: Rect{
			X: (w - cardW) / 2,
			Y: max(0, (h-cardH)/2),
			W: cardW,
			H: cardH,
		},
	}

	x := l.Card.X + config.CardPadding
	innerW := cardW - 2*config.CardPadding
	y := l.Card.Y + config.CardPadding
	for _, f := range form.Fields {
		row := Row{
			Field: f,
			Label: Rect{X: x, Y: y, W: innerW, H: config.LabelHeight},
			Input: Rect{X: x, Y: y + config.LabelHeight, W: innerW, H: config.FieldHeight},
			Hint:  Rect{X: x, Y: y + config.LabelHeight + config.FieldHeight + 2, W: innerW, H: config.FieldSpacing - 2},
		}
		l.Rows = append(l.Rows, row)
		y += config.LabelHeight + config.FieldHeight + config.FieldSpacing
	}
	l.Button = Rect{X: x, Y: y, W: innerW, H: config.ButtonHeight}
	l.Status = Rect{X: x, Y: y + config.ButtonHeight + 4, W: innerW, H: statusHeight - 4}
	return l
}

// Target is what a pointer press lands on.
type Target int

const (
	TargetNone Target = iota - 1
	TargetButton
	// TargetInput is the first input; input i is TargetInput + i.
	TargetInput
)

// HitTest maps a window position to a target.
func (l Layout) HitTest(x, y float64) Target {
	if l.Button.Contains(x, y) {
		return TargetButton
	}
	for i, row := range l.Rows {
		if row.Input.Contains(x, y) {
			return TargetInput + Target(i)
		}
	}
	return TargetNone
}

// PointerOverCanvas reports whether the pointer at (x, y) should count as
// hovering the particle canvas: the window has focus, the pointer is inside
// it, and it is not over the card drawn on top.
func (l Layout) PointerOverCanvas(width, height int, x, y float64, focused bool) bool {
	if !focused {
		return false
	}
	window := Rect{W: float64(width), H: float64(height)}
	return window.Contains(x, y) && !l.Card.Contains(x, y)
}
