package ui

import (
	"errors"
	"strings"

	"github.com/iburimskiy/spidr-form/internal/form"
)

// NoFocus means no input has keyboard focus.
const NoFocus = -1

// Form is the editable state of the card.
type Form struct {
	Record form.Record

	// Focus indexes form.Fields, or NoFocus.
	Focus int

	// Problem is the input that blocked the last submission.
	Problem *form.FieldError

	// Submitted is set after a submission reached the sink and cleared by
	// the next edit.
	Submitted bool

	sink form.Sink
}

// NewForm returns an empty form that submits to sink.
func NewForm(sink form.Sink) *Form {
	return &Form{Focus: NoFocus, sink: sink}
}

// Focused returns the focused field.
func (f *Form) Focused() (form.Field, bool) {
	if f.Focus < 0 || f.Focus >= len(form.Fields) {
		return 0, false
	}
	return form.Fields[f.Focus], true
}

// SetFocus focuses input i, or clears focus when i is out of range.
func (f *Form) SetFocus(i int) {
	if i < 0 || i >= len(form.Fields) {
		f.Focus = NoFocus
		return
	}
	f.Focus = i
}

// FocusNext moves focus forward, or backward when back is set, wrapping
// around the inputs.
func (f *Form) FocusNext(back bool) {
	n := len(form.Fields)
	switch {
	case f.Focus == NoFocus && back:
		f.Focus = n - 1
	case f.Focus == NoFocus:
		f.Focus = 0
	case back:
		f.Focus = (f.Focus - 1 + n) % n
	default:
		f.Focus = (f.Focus + 1) % n
	}
}

// Type appends rs to the focused input.
func (f *Form) Type(rs []rune) {
	field, ok := f.Focused()
	if !ok || len(rs) == 0 {
		return
	}
	accepted := filterInput(field, rs)
	if accepted == "" {
		return
	}
	f.change(field, f.Record.Get(field)+accepted)
}

// Backspace deletes the last character of the focused input.
func (f *Form) Backspace() {
	field, ok := f.Focused()
	if !ok {
		return
	}
	v := []rune(f.Record.Get(field))
	if len(v) == 0 {
		return
	}
	f.change(field, string(v[:len(v)-1]))
}

func (f *Form) change(field form.Field, v string) {
	f.Record = f.Record.Set(field, v)
	f.Submitted = false
	if f.Problem != nil && f.Problem.Field == field {
		f.Problem = nil
	}
}

// Submit sends the record to the sink. A record that fails validation is
// held back, and focus jumps to the first offending input.
func (f *Form) Submit() error {
	err := form.Submit(f.Record, f.sink)

	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		f.Problem = verr.First()
		for i, fl := range form.Fields {
			if fl == f.Problem.Field {
				f.Focus = i
			}
		}
		f.Submitted = false
	case err != nil:
		f.Submitted = false
	default:
		f.Problem = nil
		f.Submitted = true
	}
	return err
}

// filterInput drops characters a browser would not let into the input.
// Number inputs only take characters that can appear in a number.
func filterInput(field form.Field, rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if r < ' ' || r == 0x7f {
			continue
		}
		if field == form.Guess && !strings.ContainsRune("0123456789.-+eE", r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Visible returns the tail of s that fits in maxChars, so the caret end
// of a long value stays in view.
func Visible(s string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= maxChars {
		return s
	}
	return string(rs[len(rs)-maxChars:])
}
