package ui

import (
	"errors"
	"testing"

	"github.com/iburimskiy/spidr-form/internal/config"
	"github.com/iburimskiy/spidr-form/internal/form"
)

type captureSink struct {
	got []form.Record
}

func (c *captureSink) Record(r form.Record) error {
	c.got = append(c.got, r)
	return nil
}

func TestLayoutCentresCard(t *testing.T) {
	l := NewLayout(1024, 768)

	if l.Card.W != config.CardWidth {
		t.Errorf("card width = %v, want %v", l.Card.W, config.CardWidth)
	}
	if got := l.Card.X + l.Card.W/2; got != 512 {
		t.Errorf("card centre x = %v, want 512", got)
	}
	if len(l.Rows) != len(form.Fields) {
		t.Fatalf("rows = %d, want %d", len(l.Rows), len(form.Fields))
	}
	for i := 1; i < len(l.Rows); i++ {
		if l.Rows[i].Input.Y <= l.Rows[i-1].Input.Y {
			t.Errorf("row %d not below row %d", i, i-1)
		}
	}
	last := l.Rows[len(l.Rows)-1].Input
	if l.Button.Y < last.Y+last.H {
		t.Errorf("button overlaps last input")
	}
	if end := l.Status.Y + l.Status.H; end > l.Card.Y+l.Card.H {
		t.Errorf("status line ends at %v, past card bottom %v", end, l.Card.Y+l.Card.H)
	}
}

func TestLayoutNarrowWindow(t *testing.T) {
	l := NewLayout(300, 200)
	if l.Card.W != 300-2*minMargin {
		t.Errorf("card width = %v, want %v", l.Card.W, 300-2*minMargin)
	}
	if l.Card.Y != 0 {
		t.Errorf("card y = %v, want pinned to top", l.Card.Y)
	}
}

func TestHitTest(t *testing.T) {
	l := NewLayout(1024, 768)
	in := l.Rows[3].Input

	tests := []struct {
		name string
		x, y float64
		want Target
	}{
		{"input", in.X + 1, in.Y + 1, TargetInput + 3},
		{"button", l.Button.X + 5, l.Button.Y + 5, TargetButton},
		{"label", l.Rows[0].Label.X + 1, l.Rows[0].Label.Y + 1, TargetNone},
		{"outside card", 1, 1, TargetNone},
	}
	for _, tt := range tests {
		if got := l.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: HitTest = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPointerOverCanvas(t *testing.T) {
	l := NewLayout(1024, 768)

	tests := []struct {
		name    string
		x, y    float64
		focused bool
		want    bool
	}{
		{"background", 10, 10, true, true},
		{"over card", l.Card.X + 10, l.Card.Y + 10, true, false},
		{"outside window", -5, 10, true, false},
		{"past right edge", 1024, 10, true, false},
		{"unfocused", 10, 10, false, false},
	}
	for _, tt := range tests {
		if got := l.PointerOverCanvas(1024, 768, tt.x, tt.y, tt.focused); got != tt.want {
			t.Errorf("%s: PointerOverCanvas = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFocusNextWraps(t *testing.T) {
	f := NewForm(&captureSink{})

	f.FocusNext(false)
	if f.Focus != 0 {
		t.Fatalf("Focus = %d, want 0", f.Focus)
	}
	f.FocusNext(true)
	if f.Focus != len(form.Fields)-1 {
		t.Fatalf("Focus = %d, want last", f.Focus)
	}
	f.FocusNext(false)
	if f.Focus != 0 {
		t.Fatalf("Focus = %d, want wrap to 0", f.Focus)
	}

	f.SetFocus(99)
	if _, ok := f.Focused(); ok {
		t.Error("out of range SetFocus should clear focus")
	}
}

func TestTypingAndBackspace(t *testing.T) {
	f := NewForm(&captureSink{})

	f.Type([]rune("ignored"))
	if f.Record != (form.Record{}) {
		t.Fatalf("typing without focus changed record: %+v", f.Record)
	}

	f.SetFocus(int(form.SpidrPin))
	f.Type([]rune("12345"))
	if f.Record.SpidrPin != "1234-5" {
		t.Fatalf("SpidrPin = %q, want 1234-5", f.Record.SpidrPin)
	}
	f.Backspace()
	if f.Record.SpidrPin != "1234" {
		t.Fatalf("SpidrPin after backspace = %q, want 1234", f.Record.SpidrPin)
	}
	f.Backspace()
	if f.Record.SpidrPin != "123" {
		t.Fatalf("SpidrPin after second backspace = %q, want 123", f.Record.SpidrPin)
	}

	f.SetFocus(int(form.Guess))
	f.Type([]rune("$12a.5"))
	if f.Record.Guess != "12.5" {
		t.Errorf("Guess = %q, want 12.5", f.Record.Guess)
	}

	f.SetFocus(int(form.FirstName))
	f.Type([]rune("Zoë\t"))
	f.Backspace()
	if f.Record.FirstName != "Zo" {
		t.Errorf("FirstName = %q, want Zo", f.Record.FirstName)
	}
}

func TestSubmitBlockedFocusesProblem(t *testing.T) {
	sink := &captureSink{}
	f := NewForm(sink)
	f.SetFocus(int(form.FirstName))
	f.Type([]rune("Ada"))

	err := f.Submit()
	if !errors.Is(err, form.ErrRequired) {
		t.Fatalf("Submit = %v, want ErrRequired", err)
	}
	if len(sink.got) != 0 {
		t.Fatal("blocked submission reached the sink")
	}
	if f.Problem == nil || f.Problem.Field != form.LastName {
		t.Fatalf("Problem = %v, want LastName", f.Problem)
	}
	if f.Focus != int(form.LastName) {
		t.Errorf("Focus = %d, want LastName", f.Focus)
	}

	f.Type([]rune("L"))
	if f.Problem != nil {
		t.Errorf("editing the offending input should clear the problem")
	}
}

func TestSubmitSuccess(t *testing.T) {
	sink := &captureSink{}
	f := NewForm(sink)
	f.Record = form.Record{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		SpidrPin:  "1234-5678-9012-3456",
	}

	if err := f.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !f.Submitted {
		t.Error("Submitted not set")
	}
	if len(sink.got) != 1 || sink.got[0] != f.Record {
		t.Errorf("sink got %+v", sink.got)
	}
}

func TestVisible(t *testing.T) {
	if got := Visible("abcdef", 3); got != "def" {
		t.Errorf("Visible = %q, want def", got)
	}
	if got := Visible("ab", 3); got != "ab" {
		t.Errorf("Visible = %q, want ab", got)
	}
	if got := Visible("ab", 0); got != "" {
		t.Errorf("Visible = %q, want empty", got)
	}
}
