// Package form holds the survey form state and its submission rules.
package form

import (
	"strings"
)

// Field identifies one input of the form.
type Field int

const (
	FirstName Field = iota
	LastName
	Phone
	Email
	Guess
	SpidrPin
)

// Fields lists every input in display order.
var Fields = []Field{FirstName, LastName, Phone, Email, Guess, SpidrPin}

const (
	// PINDigits is the number of digits a PIN holds.
	PINDigits = 16

	// PINPattern is the placeholder shown for an empty PIN.
	PINPattern = "####-####-####-####"

	pinGroup     = 4
	pinSeparator = '-'
)

// Record is the state of the six form inputs.
type Record struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Guess     string `json:"guess"`
	SpidrPin  string `json:"spidrPin"`
}

// Label returns the text shown above the input.
func (f Field) Label() string {
	switch f {
	case FirstName:
		return "First Name"
	case LastName:
		return "Last Name"
	case Phone:
		return "Phone Number"
	case Email:
		return "Email Address"
	case Guess:
		return "Guess the Air Fryer's Cost ($)"
	case SpidrPin:
		return "Very, Very Secret 16-Digit Spidr PIN"
	default:
		return ""
	}
}

// Name returns the record key used when logging.
func (f Field) Name() string {
	switch f {
	case FirstName:
		return "firstName"
	case LastName:
		return "lastName"
	case Phone:
		return "phone"
	case Email:
		return "email"
	case Guess:
		return "guess"
	case SpidrPin:
		return "spidrPin"
	default:
		return "unknown"
	}
}

// Required reports whether an empty value blocks submission.
func (f Field) Required() bool {
	switch f {
	case FirstName, LastName, Email, SpidrPin:
		return true
	default:
		return false
	}
}

func (f Field) String() string { return f.Name() }

// Get returns the current value of field.
func (r Record) Get(field Field) string {
	switch field {
	case FirstName:
		return r.FirstName
	case LastName:
		return r.LastName
	case Phone:
		return r.Phone
	case Email:
		return r.Email
	case Guess:
		return r.Guess
	case SpidrPin:
		return r.SpidrPin
	default:
		return ""
	}
}

// Set returns a copy of r with field changed to value, after the field's
// own transform.
func (r Record) Set(field Field, value string) Record {
	switch field {
	case FirstName:
		return r.WithFirstName(value)
	case LastName:
		return r.WithLastName(value)
	case Phone:
		return r.WithPhone(value)
	case Email:
		return r.WithEmail(value)
	case Guess:
		return r.WithGuess(value)
	case SpidrPin:
		return r.WithSpidrPin(value)
	default:
		return r
	}
}

func (r Record) WithFirstName(v string) Record {
	r.FirstName = v
	return r
}

func (r Record) WithLastName(v string) Record {
	r.LastName = v
	return r
}

func (r Record) WithPhone(v string) Record {
	r.Phone = v
	return r
}

func (r Record) WithEmail(v string) Record {
	r.Email = v
	return r
}

func (r Record) WithGuess(v string) Record {
	r.Guess = v
	return r
}

// WithSpidrPin stores v after FormatPIN.
func (r Record) WithSpidrPin(v string) Record {
	r.SpidrPin = FormatPIN(v)
	return r
}

// FormatPIN keeps the first 16 digits of s and groups them by four with
// dashes, e.g. "1234567890123456abc" becomes "1234-5678-9012-3456".
// A dash only appears between groups, so deleting the last character of
// "1234-5" yields "1234" rather than sticking on a trailing dash.
func FormatPIN(s string) string {
	var digits []byte
	for i := 0; i < len(s) && len(digits) < PINDigits; i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}

	var b strings.Builder
	b.Grow(len(PINPattern))
	for i, d := range digits {
		if i > 0 && i%pinGroup == 0 {
			b.WriteByte(pinSeparator)
		}
		b.WriteByte(d)
	}

	out := b.String()
	if len(out) > len(PINPattern) {
		out = out[:len(PINPattern)]
	}
	return out
}
