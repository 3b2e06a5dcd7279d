package form

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrRequired marks a required field left empty.
	ErrRequired = errors.New("please fill out this field")

	// ErrInvalid marks a value that does not match its input type.
	ErrInvalid = errors.New("invalid value")
)

// emailPattern is the valid e-mail address grammar used by HTML email
// inputs.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// numberPattern is the valid floating-point number grammar used by HTML
// number inputs.
var numberPattern = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)

// FieldError is a problem with a single input.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field.Label(), e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ValidationError lists every input that blocks submission, in display
// order.
type ValidationError struct {
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the field errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, fe := range e.Fields {
		errs = append(errs, fe)
	}
	return errs
}

// First returns the first offending input.
func (e *ValidationError) First() *FieldError {
	if len(e.Fields) == 0 {
		return nil
	}
	return e.Fields[0]
}

// Validate applies the browser's built-in constraints: required inputs must
// be non-empty, an email input must hold an address and a number input must
// hold a number. It returns nil or a *ValidationError.
func (r Record) Validate() error {
	var errs []*FieldError
	for _, f := range Fields {
		if err := checkField(f, r.Get(f)); err != nil {
			errs = append(errs, &FieldError{Field: f, Err: err})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}

func checkField(f Field, v string) error {
	if v == "" {
		if f.Required() {
			return ErrRequired
		}
		return nil
	}

	switch f {
	case Email:
		if !emailPattern.MatchString(v) {
			return fmt.Errorf("%w: %q is not an email address", ErrInvalid, v)
		}
	case Guess:
		if !numberPattern.MatchString(v) {
			return fmt.Errorf("%w: %q is not a number", ErrInvalid, v)
		}
	}
	return nil
}
