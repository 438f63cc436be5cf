package screen

import (
	"errors"

	"github.com/vaultpass/passgen-go/internal/generator"
)

// LengthForm is the validated length field: it owns the raw text, whether
// the user has touched it, and the latest validation result.
type LengthForm struct {
	value   string
	touched bool
	length  int
	err     *generator.ValidationError
}

// NewLengthForm returns an empty, untouched form.
func NewLengthForm() *LengthForm {
	f := &LengthForm{}
	f.validate()
	return f
}

// SetValue replaces the field text and re-validates it.
func (f *LengthForm) SetValue(v string) {
	f.value = v
	f.validate()
}

// Touch marks the field as visited so its error becomes visible.
func (f *LengthForm) Touch() { f.touched = true }

func (f *LengthForm) Value() string { return f.value }

func (f *LengthForm) Touched() bool { return f.touched }

// Valid reports whether the current value passes validation.
func (f *LengthForm) Valid() bool { return f.err == nil }

// Error returns the inline message, or "" while the field is untouched or valid.
func (f *LengthForm) Error() string {
	if !f.touched || f.err == nil {
		return ""
	}
	return f.err.Message
}

// Submit touches the field and returns the validated length.
func (f *LengthForm) Submit() (int, error) {
	f.Touch()
	if f.err != nil {
		return 0, f.err
	}
	return f.length, nil
}

// Reset restores the field to empty and untouched.
func (f *LengthForm) Reset() {
	f.value = ""
	f.touched = false
	f.validate()
}

func (f *LengthForm) validate() {
	n, err := generator.ValidateLength(f.value)
	var vErr *generator.ValidationError
	errors.As(err, &vErr)
	f.length, f.err = n, vErr
}
