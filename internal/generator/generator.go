// Package generator builds character alphabets, validates password lengths
// and samples random passwords from an alphabet.
package generator

import (
	"errors"
	"strings"
)

var (
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
	ErrInvalidLength = errors.New("password length must be at least 1")
)

// Generator samples passwords using its Source.
type Generator struct {
	source Source
}

// New creates a Generator. A nil source falls back to MathSource.
func New(source Source) *Generator {
	if source == nil {
		source = MathSource{}
	}
	return &Generator{source: source}
}

// Generate returns a string of exactly length characters, each chosen
// independently from alphabet.
func (g *Generator) Generate(alphabet string, length int) (string, error) {
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}
	if length < 1 {
		return "", ErrInvalidLength
	}

	var sb strings.Builder
	sb.Grow(length)

	for i := 0; i < length; i++ {
		sb.WriteByte(alphabet[pickIndex(g.source.Float64(), len(alphabet))])
	}

	return sb.String(), nil
}

// Generate samples a password with the default math source.
func Generate(alphabet string, length int) (string, error) {
	return New(nil).Generate(alphabet, length)
}

// pickIndex scales a [0,1) draw to [0,n) by flooring.
// Out-of-range draws are clamped so a misbehaving source can't index past the end.
func pickIndex(f float64, n int) int {
	idx := int(f * float64(n))
	if idx >= n {
		return n - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}
