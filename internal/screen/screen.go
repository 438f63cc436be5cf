// Package screen models the password generator screen: a validated length
// form, the character class toggles and the result panel, composed by plain
// event handlers.
package screen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
)

// Class names accepted by Toggle.
const (
	ClassLowercase = "lowercase"
	ClassUppercase = "uppercase"
	ClassNumbers   = "numbers"
	ClassSymbols   = "symbols"
)

var ErrUnknownClass = errors.New("unknown character class")

// Screen holds the in-memory state of one generator screen.
// It is not safe for concurrent use; each user session owns its own Screen.
type Screen struct {
	gen      *generator.Generator
	form     *LengthForm
	classes  model.CharacterClasses
	password string
	panel    *resultPanel
}

// New opens a screen with default toggles and a hidden result panel.
func New(gen *generator.Generator) *Screen {
	return Restore(gen, model.ScreenState{Classes: model.DefaultClasses()})
}

// Restore rebuilds a screen from a previously captured state.
func Restore(gen *generator.Generator, state model.ScreenState) *Screen {
	if gen == nil {
		gen = generator.New(nil)
	}
	return &Screen{
		gen:      gen,
		form:     NewLengthForm(),
		classes:  state.Classes,
		password: state.Password,
		panel:    newResultPanel(state.Generated),
	}
}

// Form exposes the length field.
func (s *Screen) Form() *LengthForm { return s.form }

func (s *Screen) Classes() model.CharacterClasses { return s.classes }

// SetClasses replaces all four toggles.
func (s *Screen) SetClasses(c model.CharacterClasses) { s.classes = c }

// Toggle flips the named class.
func (s *Screen) Toggle(class string) error {
	switch strings.ToLower(strings.TrimSpace(class)) {
	case ClassLowercase:
		s.classes.Lowercase = !s.classes.Lowercase
	case ClassUppercase:
		s.classes.Uppercase = !s.classes.Uppercase
	case ClassNumbers:
		s.classes.Numbers = !s.classes.Numbers
	case ClassSymbols:
		s.classes.Symbols = !s.classes.Symbols
	default:
		return fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	return nil
}

// CanSubmit mirrors the generate button: disabled while the length is invalid.
func (s *Screen) CanSubmit() bool { return s.form.Valid() }

// Submit validates the length text and the class selection, then generates a
// password that replaces any previous one and shows the result panel.
func (s *Screen) Submit(ctx context.Context, lengthInput string) (string, error) {
	s.form.SetValue(lengthInput)
	length, err := s.form.Submit()
	if err != nil {
		return "", err
	}
	if err := generator.ValidateClasses(s.classes); err != nil {
		return "", err
	}

	slog.DebugContext(ctx, "password submitted", "length", length, "classes", s.classes)

	password, err := s.gen.Generate(generator.BuildAlphabet(s.classes), length)
	if err != nil {
		return "", fmt.Errorf("generating password: %w", err)
	}
	if err := s.panel.fire(ctx, eventGenerate); err != nil {
		return "", fmt.Errorf("showing result: %w", err)
	}

	s.password = password
	return password, nil
}

// Reset clears the password, hides the result panel and restores the default
// toggles. The length field is left to the form.
func (s *Screen) Reset(ctx context.Context) error {
	if err := s.panel.fire(ctx, eventReset); err != nil {
		return fmt.Errorf("hiding result: %w", err)
	}
	s.password = ""
	s.classes = model.DefaultClasses()
	return nil
}

// HandleReset is the reset button: it resets the form and then the screen state.
func (s *Screen) HandleReset(ctx context.Context) error {
	s.form.Reset()
	return s.Reset(ctx)
}

// Password returns the displayed password, or "" when the panel is hidden.
func (s *Screen) Password() string { return s.password }

// Generated reports whether the result panel is shown.
func (s *Screen) Generated() bool { return s.panel.shown() }

// State captures the display state.
func (s *Screen) State() model.ScreenState {
	return model.ScreenState{
		Classes:   s.classes,
		Password:  s.password,
		Generated: s.panel.shown(),
	}
}
