package service

import (
	"context"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/screen"
)

// GeneratorService applies screen events to a captured screen state.
// Each call rebuilds a private Screen, so the service holds no per-user state.
type GeneratorService struct {
	gen *generator.Generator
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *generator.Generator) *GeneratorService {
	return &GeneratorService{gen: gen}
}

// Generate validates the request against the screen state and produces a
// password. Toggles present in the request override the state's toggles.
func (s *GeneratorService) Generate(ctx context.Context, state model.ScreenState, req model.GenerateRequest) (model.ScreenState, error) {
	sc := screen.Restore(s.gen, state)
	sc.SetClasses(req.Apply(sc.Classes()))

	if _, err := sc.Submit(ctx, string(req.Length)); err != nil {
		return model.ScreenState{}, err
	}

	return sc.State(), nil
}

// Toggle flips one character class.
func (s *GeneratorService) Toggle(ctx context.Context, state model.ScreenState, class string) (model.ScreenState, error) {
	sc := screen.Restore(s.gen, state)
	if err := sc.Toggle(class); err != nil {
		return model.ScreenState{}, err
	}
	return sc.State(), nil
}

// Reset restores the screen defaults.
func (s *GeneratorService) Reset(ctx context.Context, state model.ScreenState) (model.ScreenState, error) {
	sc := screen.Restore(s.gen, state)
	if err := sc.HandleReset(ctx); err != nil {
		return model.ScreenState{}, err
	}
	return sc.State(), nil
}
