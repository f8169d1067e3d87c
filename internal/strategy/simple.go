package strategy

import (
	"context"

	"lingo-gate/internal/backend"
	"lingo-gate/internal/types"
)

// SimpleStrategy performs a single direct translation call. Lowest latency,
// no intermediate state.
type SimpleStrategy struct{}

// Name returns the mode name.
func (s *SimpleStrategy) Name() string {
	return types.ModeSimple
}

// Execute translates the text with one provider call.
func (s *SimpleStrategy) Execute(ctx context.Context, provider backend.Provider, text, sourceLang, targetLang string) (*types.TranslationResult, error) {
	translation, err := provider.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}

	return &types.TranslationResult{
		Original:    text,
		Translation: translation,
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
		Confidence:  provider.Confidence(),
		Mode:        types.ModeSimple,
	}, nil
}
