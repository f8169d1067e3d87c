// Package strategy implements the translation execution modes. A strategy
// turns one input text into one TranslationResult against a backend provider;
// callers pick the latency/quality trade-off via the request mode.
package strategy

import (
	"context"

	"lingo-gate/internal/backend"
	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/types"
)

// Strategy executes one translation against a provider.
type Strategy interface {
	// Name returns the mode name this strategy implements.
	Name() string

	// Execute translates text from sourceLang to targetLang.
	Execute(ctx context.Context, provider backend.Provider, text, sourceLang, targetLang string) (*types.TranslationResult, error)
}

// ForMode returns the strategy implementing the requested mode.
// An empty mode defaults to simple; unknown modes fail validation.
func ForMode(mode string) (Strategy, error) {
	switch mode {
	case "", types.ModeSimple:
		return &SimpleStrategy{}, nil
	case types.ModeChain:
		return &ChainStrategy{}, nil
	default:
		return nil, app_errors.NewValidationError("unrecognized translation mode: " + mode)
	}
}
