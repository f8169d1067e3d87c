package strategy

import (
	"context"
	"fmt"

	"lingo-gate/internal/backend"
	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// Chain stage positions, 1-based for failure attribution.
const (
	StageDetect = iota + 1
	StageExtract
	StageTranslate
	StageRefine
)

// stageNames maps stage positions to their diagnostic names.
var stageNames = map[int]string{
	StageDetect:    "detect",
	StageExtract:   "extract-meaning",
	StageTranslate: "translate",
	StageRefine:    "refine",
}

// ChainStrategy refines a translation through four strictly sequential
// provider calls: detect the source language, extract the core meaning,
// translate the meaning, then refine the draft. Each stage's prompt embeds
// the previous stage's output, so no stage may start before the previous one
// completes. A failed stage discards the whole chain; the unrefined draft is
// never returned as a final result.
type ChainStrategy struct{}

// Name returns the mode name.
func (s *ChainStrategy) Name() string {
	return types.ModeChain
}

// Execute runs the four-stage pipeline for one text.
func (s *ChainStrategy) Execute(ctx context.Context, provider backend.Provider, text, sourceLang, targetLang string) (*types.TranslationResult, error) {
	// Intermediate stage outputs live only for this invocation.
	intermediate := &types.ChainIntermediate{}

	// Stage 1: detect the source language. The detected language is carried
	// as display metadata only and never overrides the caller-supplied
	// source_lang.
	detected, err := provider.Chat(ctx, fmt.Sprintf(
		"Detect the language of this text and respond with ONLY the language name:\n'%s'", text))
	if err != nil {
		return nil, app_errors.NewChainStageError(StageDetect, stageNames[StageDetect], err)
	}
	intermediate.DetectedLanguage = detected

	// Stage 2: extract the core semantic meaning in language-neutral terms.
	meaning, err := provider.Chat(ctx, fmt.Sprintf(
		"Explain the meaning of this text in simple English (meaning only, no translation):\n'%s'", text))
	if err != nil {
		return nil, app_errors.NewChainStageError(StageExtract, stageNames[StageExtract], err)
	}
	intermediate.ExtractedMeaning = meaning

	// Stage 3: translate the extracted meaning into the target language.
	draft, err := provider.Translate(ctx, intermediate.ExtractedMeaning, sourceLang, targetLang)
	if err != nil {
		return nil, app_errors.NewChainStageError(StageTranslate, stageNames[StageTranslate], err)
	}
	intermediate.DraftTranslation = draft

	// Stage 4: refine the draft for grammatical naturalness.
	refined, err := provider.Chat(ctx, fmt.Sprintf(
		"Refine this translation for grammar and fluency (improve only):\n'%s'", intermediate.DraftTranslation))
	if err != nil {
		return nil, app_errors.NewChainStageError(StageRefine, stageNames[StageRefine], err)
	}
	intermediate.RefinedTranslation = refined

	logrus.WithFields(logrus.Fields{
		"detected": intermediate.DetectedLanguage,
		"target":   targetLang,
	}).Debug("Prompt chain completed")

	return &types.TranslationResult{
		Original:     text,
		Translation:  intermediate.RefinedTranslation,
		SourceLang:   sourceLang,
		TargetLang:   targetLang,
		Confidence:   provider.Confidence(),
		Mode:         types.ModeChain,
		DetectedLang: intermediate.DetectedLanguage,
	}, nil
}
