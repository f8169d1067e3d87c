// Package services contains the request-processing services of the gateway.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"lingo-gate/internal/backend"
	"lingo-gate/internal/batch"
	"lingo-gate/internal/store"
	"lingo-gate/internal/strategy"
	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// translationCachePrefix namespaces memoized translations in the store.
const translationCachePrefix = "translation:"

// TranslationService orchestrates translation and chat requests: it selects
// the execution strategy, resolves the backend provider, fans batches out and
// memoizes deterministic results.
type TranslationService struct {
	factory  *backend.Factory
	executor *batch.Executor
	store    store.Store
	cacheCfg types.CacheConfig
}

// NewTranslationService creates a new TranslationService.
func NewTranslationService(configManager types.ConfigManager, factory *backend.Factory, cacheStore store.Store) *TranslationService {
	return &TranslationService{
		factory:  factory,
		executor: batch.NewExecutor(configManager.GetPerformanceConfig().BatchConcurrency),
		store:    cacheStore,
		cacheCfg: configManager.GetCacheConfig(),
	}
}

// Translate handles a single-text translation request.
func (s *TranslationService) Translate(ctx context.Context, req *types.TranslateRequest) (*types.TranslationResult, error) {
	strat, err := strategy.ForMode(req.Mode)
	if err != nil {
		return nil, err
	}

	// Simple-mode results are memoized: identical inputs produce identical
	// outputs, so a cache hit is indistinguishable from a fresh call.
	cacheKey := ""
	if s.cacheable(strat) {
		cacheKey = translationCacheKey(req.Text, req.SourceLang, req.TargetLang)
		if cached := s.cacheGet(cacheKey); cached != nil {
			return cached, nil
		}
	}

	provider, err := s.factory.GetProvider()
	if err != nil {
		return nil, err
	}

	result, err := strat.Execute(ctx, provider, req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		s.cacheSet(cacheKey, result)
	}

	return result, nil
}

// TranslateBatch handles an ordered multi-text translation request.
// One outcome slot is produced per input text, in input order; item failures
// surface as per-item error markers instead of aborting the batch.
func (s *TranslationService) TranslateBatch(ctx context.Context, req *types.BatchTranslateRequest) (*types.BatchTranslateResponse, error) {
	strat, err := strategy.ForMode(req.Mode)
	if err != nil {
		return nil, err
	}

	provider, err := s.factory.GetProvider()
	if err != nil {
		return nil, err
	}

	outcomes := s.executor.Run(ctx, req.Texts, req.SourceLang, req.TargetLang, strat, provider)

	translations := make([]types.BatchItemResult, len(outcomes))
	for i, outcome := range outcomes {
		item := types.BatchItemResult{Original: req.Texts[i]}
		if outcome.Err != nil {
			item.Error = outcome.Err.Error()
		} else {
			item.Translation = outcome.Result.Translation
		}
		translations[i] = item
	}

	return &types.BatchTranslateResponse{
		Count:        len(translations),
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		Translations: translations,
	}, nil
}

// Chat handles a stateless single-turn chat request.
func (s *TranslationService) Chat(ctx context.Context, message string) (string, string, error) {
	provider, err := s.factory.GetProvider()
	if err != nil {
		return "", "", err
	}

	reply, err := provider.Chat(ctx, message)
	if err != nil {
		return "", "", err
	}
	return reply, provider.Name(), nil
}

// cacheable reports whether results of the given strategy may be memoized.
// Chain-mode results are not cached: chain output depends on generation
// temperature and is not stable across calls.
func (s *TranslationService) cacheable(strat strategy.Strategy) bool {
	return s.cacheCfg.Enabled && s.store != nil && strat.Name() == types.ModeSimple
}

func (s *TranslationService) cacheGet(key string) *types.TranslationResult {
	data, err := s.store.Get(key)
	if err != nil {
		if err != store.ErrNotFound {
			logrus.WithError(err).Debug("Translation cache read failed")
		}
		return nil
	}

	var result types.TranslationResult
	if err := json.Unmarshal(data, &result); err != nil {
		logrus.WithError(err).Debug("Discarding undecodable cached translation")
		s.store.Delete(key)
		return nil
	}
	return &result
}

func (s *TranslationService) cacheSet(key string, result *types.TranslationResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.store.Set(key, data, s.cacheCfg.TTL); err != nil {
		logrus.WithError(err).Debug("Translation cache write failed")
	}
}

// translationCacheKey derives a stable cache key for one input tuple.
func translationCacheKey(text, sourceLang, targetLang string) string {
	sum := sha256.Sum256([]byte(sourceLang + "\x00" + targetLang + "\x00" + text))
	return translationCachePrefix + hex.EncodeToString(sum[:16])
}
