// Package batch fans a translation strategy out over an ordered list of
// texts. Items are independent: one item's failure never aborts the batch,
// and output order always matches input order.
package batch

import (
	"context"
	"sync"

	"lingo-gate/internal/backend"
	"lingo-gate/internal/strategy"
	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// DefaultConcurrency bounds in-flight backend calls per batch when the
// configured value is missing or invalid.
const DefaultConcurrency = 8

// Outcome is one result slot of a batch run. Exactly one of Result or Err is
// set. Index matches the position of the input text.
type Outcome struct {
	Index  int
	Result *types.TranslationResult
	Err    error
}

// Executor runs a strategy once per input text with bounded concurrency.
type Executor struct {
	concurrency int
}

// NewExecutor creates an executor with the given per-batch concurrency bound.
func NewExecutor(concurrency int) *Executor {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Executor{concurrency: concurrency}
}

// Run executes the strategy for every text and returns one outcome per input,
// in input order. Results are collected by index, not by completion order, so
// concurrent dispatch cannot reorder the output.
func (e *Executor) Run(ctx context.Context, texts []string, sourceLang, targetLang string, strat strategy.Strategy, provider backend.Provider) []Outcome {
	outcomes := make([]Outcome, len(texts))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, e.concurrency)

	for i, text := range texts {
		wg.Add(1)
		go func(index int, text string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result, err := strat.Execute(ctx, provider, text, sourceLang, targetLang)
			outcomes[index] = Outcome{Index: index, Result: result, Err: err}
		}(i, text)
	}

	wg.Wait()

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		logrus.WithFields(logrus.Fields{
			"total":  len(texts),
			"failed": failed,
			"mode":   strat.Name(),
		}).Warn("Batch completed with partial failures")
	}

	return outcomes
}
