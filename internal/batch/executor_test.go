package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"lingo-gate/internal/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowProvider translates with an artificial delay and fails texts containing
// the word "fail". Used to surface ordering bugs under concurrency.
type slowProvider struct {
	delay    time.Duration
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (p *slowProvider) Name() string { return "slow" }

func (p *slowProvider) Translate(_ context.Context, text, _, targetLang string) (string, error) {
	current := p.inFlight.Add(1)
	defer p.inFlight.Add(-1)
	for {
		max := p.maxSeen.Load()
		if current <= max || p.maxSeen.CompareAndSwap(max, current) {
			break
		}
	}

	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if strings.Contains(text, "fail") {
		return "", errors.New("simulated backend failure")
	}
	return fmt.Sprintf("[%s]%s", targetLang, text), nil
}

func (p *slowProvider) Chat(_ context.Context, message string) (string, error) {
	return "reply:" + message, nil
}

func (p *slowProvider) Confidence() float64 { return 1.0 }

// TestExecutor_OrderPreserved tests that output order matches input order even
// when items complete out of order
func TestExecutor_OrderPreserved(t *testing.T) {
	t.Parallel()

	texts := make([]string, 20)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%02d", i)
	}

	executor := NewExecutor(8)
	provider := &slowProvider{delay: time.Millisecond}

	outcomes := executor.Run(context.Background(), texts, "en", "es", &strategy.SimpleStrategy{}, provider)

	require.Len(t, outcomes, len(texts))
	for i, outcome := range outcomes {
		require.NoError(t, outcome.Err)
		assert.Equal(t, i, outcome.Index)
		assert.Equal(t, texts[i], outcome.Result.Original)
		assert.Equal(t, fmt.Sprintf("[es]text-%02d", i), outcome.Result.Translation)
	}
}

// TestExecutor_PartialFailure tests that one failing item does not abort the rest
func TestExecutor_PartialFailure(t *testing.T) {
	t.Parallel()

	texts := []string{"one", "this-will-fail", "three"}

	executor := NewExecutor(2)
	provider := &slowProvider{}

	outcomes := executor.Run(context.Background(), texts, "en", "de", &strategy.SimpleStrategy{}, provider)

	require.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.Equal(t, "[de]one", outcomes[0].Result.Translation)

	assert.Error(t, outcomes[1].Err)
	assert.Nil(t, outcomes[1].Result)

	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, "[de]three", outcomes[2].Result.Translation)
}

// TestExecutor_ConcurrencyBound tests that in-flight calls never exceed the bound
func TestExecutor_ConcurrencyBound(t *testing.T) {
	t.Parallel()

	texts := make([]string, 30)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%d", i)
	}

	executor := NewExecutor(3)
	provider := &slowProvider{delay: 5 * time.Millisecond}

	executor.Run(context.Background(), texts, "en", "fr", &strategy.SimpleStrategy{}, provider)

	assert.LessOrEqual(t, provider.maxSeen.Load(), int32(3))
}

// TestExecutor_InvalidConcurrencyFallsBack tests the default bound
func TestExecutor_InvalidConcurrencyFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultConcurrency, NewExecutor(0).concurrency)
	assert.Equal(t, DefaultConcurrency, NewExecutor(-5).concurrency)
	assert.Equal(t, 4, NewExecutor(4).concurrency)
}

// TestExecutor_EmptyInput tests a zero-item batch
func TestExecutor_EmptyInput(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(4)
	provider := &slowProvider{}

	outcomes := executor.Run(context.Background(), nil, "en", "es", &strategy.SimpleStrategy{}, provider)
	assert.Empty(t, outcomes)
}

// TestExecutor_SingleResultPerItem tests slot allocation for duplicate inputs
func TestExecutor_SingleResultPerItem(t *testing.T) {
	t.Parallel()

	texts := []string{"same", "same", "same"}

	executor := NewExecutor(2)
	provider := &slowProvider{}

	outcomes := executor.Run(context.Background(), texts, "en", "es", &strategy.SimpleStrategy{}, provider)

	require.Len(t, outcomes, 3)
	seen := make(map[int]bool)
	for _, outcome := range outcomes {
		assert.False(t, seen[outcome.Index])
		seen[outcome.Index] = true
		require.NoError(t, outcome.Err)
		assert.Equal(t, "[es]same", outcome.Result.Translation)
	}
}
