package backend

import (
	"context"
	"fmt"
	"strings"

	"lingo-gate/internal/types"
)

func init() {
	Register("mock", newMockProvider)
}

// phraseKey identifies one entry of the fixed demo phrase table.
type phraseKey struct {
	text       string
	targetLang string
}

// mockPhrases is a small fixed table of known translations. Inputs outside
// the table fall back to a deterministic tagged echo.
var mockPhrases = map[phraseKey]string{
	{"hello", "es"}:        "hola",
	{"hello world", "fr"}:  "bonjour le monde",
	{"good morning", "de"}: "guten morgen",
	{"thank you", "zh"}:    "谢谢",
}

// MockProvider is a deterministic, offline provider used for testing and
// demos. It performs no I/O and produces identical output for identical input.
type MockProvider struct{}

func newMockProvider(_ *Factory, _ types.BackendConfig) (Provider, error) {
	return &MockProvider{}, nil
}

// Name returns the provider type name.
func (p *MockProvider) Name() string {
	return "mock"
}

// Translate returns the phrase-table entry when one exists, otherwise a
// language-tagged echo of the input.
func (p *MockProvider) Translate(_ context.Context, text, _, targetLang string) (string, error) {
	if translation, ok := mockPhrases[phraseKey{strings.ToLower(text), targetLang}]; ok {
		return translation, nil
	}
	return fmt.Sprintf("<mock:%s>%s", targetLang, text), nil
}

// Chat echoes the message with a fixed tag.
func (p *MockProvider) Chat(_ context.Context, message string) (string, error) {
	return fmt.Sprintf("<mock:chat>%s", message), nil
}

// Confidence reports full confidence; mock outputs are exact by construction.
func (p *MockProvider) Confidence() float64 {
	return 1.0
}
