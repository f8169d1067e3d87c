package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMaskCredential tests credential masking for logs
func TestMaskCredential(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"long credential", "test-key-12345", "test****2345"},
		{"exactly 8 chars", "12345678", "12345678"},
		{"short credential", "abc", "abc"},
		{"empty", "", ""},
		{"nine chars", "123456789", "1234****6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskCredential(tt.input))
		})
	}
}

// TestTruncateString tests string truncation
func TestTruncateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", TruncateString("hello", 10))
	assert.Equal(t, "hel", TruncateString("hello", 3))
	assert.Equal(t, "", TruncateString("", 5))
}

// TestSplitAndTrim tests comma-list parsing
func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple list", "a,b,c", []string{"a", "b", "c"}},
		{"spaces around items", " a , b , c ", []string{"a", "b", "c"}},
		{"empty items dropped", "a,,c,", []string{"a", "c"}},
		{"empty string", "", []string{}},
		{"single item", "only", []string{"only"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitAndTrim(tt.input, ","))
		})
	}
}
