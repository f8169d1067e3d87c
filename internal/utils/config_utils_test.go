package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestGetEnvOrDefault tests environment variable lookup with fallback
func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_ENV_VAR", "value")

	assert.Equal(t, "value", GetEnvOrDefault("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", GetEnvOrDefault("TEST_ENV_VAR_MISSING", "default"))
}

// TestParseInteger tests integer parsing with fallback
func TestParseInteger(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, ParseInteger("42", 0))
	assert.Equal(t, 7, ParseInteger("", 7))
	assert.Equal(t, 7, ParseInteger("not-a-number", 7))
	assert.Equal(t, -3, ParseInteger("-3", 7))
}

// TestParseBoolean tests boolean parsing with fallback
func TestParseBoolean(t *testing.T) {
	t.Parallel()

	assert.True(t, ParseBoolean("true", false))
	assert.False(t, ParseBoolean("false", true))
	assert.True(t, ParseBoolean("", true))
	assert.True(t, ParseBoolean("garbage", true))
}

// TestParseDurationSeconds tests duration parsing with fallback
func TestParseDurationSeconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30*time.Second, ParseDurationSeconds("30", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationSeconds("", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationSeconds("0", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationSeconds("-5", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationSeconds("abc", time.Minute))
}
