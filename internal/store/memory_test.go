package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryStore_SetGet tests basic set and get
func TestMemoryStore_SetGet(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	defer s.Close()

	require.NoError(t, s.Set("key", []byte("value"), 0))

	got, err := s.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
}

// TestMemoryStore_GetMissing tests lookup of an absent key
func TestMemoryStore_GetMissing(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	defer s.Close()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestMemoryStore_TTLExpiry tests lazy expiration on read
func TestMemoryStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	defer s.Close()

	require.NoError(t, s.Set("ephemeral", []byte("v"), 10*time.Millisecond))

	got, err := s.Get("ephemeral")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	time.Sleep(20 * time.Millisecond)

	_, err = s.Get("ephemeral")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestMemoryStore_Delete tests key removal
func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	defer s.Close()

	require.NoError(t, s.Set("key", []byte("value"), 0))
	require.NoError(t, s.Delete("key"))

	_, err := s.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, s.Delete("missing"))
}

// TestMemoryStore_Exists tests existence checks
func TestMemoryStore_Exists(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	defer s.Close()

	exists, err := s.Exists("key")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Set("key", []byte("value"), 0))

	exists, err = s.Exists("key")
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestMemoryStore_Clear tests removing all keys
func TestMemoryStore_Clear(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	defer s.Close()

	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))
	require.NoError(t, s.Clear())

	_, err := s.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get("b")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestMemoryStore_ConcurrentAccess tests concurrent readers and writers
func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	defer s.Close()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = s.Set("shared", []byte("v"), 0)
				_, _ = s.Get("shared")
			}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	got, err := s.Get("shared")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}
