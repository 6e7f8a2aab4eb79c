package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	s := NewPrealloc(2).
		Add("Host", "localhost:8080").
		Add("User-Agent", "curl/8.0")

	t.Run("case-insensitive lookup", func(t *testing.T) {
		value, found := s.Get("host")
		require.True(t, found)
		assert.Equal(t, "localhost:8080", value)
		assert.Equal(t, "curl/8.0", s.Value("USER-AGENT"))
	})

	t.Run("missing key", func(t *testing.T) {
		_, found := s.Get("Accept")
		assert.False(t, found)
		assert.Equal(t, "", s.Value("Accept"))
		assert.Equal(t, "*/*", s.ValueOr("Accept", "*/*"))
	})

	t.Run("duplicates keep insertion order", func(t *testing.T) {
		s := New().Add("X-Key", "first").Add("x-key", "second")
		assert.Equal(t, "first", s.Value("X-KEY"))
		require.Equal(t, 2, s.Len())
	})
}
