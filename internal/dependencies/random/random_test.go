package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeededRandomIsReproducible(t *testing.T) {
	first := NewSeeded(42)
	second := NewSeeded(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, first.Intn(1000), second.Intn(1000))
	}
}

func TestSeededRandomString(t *testing.T) {
	first := NewSeeded(7).String(12, "ABC")
	second := NewSeeded(7).String(12, "ABC")

	require.Equal(t, first, second)
	require.Len(t, first, 12)
	for _, c := range first {
		require.Contains(t, "ABC", string(c))
	}
}

func TestCryptoRandomString(t *testing.T) {
	r := New()

	s := r.String(16, "AB")
	require.Len(t, s, 16)
	for _, c := range s {
		require.Contains(t, "AB", string(c))
	}

	require.Empty(t, r.String(0, "AB"))
	require.Empty(t, r.String(4, ""))
}

func TestIntnDegenerateBounds(t *testing.T) {
	require.Equal(t, 0, New().Intn(0))
	require.Equal(t, 0, NewSeeded(1).Intn(0))
	require.Equal(t, 0, New().Intn(1))
}
