package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIndex(t *testing.T) {
	idx, ok := NewIndex(0)
	require.True(t, ok)
	require.Equal(t, 0, idx.Int())

	idx, ok = NewIndex(42)
	require.True(t, ok)
	require.Equal(t, 42, idx.Int())

	_, ok = NewIndex(-1)
	require.False(t, ok)
}

func TestMustIndexPanicsOnNegative(t *testing.T) {
	require.NotPanics(t, func() { MustIndex(0) })
	require.Panics(t, func() { MustIndex(-1) })
}

func TestIndexArithmetic(t *testing.T) {
	a := MustIndex(7)
	b := MustIndex(3)

	require.Equal(t, 10, a.Add(b).Int())
	require.Equal(t, 21, a.Mul(b).Int())
	require.Equal(t, 2, a.Div(b).Int())

	diff, ok := a.Sub(b)
	require.True(t, ok)
	require.Equal(t, 4, diff.Int())
}

func TestIndexSubUnderflow(t *testing.T) {
	_, ok := MustIndex(3).Sub(MustIndex(7))
	require.False(t, ok)

	diff, ok := MustIndex(3).Sub(MustIndex(3))
	require.True(t, ok)
	require.Equal(t, 0, diff.Int())
}

func TestIndexDivTruncates(t *testing.T) {
	require.Equal(t, 2, MustIndex(5).Div(MustIndex(2)).Int())
	require.Equal(t, 0, MustIndex(1).Div(MustIndex(2)).Int())
}
