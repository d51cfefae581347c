package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected Difficulty
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"EASY", DifficultyEasy},
		{"Normal", DifficultyNormal},
	}

	for _, tc := range tests {
		tier, err := ParseDifficulty(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		require.Equal(t, tc.expected, tier)
	}

	_, err := ParseDifficulty("nightmare")
	require.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestMinesFor(t *testing.T) {
	size := MustIndex(10)

	require.Equal(t, 5, MinesFor(DifficultyEasy, size).Int())
	require.Equal(t, 10, MinesFor(DifficultyNormal, size).Int())
	require.Equal(t, 20, MinesFor(DifficultyHard, size).Int())

	// Unknown tiers fall back to the normal density.
	require.Equal(t, 10, MinesFor(Difficulty("bogus"), size).Int())
}
