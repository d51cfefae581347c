package model

import "strings"

// Difficulty selects how dense the mine field is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a user-supplied tier name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	tier := Difficulty(strings.ToLower(s))
	switch tier {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return tier, nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// MinesFor returns the mine count for a tier on a size×size field.
// Division truncates. No density cap is applied here; the game factory
// guards against a board with no free cells.
func MinesFor(tier Difficulty, size Index) Index {
	switch tier {
	case DifficultyEasy:
		return size.Div(2)
	case DifficultyHard:
		return size.Mul(2)
	default:
		return size
	}
}
