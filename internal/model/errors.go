package model

import "errors"

// Common errors used across the application.
// In-game rule violations (revealing a flagged or already-revealed cell,
// flagging a revealed cell, acting after game end) are never errors: they
// come back as ignored results or unchanged game values.
var (
	// Construction failures
	ErrFieldTooSmall     = errors.New("field size is below the minimum")
	ErrMineOutOfBounds   = errors.New("mine position is outside the field")
	ErrTooManyMines      = errors.New("mine count must leave at least one free cell")
	ErrInvalidDifficulty = errors.New("unknown difficulty tier")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
