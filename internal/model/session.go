package model

import "time"

// SessionID uniquely identifies one playthrough.
type SessionID string

// Session wraps the authoritative Game value for one playthrough. The
// session service replaces Game wholesale after each mutating call.
type Session struct {
	ID         SessionID
	Game       *Game
	Difficulty Difficulty
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
