package model

// GameStatus represents the phase of a game. Won and Lost are terminal:
// no operation moves a game out of them.
type GameStatus string

const (
	StatusPlaying GameStatus = "playing"
	StatusWon     GameStatus = "won"
	StatusLost    GameStatus = "lost"
)

// RevealOutcome discriminates the result of a reveal call.
type RevealOutcome string

const (
	RevealOpened   RevealOutcome = "opened"
	RevealExploded RevealOutcome = "exploded"
	RevealIgnored  RevealOutcome = "ignored"
)

// IgnoredReason says why a reveal was a no-op.
type IgnoredReason string

const (
	ReasonAlreadyRevealed IgnoredReason = "already_revealed"
	ReasonFlagged         IgnoredReason = "flagged"
	ReasonInvalidPosition IgnoredReason = "invalid_position"
)

// RevealResult is the outcome of one reveal call. Game always holds the
// resulting state (unchanged for ignored reveals). Reason is set only for
// RevealIgnored, Cell only for RevealOpened, MinePosition only for
// RevealExploded; consumers switch on Outcome.
type RevealResult struct {
	Outcome      RevealOutcome
	Reason       IgnoredReason
	Cell         CellView
	MinePosition Position
	Game         *Game
}

func ignored(reason IgnoredReason, game *Game) RevealResult {
	return RevealResult{Outcome: RevealIgnored, Reason: reason, Game: game}
}

func opened(cell CellView, game *Game) RevealResult {
	return RevealResult{Outcome: RevealOpened, Cell: cell, Game: game}
}

func exploded(pos Position, game *Game) RevealResult {
	return RevealResult{Outcome: RevealExploded, MinePosition: pos, Game: game}
}
