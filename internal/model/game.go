package model

import (
	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
)

// MinFieldSize is the smallest playable field edge.
const MinFieldSize = 3

// Game is the minesweeper state machine. Values are immutable: every
// operation returns a new Game sharing the same Board, and the caller
// discards the old value. Callers embedding a Game in a concurrent
// context must serialize operations themselves; interleaving two reveals
// against the same value silently diverges instead of conflicting.
type Game struct {
	status   GameStatus
	board    *Board
	revealed map[Position]struct{}
	flagged  map[Position]struct{}
}

// NewGame builds a game with randomly placed mines for the tier. Fails
// when size is below MinFieldSize. Placement is a Fisher-Yates shuffle of
// all positions driven by the supplied source, so a fixed seed reproduces
// the same field.
func NewGame(size Index, tier Difficulty, rnd random.Random) (*Game, error) {
	if size < MinFieldSize {
		return nil, ErrFieldTooSmall
	}
	positions := allPositions(size)
	for i := len(positions) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
	mineCount := MinesFor(tier, size).Int()
	return NewGameWithMines(size, positions[:mineCount])
}

// NewGameWithMines builds a game over an explicit mine set. Fails when a
// mine lies outside the field or the mine set leaves no free cell. Unlike
// NewGame it accepts any field size, so deterministic small fields can be
// set up directly.
func NewGameWithMines(size Index, mines []Position) (*Game, error) {
	board, err := NewBoard(size, mines)
	if err != nil {
		return nil, err
	}
	if board.TotalMines() >= size.Mul(size).Int() {
		return nil, ErrTooManyMines
	}
	return &Game{
		status:   StatusPlaying,
		board:    board,
		revealed: make(map[Position]struct{}),
		flagged:  make(map[Position]struct{}),
	}, nil
}

// Status returns the game's phase.
func (g *Game) Status() GameStatus {
	return g.status
}

// Size returns the field's edge length.
func (g *Game) Size() Index {
	return g.board.Size()
}

// TotalMines returns the number of mines on the field.
func (g *Game) TotalMines() int {
	return g.board.TotalMines()
}

// FlaggedCount returns the number of flagged cells.
func (g *Game) FlaggedCount() int {
	return len(g.flagged)
}

// RevealedCount returns the number of revealed cells.
func (g *Game) RevealedCount() int {
	return len(g.revealed)
}

// CellView projects the player-visible content of pos. A flag beats the
// revealed content, which beats hidden. Absent only when pos is out of
// bounds; callers iterating the field should pre-filter with the board
// size.
func (g *Game) CellView(pos Position) (CellView, bool) {
	if !g.board.IsValidPosition(pos) {
		return CellView{}, false
	}
	if _, ok := g.flagged[pos]; ok {
		return FlaggedCell(), true
	}
	if _, ok := g.revealed[pos]; !ok {
		return HiddenCell(), true
	}
	if g.board.isMine(pos) {
		return MineCell(), true
	}
	count, _ := g.board.Cell(pos)
	if count == 0 {
		return EmptyCell(), true
	}
	return OpenCell(count), true
}

// Reveal opens pos. Rule violations come back as ignored results, never
// errors: already-revealed cells, flagged cells, out-of-bounds positions
// and finished games all leave the state untouched. Revealing a mine ends
// the game; revealing a zero-count cell flood-fills its region. The win
// check runs once per call, after every cell affected by the call has
// been revealed.
func (g *Game) Reveal(pos Position) RevealResult {
	if _, ok := g.revealed[pos]; ok {
		return ignored(ReasonAlreadyRevealed, g)
	}
	if !g.canReveal(pos) {
		return ignored(ReasonInvalidPosition, g)
	}
	if _, ok := g.flagged[pos]; ok {
		return ignored(ReasonFlagged, g)
	}

	count, ok := g.board.Cell(pos)
	if !ok {
		if g.board.isMine(pos) {
			return exploded(pos, g.loseGame())
		}
		// Unreachable with a board built by NewBoard; kept as a safety net.
		return ignored(ReasonInvalidPosition, g)
	}

	next := g.clone()
	next.revealed[pos] = struct{}{}

	var cell CellView
	if count == 0 {
		next.revealNeighbours(pos)
		cell = EmptyCell()
	} else {
		cell = OpenCell(count)
	}

	if next.isWon() {
		next.status = StatusWon
	}
	return opened(cell, next)
}

// ToggleFlag flags an unrevealed cell, or clears an existing flag.
// Returns the receiver unchanged when the position is out of bounds, the
// cell is already revealed, or the game is over. Flagging never triggers
// win detection; that happens only on reveal.
func (g *Game) ToggleFlag(pos Position) *Game {
	if !g.canToggleFlag(pos) {
		return g
	}
	next := g.clone()
	if _, ok := next.flagged[pos]; ok {
		delete(next.flagged, pos)
	} else {
		next.flagged[pos] = struct{}{}
	}
	return next
}

// canReveal requires a running game and an on-board position.
func (g *Game) canReveal(pos Position) bool {
	return g.status == StatusPlaying && g.board.IsValidPosition(pos)
}

// canToggleFlag requires a running game and an on-board, unrevealed cell.
func (g *Game) canToggleFlag(pos Position) bool {
	if g.status != StatusPlaying || !g.board.IsValidPosition(pos) {
		return false
	}
	_, revealed := g.revealed[pos]
	return !revealed
}

// isWon reports whether every non-mine cell has been revealed.
func (g *Game) isWon() bool {
	cells := g.board.Size().Mul(g.board.Size())
	target, ok := cells.Sub(MustIndex(g.board.TotalMines()))
	if !ok {
		return false
	}
	return len(g.revealed) == target.Int()
}

// revealNeighbours expands the zero-count region around pos breadth-first
// over an explicit queue. The revealed set doubles as the visited marker,
// which bounds the work at one visit per cell and guarantees termination.
// Numbered cells are revealed but seal the frontier; mines are skipped.
func (g *Game) revealNeighbours(pos Position) {
	queue := g.board.Neighbours(pos)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, ok := g.revealed[current]; ok {
			continue
		}
		count, ok := g.board.Cell(current)
		if !ok {
			continue
		}
		g.revealed[current] = struct{}{}
		if count == 0 {
			queue = append(queue, g.board.Neighbours(current)...)
		}
	}
}

// loseGame ends the game: every cell becomes revealed so the full field,
// mines included, can be displayed, and all flags are cleared.
func (g *Game) loseGame() *Game {
	next := g.clone()
	next.status = StatusLost
	for _, pos := range allPositions(g.board.Size()) {
		next.revealed[pos] = struct{}{}
	}
	next.flagged = make(map[Position]struct{})
	return next
}

// clone copies the mutable sets; the board is shared between values.
func (g *Game) clone() *Game {
	revealed := make(map[Position]struct{}, len(g.revealed))
	for pos := range g.revealed {
		revealed[pos] = struct{}{}
	}
	flagged := make(map[Position]struct{}, len(g.flagged))
	for pos := range g.flagged {
		flagged[pos] = struct{}{}
	}
	return &Game{
		status:   g.status,
		board:    g.board,
		revealed: revealed,
		flagged:  flagged,
	}
}

// allPositions enumerates the field row-major.
func allPositions(size Index) []Position {
	positions := make([]Position, 0, size.Mul(size).Int())
	for row := Index(0); row < size; row++ {
		for col := Index(0); col < size; col++ {
			positions = append(positions, Position{Row: row, Col: col})
		}
	}
	return positions
}
