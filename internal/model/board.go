package model

// neighbourOffsets enumerates the Moore neighbourhood in row-major order.
// The order is fixed so flood fill visits cells reproducibly.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is the hidden mine field for one game. It is immutable and lives
// for the duration of the game. Raw mine membership never leaves this
// package: callers only see validated positions and adjacency counts.
type Board struct {
	size  Index
	mines map[Position]struct{}
}

// NewBoard creates a size×size board holding the given mine set.
// Fails if any mine lies outside the board.
func NewBoard(size Index, mines []Position) (*Board, error) {
	mineSet := make(map[Position]struct{}, len(mines))
	for _, pos := range mines {
		if pos.Row >= size || pos.Col >= size {
			return nil, ErrMineOutOfBounds
		}
		mineSet[pos] = struct{}{}
	}
	return &Board{size: size, mines: mineSet}, nil
}

// Size returns the board's edge length.
func (b *Board) Size() Index {
	return b.size
}

// TotalMines returns the number of mines on the board.
func (b *Board) TotalMines() int {
	return len(b.mines)
}

// IsValidPosition reports whether pos lies on the board.
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row < b.size && pos.Col < b.size
}

// Neighbours returns the valid Moore neighbourhood of pos in a fixed
// row-major order. Empty if pos itself is invalid.
func (b *Board) Neighbours(pos Position) []Position {
	if !b.IsValidPosition(pos) {
		return nil
	}
	neighbours := make([]Position, 0, len(neighbourOffsets))
	for _, offset := range neighbourOffsets {
		row := pos.Row.Int() + offset[0]
		col := pos.Col.Int() + offset[1]
		if row < 0 || col < 0 {
			continue
		}
		neighbour := Position{Row: MustIndex(row), Col: MustIndex(col)}
		if b.IsValidPosition(neighbour) {
			neighbours = append(neighbours, neighbour)
		}
	}
	return neighbours
}

// Cell returns the count of mined neighbours for pos, absent when pos is
// out of bounds or is itself a mine. The count is recomputed on every
// call; the neighbourhood is at most 8 cells.
func (b *Board) Cell(pos Position) (int, bool) {
	if !b.IsValidPosition(pos) || b.isMine(pos) {
		return 0, false
	}
	count := 0
	for _, neighbour := range b.Neighbours(pos) {
		if b.isMine(neighbour) {
			count++
		}
	}
	return count, true
}

// isMine stays unexported: only the state machine in this package may
// distinguish "absent because mine" from "absent because out of bounds".
func (b *Board) isMine(pos Position) bool {
	_, ok := b.mines[pos]
	return ok
}
