package model

// CellKind discriminates the player-visible content of a cell.
type CellKind string

const (
	CellHidden  CellKind = "hidden"
	CellFlagged CellKind = "flagged"
	CellMine    CellKind = "mine"
	CellEmpty   CellKind = "empty" // open with zero adjacent mines
	CellOpen    CellKind = "open"  // open with 1-8 adjacent mines
)

// CellView is what the player may see at one position.
// Count is only meaningful for CellOpen.
type CellView struct {
	Kind  CellKind
	Count int
}

// HiddenCell returns the view of an untouched cell.
func HiddenCell() CellView {
	return CellView{Kind: CellHidden}
}

// FlaggedCell returns the view of a flagged cell.
func FlaggedCell() CellView {
	return CellView{Kind: CellFlagged}
}

// MineCell returns the view of an exposed mine.
func MineCell() CellView {
	return CellView{Kind: CellMine}
}

// EmptyCell returns the view of an open cell with no mined neighbours.
func EmptyCell() CellView {
	return CellView{Kind: CellEmpty}
}

// OpenCell returns the view of an open cell with count mined neighbours.
func OpenCell(count int) CellView {
	return CellView{Kind: CellOpen, Count: count}
}
