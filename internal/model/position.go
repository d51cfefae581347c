package model

// Position identifies a cell on the field. It carries no bounds invariant
// of its own; validity is relative to a Board's size.
type Position struct {
	Row Index
	Col Index
}
