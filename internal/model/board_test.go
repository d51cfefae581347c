package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pos(row, col int) Position {
	return Position{Row: MustIndex(row), Col: MustIndex(col)}
}

func TestNewBoardRejectsOutOfBoundsMine(t *testing.T) {
	_, err := NewBoard(MustIndex(3), []Position{pos(0, 3)})
	require.ErrorIs(t, err, ErrMineOutOfBounds)

	_, err = NewBoard(MustIndex(3), []Position{pos(3, 0)})
	require.ErrorIs(t, err, ErrMineOutOfBounds)
}

func TestBoardIsValidPosition(t *testing.T) {
	board, err := NewBoard(MustIndex(3), nil)
	require.NoError(t, err)

	require.True(t, board.IsValidPosition(pos(0, 0)))
	require.True(t, board.IsValidPosition(pos(2, 2)))
	require.False(t, board.IsValidPosition(pos(3, 0)))
	require.False(t, board.IsValidPosition(pos(0, 3)))
}

func TestBoardNeighbours(t *testing.T) {
	board, err := NewBoard(MustIndex(3), nil)
	require.NoError(t, err)

	// Corner cells have three neighbours, all inside the field.
	corner := board.Neighbours(pos(0, 0))
	require.ElementsMatch(t, []Position{pos(0, 1), pos(1, 0), pos(1, 1)}, corner)

	// Centre cells have all eight.
	centre := board.Neighbours(pos(1, 1))
	require.Len(t, centre, 8)

	// Enumeration order is fixed row-major over the offsets.
	require.Equal(t, []Position{
		pos(0, 0), pos(0, 1), pos(0, 2),
		pos(1, 0), pos(1, 2),
		pos(2, 0), pos(2, 1), pos(2, 2),
	}, centre)

	require.Empty(t, board.Neighbours(pos(3, 3)))
}

func TestBoardCellCounts(t *testing.T) {
	board, err := NewBoard(MustIndex(3), []Position{pos(0, 0), pos(2, 2)})
	require.NoError(t, err)

	count, ok := board.Cell(pos(1, 1))
	require.True(t, ok)
	require.Equal(t, 2, count)

	count, ok = board.Cell(pos(0, 2))
	require.True(t, ok)
	require.Equal(t, 0, count)

	count, ok = board.Cell(pos(1, 0))
	require.True(t, ok)
	require.Equal(t, 1, count)
}

func TestBoardCellAbsentForMinesAndOutOfBounds(t *testing.T) {
	board, err := NewBoard(MustIndex(3), []Position{pos(1, 1)})
	require.NoError(t, err)

	_, ok := board.Cell(pos(1, 1))
	require.False(t, ok)

	_, ok = board.Cell(pos(5, 5))
	require.False(t, ok)
}

func TestBoardTotalMinesDeduplicates(t *testing.T) {
	board, err := NewBoard(MustIndex(3), []Position{pos(0, 0), pos(0, 0), pos(1, 1)})
	require.NoError(t, err)
	require.Equal(t, 2, board.TotalMines())
}
