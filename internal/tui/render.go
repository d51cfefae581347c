package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mcoot/minesweeper-go/internal/model"
)

// redraw re-renders the whole field from the game value. The core gives
// no partial-update notification, so each frame is rebuilt from scratch.
func (a *App) redraw(game *model.Game) {
	size := game.Size().Int()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := model.Position{Row: model.MustIndex(row), Col: model.MustIndex(col)}
			view, ok := game.CellView(pos)
			if !ok {
				continue
			}
			a.table.SetCell(row, col, renderCell(view))
		}
	}
	a.status.SetText(a.statusLine(game))
}

func renderCell(view model.CellView) *tview.TableCell {
	var text string
	var color tcell.Color

	switch view.Kind {
	case model.CellHidden:
		text, color = "·", tcell.ColorGray
	case model.CellFlagged:
		text, color = "⚑", tcell.ColorYellow
	case model.CellMine:
		text, color = "✶", tcell.ColorRed
	case model.CellEmpty:
		text, color = " ", tcell.ColorWhite
	case model.CellOpen:
		text, color = strconv.Itoa(view.Count), numberColor(view.Count)
	default:
		text, color = "?", tcell.ColorWhite
	}

	return tview.NewTableCell(text).
		SetTextColor(color).
		SetAlign(tview.AlignCenter)
}

func numberColor(count int) tcell.Color {
	switch count {
	case 1:
		return tcell.ColorBlue
	case 2:
		return tcell.ColorGreen
	case 3:
		return tcell.ColorRed
	default:
		return tcell.ColorPurple
	}
}

func (a *App) statusLine(game *model.Game) string {
	elapsed := a.clock.Now().Sub(a.startedAt).Truncate(time.Second)

	switch game.Status() {
	case model.StatusWon:
		return fmt.Sprintf("cleared in %s — n new game, q quit", elapsed)
	case model.StatusLost:
		return "boom — n new game, q quit"
	default:
		return fmt.Sprintf("mines %d | flags %d | %s | arrows move, enter/space reveal, f flag",
			game.TotalMines(), game.FlaggedCount(), elapsed)
	}
}
