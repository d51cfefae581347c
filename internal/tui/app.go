package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/session"
)

// App drives the terminal presentation. It carries no game rules: every
// frame is re-rendered wholesale from CellView over all positions plus
// the scalar counters, and all input is forwarded to the session service.
type App struct {
	app    *tview.Application
	table  *tview.Table
	status *tview.TextView

	sessions *session.Service
	clock    clock.Clock
	logger   *slog.Logger

	size      model.Index
	tier      model.Difficulty
	sessionID model.SessionID
	startedAt time.Time
}

// New creates the TUI over an existing session service
func New(sessions *session.Service, clk clock.Clock, logger *slog.Logger, size model.Index, tier model.Difficulty) *App {
	table := tview.NewTable()
	table.SetBorder(true)
	table.SetTitle(" minesweep ")

	status := tview.NewTextView()
	status.SetDynamicColors(true)

	return &App{
		app:      tview.NewApplication(),
		table:    table,
		status:   status,
		sessions: sessions,
		clock:    clk,
		logger:   logger,
		size:     size,
		tier:     tier,
	}
}

// Run starts a session and blocks until the player quits
func (a *App) Run() error {
	if err := a.newGame(); err != nil {
		return err
	}

	a.table.SetSelectable(true, true)
	a.table.Select(0, 0)
	a.table.SetInputCapture(a.handleKey)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.table, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	return a.app.SetRoot(layout, true).Run()
}

// newGame abandons the current session, if any, and starts a fresh one
func (a *App) newGame() error {
	ctx := context.Background()

	if a.sessionID != "" {
		_ = a.sessions.Delete(ctx, a.sessionID)
	}

	sess, err := a.sessions.Create(ctx, a.size, a.tier)
	if err != nil {
		return err
	}

	a.sessionID = sess.ID
	a.startedAt = sess.CreatedAt
	a.redraw(sess.Game)
	return nil
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		a.reveal()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case ' ':
			a.reveal()
			return nil
		case 'f':
			a.toggleFlag()
			return nil
		case 'n':
			if err := a.newGame(); err != nil {
				a.logger.Error("failed to start new game", slog.String("error", err.Error()))
			}
			return nil
		case 'q':
			a.app.Stop()
			return nil
		}
	}
	// Arrow/vi movement falls through to the table's own selection handling.
	return event
}

// selected returns the cursor as a field position. Table coordinates are
// never negative, so the unchecked conversion holds.
func (a *App) selected() model.Position {
	row, col := a.table.GetSelection()
	return model.Position{Row: model.MustIndex(row), Col: model.MustIndex(col)}
}

func (a *App) reveal() {
	result, err := a.sessions.Reveal(context.Background(), a.sessionID, a.selected())
	if err != nil {
		a.logger.Error("reveal failed", slog.String("error", err.Error()))
		return
	}
	a.redraw(result.Game)
}

func (a *App) toggleFlag() {
	sess, err := a.sessions.ToggleFlag(context.Background(), a.sessionID, a.selected())
	if err != nil {
		a.logger.Error("flag toggle failed", slog.String("error", err.Error()))
		return
	}
	a.redraw(sess.Game)
}
