package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/services/session"
	"github.com/mcoot/minesweeper-go/internal/storage"
	"github.com/mcoot/minesweeper-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Sessions *session.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Seed fixes mine placement when non-zero; zero selects the
	// crypto-backed source
	Seed int64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	} else {
		rnd = random.New()
	}

	store := memory.New()
	clk := clock.New()

	return &App{
		Storage:  store,
		Clock:    clk,
		Random:   rnd,
		Sessions: session.New(store, clk, rnd, logger),
	}
}
