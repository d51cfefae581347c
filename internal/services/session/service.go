package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Service owns the single-writer discipline around the immutable game
// values: mutating calls are serialized here, and the registry always
// holds the latest Game for a session. No game rules live in this layer.
type Service struct {
	mu      sync.Mutex
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new session service
func New(storage storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// Create starts a new session with a freshly mined field
func (s *Service) Create(ctx context.Context, size model.Index, tier model.Difficulty) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := model.NewGame(size, tier, s.random)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &model.Session{
		ID:         model.SessionID(s.random.String(12, sessionIDAlphabet)),
		Game:       game,
		Difficulty: tier,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		s.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int("size", size.Int()),
		slog.String("difficulty", string(tier)),
		slog.Int("mines", game.TotalMines()),
	)

	return session, nil
}

// Get retrieves a session by ID
func (s *Service) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return s.storage.GetSession(ctx, id)
}

// Reveal applies one reveal to the session's game and stores the
// resulting value. The result carries the new game; ignored reveals leave
// the stored state untouched apart from the timestamp.
func (s *Service) Reveal(ctx context.Context, id model.SessionID, pos model.Position) (model.RevealResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return model.RevealResult{}, err
	}

	result := session.Game.Reveal(pos)
	session.Game = result.Game
	session.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return model.RevealResult{}, err
	}

	switch result.Outcome {
	case model.RevealExploded:
		s.logger.Info("game lost",
			slog.String("session_id", string(id)),
			slog.Int("row", result.MinePosition.Row.Int()),
			slog.Int("col", result.MinePosition.Col.Int()),
		)
	case model.RevealOpened:
		if result.Game.Status() == model.StatusWon {
			s.logger.Info("game won",
				slog.String("session_id", string(id)),
				slog.Int("revealed", result.Game.RevealedCount()),
			)
		}
	case model.RevealIgnored:
		// Nothing worth logging; ignored reveals are routine input noise.
	}

	return result, nil
}

// ToggleFlag flags or unflags a cell and stores the resulting game
func (s *Service) ToggleFlag(ctx context.Context, id model.SessionID, pos model.Position) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Game = session.Game.ToggleFlag(pos)
	session.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes a session from the registry
func (s *Service) Delete(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.DeleteSession(ctx, id)
}

// Interface for dependency injection
type ServiceInterface interface {
	Create(ctx context.Context, size model.Index, tier model.Difficulty) (*model.Session, error)
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)
	Reveal(ctx context.Context, id model.SessionID, pos model.Position) (model.RevealResult, error)
	ToggleFlag(ctx context.Context, id model.SessionID, pos model.Position) (*model.Session, error)
	Delete(ctx context.Context, id model.SessionID) error
}

var _ ServiceInterface = (*Service)(nil)
