package storage

import (
	"context"

	"github.com/mcoot/minesweeper-go/internal/model"
)

// Storage is the registry holding the authoritative session state.
// Implementations are in-memory only: sessions live for one run of the
// program and are never persisted.
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)
}
