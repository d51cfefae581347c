package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper-go/internal/model"
)

type MemoryStorageSuite struct {
	suite.Suite

	storage *Storage
	ctx     context.Context
}

func TestMemoryStorageSuite(t *testing.T) {
	suite.Run(t, new(MemoryStorageSuite))
}

func (s *MemoryStorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *MemoryStorageSuite) newSession(id model.SessionID) *model.Session {
	game, err := model.NewGameWithMines(model.MustIndex(3), nil)
	s.Require().NoError(err)
	return &model.Session{
		ID:         id,
		Game:       game,
		Difficulty: model.DifficultyNormal,
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (s *MemoryStorageSuite) TestSaveAndGetSession() {
	session := s.newSession("AAAA11112222")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	got, err := s.storage.GetSession(s.ctx, "AAAA11112222")
	s.Require().NoError(err)
	s.Equal(session, got)
}

func (s *MemoryStorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "MISSING00000")
	s.Require().ErrorIs(err, model.ErrSessionNotFound)
}

func (s *MemoryStorageSuite) TestSaveSessionOverwrites() {
	session := s.newSession("AAAA11112222")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	updated := s.newSession("AAAA11112222")
	updated.UpdatedAt = updated.UpdatedAt.Add(time.Minute)
	s.Require().NoError(s.storage.SaveSession(s.ctx, updated))

	got, err := s.storage.GetSession(s.ctx, "AAAA11112222")
	s.Require().NoError(err)
	s.Equal(updated.UpdatedAt, got.UpdatedAt)
}

func (s *MemoryStorageSuite) TestDeleteSession() {
	session := s.newSession("AAAA11112222")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	err := s.storage.DeleteSession(s.ctx, "AAAA11112222")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "AAAA11112222")
	s.Require().ErrorIs(err, model.ErrSessionNotFound)

	// Deleting an absent session is not an error.
	s.Require().NoError(s.storage.DeleteSession(s.ctx, "AAAA11112222"))
}

func (s *MemoryStorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "AAAA11112222")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("AAAA11112222")))

	exists, err = s.storage.SessionExists(s.ctx, "AAAA11112222")
	s.Require().NoError(err)
	s.True(exists)
}
