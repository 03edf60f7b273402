package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Game session tests

func (s *StorageSuite) TestSaveAndGetGameSession() {
	session := &model.GameSession{
		ID:       "session-1",
		UserName: "Ada",
		Phase:    model.PhasePhishingQuestion,
		GameMode: model.ModePhishingOnly,
		Questions: []model.Question{
			{ID: 1, Prompt: "Bu e-posta güvenli mi?"},
		},
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveGameSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGameSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.UserName, retrieved.UserName)
	s.Equal(session.Phase, retrieved.Phase)
	s.Len(retrieved.Questions, 1)
}

func (s *StorageSuite) TestGetGameSessionNotFound() {
	_, err := s.storage.GetGameSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteGameSession() {
	session := &model.GameSession{ID: "session-1", UserName: "Ada"}
	_ = s.storage.SaveGameSession(s.ctx, session)

	err := s.storage.DeleteGameSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGameSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// User tests

func (s *StorageSuite) TestCreateUserAssignsSequentialIDs() {
	first, err := s.storage.CreateUser(s.ctx, model.Profile{FullName: "Ada Lovelace"})
	s.Require().NoError(err)
	second, err := s.storage.CreateUser(s.ctx, model.Profile{FullName: "Grace Hopper"})
	s.Require().NoError(err)

	s.Equal(model.UserID(1), first.ID)
	s.Equal(model.UserID(2), second.ID)
	s.False(first.CreatedAt.IsZero())
}

func (s *StorageSuite) TestGetUser() {
	created, _ := s.storage.CreateUser(s.ctx, model.Profile{FullName: "Ada Lovelace"})

	retrieved, err := s.storage.GetUser(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Ada Lovelace", retrieved.Profile.FullName)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 99)
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Game result tests

func (s *StorageSuite) TestSaveGameResultAssignsID() {
	result := &model.GameResult{UserID: 1, Score: 8, Percentage: 80}

	err := s.storage.SaveGameResult(s.ctx, result)
	s.Require().NoError(err)
	s.Equal(int64(1), result.ID)
}

func (s *StorageSuite) TestGetResultsForUser() {
	_ = s.storage.SaveGameResult(s.ctx, &model.GameResult{UserID: 1, Percentage: 70})
	_ = s.storage.SaveGameResult(s.ctx, &model.GameResult{UserID: 2, Percentage: 90})
	_ = s.storage.SaveGameResult(s.ctx, &model.GameResult{UserID: 1, Percentage: 50})

	results, err := s.storage.GetResultsForUser(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(results, 2)
}

func (s *StorageSuite) TestTopResultsOrderedAndLimited() {
	_ = s.storage.SaveGameResult(s.ctx, &model.GameResult{UserID: 1, Percentage: 70})
	_ = s.storage.SaveGameResult(s.ctx, &model.GameResult{UserID: 2, Percentage: 90})
	_ = s.storage.SaveGameResult(s.ctx, &model.GameResult{UserID: 3, Percentage: 50})

	top, err := s.storage.TopResults(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(90, top[0].Percentage)
	s.Equal(70, top[1].Percentage)
}

func (s *StorageSuite) TestTopResultsNoLimit() {
	_ = s.storage.SaveGameResult(s.ctx, &model.GameResult{UserID: 1, Percentage: 70})
	_ = s.storage.SaveGameResult(s.ctx, &model.GameResult{UserID: 2, Percentage: 90})

	top, err := s.storage.TopResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(top, 2)
}
