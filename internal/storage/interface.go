package storage

import (
	"context"

	"github.com/ekaraca/phishdrill/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game session operations
	SaveGameSession(ctx context.Context, session *model.GameSession) error
	GetGameSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)
	DeleteGameSession(ctx context.Context, id model.SessionID) error

	// User operations
	CreateUser(ctx context.Context, profile model.Profile) (*model.User, error)
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)

	// Game result operations
	SaveGameResult(ctx context.Context, result *model.GameResult) error
	GetResultsForUser(ctx context.Context, userID model.UserID) ([]*model.GameResult, error)
	TopResults(ctx context.Context, limit int) ([]*model.GameResult, error)
}
