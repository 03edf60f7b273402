package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/ekaraca/phishdrill/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions map[model.SessionID]*model.GameSession
	users    map[model.UserID]*model.User
	results  []*model.GameResult

	nextUserID   int64
	nextResultID int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionID]*model.GameSession),
		users:    make(map[model.UserID]*model.User),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game session operations

func (s *Storage) SaveGameSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetGameSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteGameSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, profile model.Profile) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	user := &model.User{
		ID:        model.UserID(s.nextUserID),
		Profile:   profile,
		CreatedAt: time.Now().UTC(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Game result operations

func (s *Storage) SaveGameResult(ctx context.Context, result *model.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextResultID++
	result.ID = s.nextResultID
	s.results = append(s.results, result)
	return nil
}

func (s *Storage) GetResultsForUser(ctx context.Context, userID model.UserID) ([]*model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.GameResult
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Storage) TopResults(ctx context.Context, limit int) ([]*model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.GameResult, len(s.results))
	copy(out, s.results)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
