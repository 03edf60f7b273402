package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/ekaraca/phishdrill/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game session operations

func (s *Storage) SaveGameSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetGameSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteGameSession(ctx context.Context, id model.SessionID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, profile model.Profile) (*model.User, error) {
	id, err := s.client.Incr(ctx, userCounterKey()).Result()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:        model.UserID(id),
		Profile:   profile,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	if err := s.client.Set(ctx, userKey(user.ID), data, 0).Err(); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Game result operations

func (s *Storage) SaveGameResult(ctx context.Context, result *model.GameResult) error {
	id, err := s.client.Incr(ctx, resultCounterKey()).Result()
	if err != nil {
		return err
	}
	result.ID = id

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	key := resultKey(result.ID)

	// Pipeline the result, the per-user index, and the leaderboard entry
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, resultsForUserIndexKey(result.UserID), key)
	pipe.ZAdd(ctx, leaderboardKey(), redis.Z{
		Score:  float64(result.Percentage),
		Member: key,
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetResultsForUser(ctx context.Context, userID model.UserID) ([]*model.GameResult, error) {
	keys, err := s.client.SMembers(ctx, resultsForUserIndexKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	results, err := s.fetchResults(ctx, keys)
	if err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

func (s *Storage) TopResults(ctx context.Context, limit int) ([]*model.GameResult, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	keys, err := s.client.ZRevRange(ctx, leaderboardKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	return s.fetchResults(ctx, keys)
}

func (s *Storage) fetchResults(ctx context.Context, keys []string) ([]*model.GameResult, error) {
	if len(keys) == 0 {
		return []*model.GameResult{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	results := make([]*model.GameResult, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var result model.GameResult
		if err := json.Unmarshal([]byte(val.(string)), &result); err != nil {
			continue // Skip invalid data
		}
		results = append(results, &result)
	}
	return results, nil
}
