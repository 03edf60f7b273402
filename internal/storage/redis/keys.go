package redis

import (
	"fmt"

	"github.com/ekaraca/phishdrill/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "phishdrill"

// Key generation functions for each entity type

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, id)
}

// userCounterKey returns the Redis key for the user id counter
func userCounterKey() string {
	return fmt.Sprintf("%s:ctr:user", keyPrefix)
}

// resultKey returns the Redis key for a GameResult
func resultKey(id int64) string {
	return fmt.Sprintf("%s:result:%d", keyPrefix, id)
}

// resultCounterKey returns the Redis key for the result id counter
func resultCounterKey() string {
	return fmt.Sprintf("%s:ctr:result", keyPrefix)
}

// resultsForUserIndexKey returns the Redis key for the SET of result keys
// belonging to a user
func resultsForUserIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:results_for_user:%d", keyPrefix, userID)
}

// leaderboardKey returns the Redis key for the leaderboard sorted set
// (score = percentage, member = result key)
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}
