package model

import "time"

// UserID identifies a registered participant
type UserID int64

// Profile is the registration form filled in before the game proper starts
type Profile struct {
	FullName                 string `json:"fullName"`
	BirthDate                string `json:"birthDate"`
	EducationLevel           string `json:"educationLevel"`
	Profession               string `json:"profession"`
	HasCybersecurityTraining bool   `json:"hasCybersecurityTraining"`
}

// User is a registered participant
type User struct {
	ID        UserID    `json:"id"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"createdAt"`
}

// GameResult is one persisted game outcome for a user
type GameResult struct {
	ID             int64     `json:"id"`
	UserID         UserID    `json:"userId"`
	GameMode       GameMode  `json:"gameMode"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	CorrectAnswers int       `json:"correctAnswers"`
	Percentage     int       `json:"percentage"`
	Grade          string    `json:"grade"`
	PlayedAt       time.Time `json:"playedAt"`
}

// LeaderboardEntry is one row of the public leaderboard
type LeaderboardEntry struct {
	Rank                     int      `json:"rank"`
	FullName                 string   `json:"fullName"`
	Score                    int      `json:"score"`
	Percentage               int      `json:"percentage"`
	Grade                    string   `json:"grade"`
	GameMode                 GameMode `json:"gameMode"`
	PlayedAt                 string   `json:"playedAt"`
	HasCybersecurityTraining bool     `json:"hasCybersecurityTraining"`
}
