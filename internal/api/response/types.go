package response

import (
	"github.com/ekaraca/phishdrill/internal/model"
)

// GameResponse is the union-shaped payload returned by every game-service
// endpoint. Which fields are present depends on the action that produced it,
// so everything optional is a pointer: the client must be able to tell
// "absent" from "zero" and must never let an absent field clobber held state.
type GameResponse struct {
	GameState string `json:"gameState,omitempty"`
	GameMode  string `json:"gameMode,omitempty"`
	Message   string `json:"message,omitempty"`
	UserName  string `json:"userName,omitempty"`

	Score                *int            `json:"score,omitempty"`
	CurrentQuestionIndex *int            `json:"currentQuestionIndex,omitempty"`
	TotalQuestions       *int            `json:"totalQuestions,omitempty"`
	Progress             *model.Progress `json:"progress,omitempty"`

	CurrentQuestion *model.Question `json:"currentQuestion,omitempty"`
	// Question is a legacy alias for CurrentQuestion emitted by /start
	Question *model.Question `json:"question,omitempty"`

	// CurrentPasswordQuestion being explicitly null while the phase is
	// "password" signals the free-text password-entry step
	CurrentPasswordQuestion *model.PasswordQuestion `json:"currentPasswordQuestion,omitempty"`

	IsCorrect   *bool  `json:"isCorrect,omitempty"`
	Correct     *bool  `json:"correct,omitempty"`
	Explanation string `json:"explanation,omitempty"`

	Results          *ResultsPayload         `json:"results,omitempty"`
	PasswordAnalysis *model.PasswordAnalysis `json:"passwordAnalysis,omitempty"`
}

// ResultsPayload is the aggregated results sub-object
type ResultsPayload struct {
	TotalQuestions  int               `json:"totalQuestions"`
	CorrectAnswers  int               `json:"correctAnswers"`
	Percentage      int               `json:"percentage"`
	Grade           string            `json:"grade"`
	Feedback        string            `json:"feedback,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	PhishingStats   *model.TrackStats `json:"phishingStats,omitempty"`
	PasswordStats   *model.TrackStats `json:"passwordStats,omitempty"`
}

// Phase maps the reported game state onto the client phase enum. An empty or
// unknown state yields an empty Phase, which callers treat as "unchanged".
func (r *GameResponse) Phase() model.Phase {
	switch r.GameState {
	case string(model.PhaseWelcome),
		string(model.PhaseModeSelect),
		string(model.PhasePhishingQuestion),
		string(model.PhasePasswordQuestion),
		string(model.PhaseResults):
		return model.Phase(r.GameState)
	}
	return ""
}

// ActiveQuestion returns the phishing question, resolving the legacy
// question/currentQuestion aliasing
func (r *GameResponse) ActiveQuestion() *model.Question {
	if r.CurrentQuestion != nil {
		return r.CurrentQuestion
	}
	return r.Question
}

// AnswerCorrect resolves the isCorrect/correct aliasing of graded answers
func (r *GameResponse) AnswerCorrect() bool {
	if r.IsCorrect != nil {
		return *r.IsCorrect
	}
	return r.Correct != nil && *r.Correct
}

// Report merges the results and passwordAnalysis sub-objects into the single
// report the client holds. Returns nil when no results are present.
func (r *GameResponse) Report() *model.Report {
	if r.Results == nil {
		return nil
	}
	return &model.Report{
		TotalQuestions:   r.Results.TotalQuestions,
		CorrectAnswers:   r.Results.CorrectAnswers,
		Percentage:       r.Results.Percentage,
		Grade:            r.Results.Grade,
		Feedback:         r.Results.Feedback,
		Recommendations:  r.Results.Recommendations,
		PhishingStats:    r.Results.PhishingStats,
		PasswordStats:    r.Results.PasswordStats,
		PasswordAnalysis: r.PasswordAnalysis,
	}
}

// RegisterResponse is the user-service response to a registration
type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"userId,omitempty"`
	Message string `json:"message,omitempty"`
}

// SaveResultResponse is the user-service response to a result save
type SaveResultResponse struct {
	Success  bool   `json:"success"`
	ResultID int64  `json:"resultId,omitempty"`
	Message  string `json:"message,omitempty"`
}

// LeaderboardResponse wraps the public leaderboard
type LeaderboardResponse struct {
	Success     bool                     `json:"success"`
	Leaderboard []model.LeaderboardEntry `json:"leaderboard"`
	Message     string                   `json:"message,omitempty"`
}

// UserResultsResponse wraps one user's past game results
type UserResultsResponse struct {
	Success bool               `json:"success"`
	Results []model.GameResult `json:"results"`
	Message string             `json:"message,omitempty"`
}

// HealthResponse is the game-service health payload
type HealthResponse struct {
	Status string `json:"status"`
}
