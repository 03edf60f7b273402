package model

// SessionID is the opaque client-generated token correlating requests to the
// server-side session.
type SessionID string

// Phase represents the current screen/step of the game
type Phase string

const (
	PhaseWelcome          Phase = "welcome"
	PhaseModeSelect       Phase = "menu"
	PhasePhishingQuestion Phase = "phishing"
	PhasePasswordQuestion Phase = "password"
	PhaseResults          Phase = "results"
)

// GameMode selects which question track(s) a session traverses
type GameMode string

const (
	ModePhishingOnly GameMode = "PHISHING_ONLY"
	ModePasswordOnly GameMode = "PASSWORD_ONLY"
	ModeMixed        GameMode = "MIXED"
)

// ValidGameMode reports whether m is one of the three selectable modes
func ValidGameMode(m GameMode) bool {
	switch m {
	case ModePhishingOnly, ModePasswordOnly, ModeMixed:
		return true
	}
	return false
}

// Progress tracks position within the current question track
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Feedback is the per-answer grading shown between an answer submission and
// the next advance
type Feedback struct {
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

// PasswordAnalysis is the server's scoring of the free-text password
type PasswordAnalysis struct {
	Strength string `json:"strength"`
	Score    int    `json:"score"`
	Length   int    `json:"length,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

// TrackStats holds per-track results in mixed mode
type TrackStats struct {
	Correct    int `json:"correct"`
	Incorrect  int `json:"incorrect"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Report is the final aggregated results payload shown at the results phase
type Report struct {
	TotalQuestions   int               `json:"totalQuestions"`
	CorrectAnswers   int               `json:"correctAnswers"`
	Percentage       int               `json:"percentage"`
	Grade            string            `json:"grade"`
	Feedback         string            `json:"feedback,omitempty"`
	Recommendations  []string          `json:"recommendations,omitempty"`
	PhishingStats    *TrackStats       `json:"phishingStats,omitempty"`
	PasswordStats    *TrackStats       `json:"passwordStats,omitempty"`
	PasswordAnalysis *PasswordAnalysis `json:"passwordAnalysis,omitempty"`
}

// Session is the root entity of a single game run. It is owned by the session
// controller and mutated only by its transition operations.
type Session struct {
	ID       SessionID
	Phase    Phase
	UserName string
	UserID   *int64
	GameMode GameMode // empty until selected

	Score    int
	Progress Progress

	CurrentQuestion         *Question
	CurrentPasswordQuestion *PasswordQuestion
	Feedback                *Feedback
	Report                  *Report

	// Transient UI flags, not part of the game-logic invariants
	Loading bool
	Error   string
}

// AwaitingPasswordEntry reports whether the current step is the free-text
// password-entry sub-phase. The sub-phase has no enum value of its own: it is
// derived from data shape, so callers must recompute it on every render.
// The server reserves exactly the last progress slot for password entry;
// progress and the question field can change independently across
// transitions, which is why this is a method and never stored.
func (s *Session) AwaitingPasswordEntry() bool {
	return s.CurrentPasswordQuestion == nil &&
		s.Progress.Total > 0 &&
		s.Progress.Current == s.Progress.Total-1
}

// NewSession returns a session in its initial welcome state
func NewSession(id SessionID) *Session {
	return &Session{
		ID:    id,
		Phase: PhaseWelcome,
	}
}

// Reset returns the session to its initial state under a fresh identity.
// Everything except the identity is zeroed.
func (s *Session) Reset(id SessionID) {
	*s = Session{
		ID:    id,
		Phase: PhaseWelcome,
	}
}
