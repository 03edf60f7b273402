package model

import "time"

// AnswerKind says which track a recorded answer belongs to
type AnswerKind string

const (
	AnswerPhishing AnswerKind = "phishing"
	AnswerPassword AnswerKind = "password"
)

// AnswerRecord is one graded answer kept for end-of-game statistics
type AnswerRecord struct {
	Kind       AnswerKind `json:"kind"`
	QuestionID int        `json:"questionId"`
	Correct    bool       `json:"correct"`
}

// GameSession is the server-side view of a running game. The question plan is
// fixed when the mode is selected; Index walks through it slot by slot. For
// tracks that include the free-text password exercise the plan has one more
// slot than there are questions.
type GameSession struct {
	ID       SessionID `json:"id"`
	UserName string    `json:"userName"`
	Phase    Phase     `json:"phase"`
	GameMode GameMode  `json:"gameMode"`

	Questions         []Question         `json:"questions"`
	PasswordQuestions []PasswordQuestion `json:"passwordQuestions"`

	Index   int            `json:"index"`
	Score   int            `json:"score"`
	Answers []AnswerRecord `json:"answers"`

	PasswordAnalysis *PasswordAnalysis `json:"passwordAnalysis,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// PlanLength is the number of slots in the active question plan, including
// the trailing free-text slot when the password track is in play
func (g *GameSession) PlanLength() int {
	n := len(g.Questions) + len(g.PasswordQuestions)
	if len(g.PasswordQuestions) > 0 {
		n++
	}
	return n
}

// RecordAnswer appends a graded answer and bumps the score when correct
func (g *GameSession) RecordAnswer(kind AnswerKind, questionID int, correct bool) {
	g.Answers = append(g.Answers, AnswerRecord{Kind: kind, QuestionID: questionID, Correct: correct})
	if correct {
		g.Score++
	}
}

// CorrectCount counts correct answers, optionally filtered by kind
// (empty kind counts everything)
func (g *GameSession) CorrectCount(kind AnswerKind) int {
	n := 0
	for _, a := range g.Answers {
		if kind != "" && a.Kind != kind {
			continue
		}
		if a.Correct {
			n++
		}
	}
	return n
}

// AnswerCount counts recorded answers, optionally filtered by kind
func (g *GameSession) AnswerCount(kind AnswerKind) int {
	if kind == "" {
		return len(g.Answers)
	}
	n := 0
	for _, a := range g.Answers {
		if a.Kind == kind {
			n++
		}
	}
	return n
}
