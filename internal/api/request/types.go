package request

// ActionType identifies the kind of /submit action. The response shape varies
// by action type, which is why the controller merges each one separately.
type ActionType string

const (
	ActionSelectGameMode ActionType = "SELECT_GAME_MODE"
	ActionSubmitAnswer   ActionType = "SUBMIT_ANSWER"
	ActionSubmitPassword ActionType = "SUBMIT_PASSWORD"
	ActionNextQuestion   ActionType = "NEXT_QUESTION"
)

// StartRequest is the request body for starting a new game
type StartRequest struct {
	UserName  string `json:"userName"`
	SessionID string `json:"sessionId"`
}

// SubmitPayload carries the action-specific fields of a submit request.
// Exactly one of the fields is set, depending on the action type.
type SubmitPayload struct {
	GameMode string `json:"gameMode,omitempty"`
	Answer   string `json:"answer,omitempty"`
	Password string `json:"password,omitempty"`
}

// SubmitRequest is the request body for all in-game transitions
type SubmitRequest struct {
	SessionID  string        `json:"sessionId"`
	ActionType ActionType    `json:"actionType"`
	Payload    SubmitPayload `json:"payload"`
}

// RestartRequest is the request body for abandoning a session
type RestartRequest struct {
	SessionID string `json:"sessionId"`
}

// RegisterRequest is the request body for registering a participant profile
type RegisterRequest struct {
	FullName                 string `json:"fullName"`
	BirthDate                string `json:"birthDate"`
	EducationLevel           string `json:"educationLevel"`
	Profession               string `json:"profession"`
	HasCybersecurityTraining bool   `json:"hasCybersecurityTraining"`
}

// SaveResultRequest is the request body for persisting a finished game
type SaveResultRequest struct {
	UserID         int64  `json:"userId"`
	GameMode       string `json:"gameMode"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	CorrectAnswers int    `json:"correctAnswers"`
	Percentage     int    `json:"percentage"`
	Grade          string `json:"grade"`
}
