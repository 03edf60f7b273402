package model

// Urgency levels used in phishing emails
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Email is the message a phishing question asks the player to judge
type Email struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HasLink bool   `json:"hasLink"`
	Urgency string `json:"urgency"`
}

// Question is a multiple-choice phishing question. CorrectAnswer is only
// populated server-side; responses sent to clients omit it.
type Question struct {
	ID            int      `json:"id"`
	Email         Email    `json:"email"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation"`
}

// PasswordQuestion is a multiple-choice password-security question
type PasswordQuestion struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation"`
}
