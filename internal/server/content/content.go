// Package content carries the built-in question banks. Questions are compiled
// into the binary so the practice server runs with no external data files.
package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/ekaraca/phishdrill/internal/model"
)

//go:embed questions.json password_questions.json
var files embed.FS

// Banks holds the full question pools the game engine draws from
type Banks struct {
	Phishing []model.Question
	Password []model.PasswordQuestion
}

// Load parses the embedded question banks
func Load() (*Banks, error) {
	var banks Banks

	data, err := files.ReadFile("questions.json")
	if err != nil {
		return nil, fmt.Errorf("reading phishing questions: %w", err)
	}
	if err := json.Unmarshal(data, &banks.Phishing); err != nil {
		return nil, fmt.Errorf("parsing phishing questions: %w", err)
	}

	data, err = files.ReadFile("password_questions.json")
	if err != nil {
		return nil, fmt.Errorf("reading password questions: %w", err)
	}
	if err := json.Unmarshal(data, &banks.Password); err != nil {
		return nil, fmt.Errorf("parsing password questions: %w", err)
	}

	if len(banks.Phishing) == 0 || len(banks.Password) == 0 {
		return nil, fmt.Errorf("question banks must not be empty")
	}
	return &banks, nil
}
