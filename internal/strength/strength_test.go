package strength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		score    int
		strength string
	}{
		{
			name:     "empty",
			password: "",
			score:    0,
			strength: VeryWeak,
		},
		{
			name:     "short lowercase only",
			password: "abc",
			score:    1,
			strength: VeryWeak,
		},
		{
			name:     "common password floors at zero",
			password: "password",
			score:    1, // +2 length, +1 lower, -2 common
			strength: VeryWeak,
		},
		{
			name:     "digits only common",
			password: "123456",
			score:    0, // +1 digit, -2 common, floored
			strength: VeryWeak,
		},
		{
			name:     "weak mixed case",
			password: "Abcdef",
			score:    2,
			strength: Weak,
		},
		{
			name:     "medium with digits and length",
			password: "Abcdef12",
			score:    5,
			strength: Medium,
		},
		{
			name:     "strong with everything",
			password: "Abcdef1!",
			score:    7,
			strength: Strong,
		},
		{
			name:     "long but embeds qwerty",
			password: "Qwerty12!",
			score:    5, // 7 - 2 for the common substring
			strength: Medium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Evaluate(tt.password)
			assert.Equal(t, tt.score, a.Score)
			assert.Equal(t, tt.strength, a.Strength)
		})
	}
}

func TestEvaluateCountsRunesNotBytes(t *testing.T) {
	a := Evaluate("Şifreler1!")
	assert.Equal(t, 10, a.Length)
	assert.Equal(t, Strong, a.Strength)
}

func TestFeedbackListsEveryCheck(t *testing.T) {
	a := Evaluate("Abcdef1!")
	assert.Len(t, a.Checks, 6)

	fb := a.Feedback()
	assert.Equal(t, 6, strings.Count(fb, "\n"))
	assert.Contains(t, fb, "✓ En az 8 karakter uzunluğunda")
	assert.Contains(t, fb, "✓ Yaygın şifre değil")

	weak := Evaluate("abc")
	assert.Contains(t, weak.Feedback(), "✗ En az 8 karakter olmalı")
}
