package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwaitingPasswordEntry(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		expected bool
	}{
		{
			name: "last slot with no question",
			session: Session{
				Progress: Progress{Current: 9, Total: 10},
			},
			expected: true,
		},
		{
			name: "mid-track with no question",
			session: Session{
				Progress: Progress{Current: 5, Total: 10},
			},
			expected: false,
		},
		{
			name: "last slot but question present",
			session: Session{
				Progress:                Progress{Current: 9, Total: 10},
				CurrentPasswordQuestion: &PasswordQuestion{ID: 1},
			},
			expected: false,
		},
		{
			name:     "zero progress",
			session:  Session{},
			expected: false,
		},
		{
			name: "single-slot track",
			session: Session{
				Progress: Progress{Current: 0, Total: 1},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.AwaitingPasswordEntry())
		})
	}
}

func TestResetClearsEverythingExceptIdentity(t *testing.T) {
	userID := int64(42)
	s := Session{
		ID:       "session_1",
		Phase:    PhaseResults,
		UserName: "Ada",
		UserID:   &userID,
		GameMode: ModeMixed,
		Score:    7,
		Progress: Progress{Current: 9, Total: 10},
		Feedback: &Feedback{IsCorrect: true},
		Report:   &Report{Grade: "A"},
		Error:    "boom",
	}

	s.Reset("session_2")

	assert.Equal(t, SessionID("session_2"), s.ID)
	assert.Equal(t, PhaseWelcome, s.Phase)
	assert.Empty(t, s.UserName)
	assert.Nil(t, s.UserID)
	assert.Empty(t, s.GameMode)
	assert.Zero(t, s.Score)
	assert.Equal(t, Progress{}, s.Progress)
	assert.Nil(t, s.CurrentQuestion)
	assert.Nil(t, s.CurrentPasswordQuestion)
	assert.Nil(t, s.Feedback)
	assert.Nil(t, s.Report)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
}

func TestValidGameMode(t *testing.T) {
	assert.True(t, ValidGameMode(ModePhishingOnly))
	assert.True(t, ValidGameMode(ModePasswordOnly))
	assert.True(t, ValidGameMode(ModeMixed))
	assert.False(t, ValidGameMode(""))
	assert.False(t, ValidGameMode("BOTH"))
}
