package model

import "errors"

// Common errors used across the application
var (
	// Controller guard errors
	ErrOperationInFlight = errors.New("an operation is already in flight")
	ErrEmptyUserName     = errors.New("user name must not be empty")
	ErrEmptyPassword     = errors.New("password must not be empty")
	ErrInvalidGameMode   = errors.New("invalid game mode")
	ErrFeedbackPending   = errors.New("answer already graded, advance before submitting again")
	ErrNoActiveQuestion  = errors.New("no question is currently active")

	// Server-side session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidAction   = errors.New("action not valid in current phase")
	ErrNoMoreQuestions = errors.New("no more questions in this track")

	// User service errors
	ErrUserNotFound = errors.New("user not found")
)
