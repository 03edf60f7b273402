package gameclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/ekaraca/phishdrill/internal/api/request"
	"github.com/ekaraca/phishdrill/internal/api/response"
	"github.com/ekaraca/phishdrill/internal/model"
)

// UserClient talks to the user service (register/save-result/leaderboard)
type UserClient struct {
	client *Client
}

// NewUserClient creates a user-service client rooted at baseURL, e.g.
// http://localhost:8080/api/user
func NewUserClient(baseURL string) *UserClient {
	return &UserClient{client: NewClient(baseURL)}
}

// Register stores a participant profile and returns the assigned user id
func (u *UserClient) Register(ctx context.Context, profile model.Profile) (model.UserID, error) {
	req := request.RegisterRequest{
		FullName:                 profile.FullName,
		BirthDate:                profile.BirthDate,
		EducationLevel:           profile.EducationLevel,
		Profession:               profile.Profession,
		HasCybersecurityTraining: profile.HasCybersecurityTraining,
	}
	var resp response.RegisterResponse
	if err := u.client.Post(ctx, "/register", req, &resp); err != nil {
		return 0, err
	}
	if !resp.Success || resp.UserID == 0 {
		if resp.Message != "" {
			return 0, errors.New(resp.Message)
		}
		return 0, errors.New("registration rejected")
	}
	return model.UserID(resp.UserID), nil
}

// SaveResult persists a finished game for the user
func (u *UserClient) SaveResult(ctx context.Context, result request.SaveResultRequest) error {
	var resp response.SaveResultResponse
	if err := u.client.Post(ctx, "/save-result", result, &resp); err != nil {
		return err
	}
	if !resp.Success {
		if resp.Message != "" {
			return errors.New(resp.Message)
		}
		return errors.New("save-result rejected")
	}
	return nil
}

// Results fetches the user's own play history
func (u *UserClient) Results(ctx context.Context, userID model.UserID) ([]model.GameResult, error) {
	var resp response.UserResultsResponse
	if err := u.client.Get(ctx, fmt.Sprintf("/results/%d", userID), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Leaderboard fetches the public leaderboard
func (u *UserClient) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	var resp response.LeaderboardResponse
	if err := u.client.Get(ctx, "/leaderboard", &resp); err != nil {
		return nil, err
	}
	return resp.Leaderboard, nil
}
