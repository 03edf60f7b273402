package gameclient

import (
	"context"
	"fmt"

	"github.com/ekaraca/phishdrill/internal/api/request"
	"github.com/ekaraca/phishdrill/internal/api/response"
	"github.com/ekaraca/phishdrill/internal/model"
)

// GameClient talks to the game service (start/submit/results/restart)
type GameClient struct {
	client *Client
}

// NewGameClient creates a game-service client rooted at baseURL, e.g.
// http://localhost:8080/api/game
func NewGameClient(baseURL string) *GameClient {
	return &GameClient{client: NewClient(baseURL)}
}

// Start begins a new game for the given session and display name
func (g *GameClient) Start(ctx context.Context, sessionID model.SessionID, userName string) (*response.GameResponse, error) {
	req := request.StartRequest{
		UserName:  userName,
		SessionID: string(sessionID),
	}
	var resp response.GameResponse
	if err := g.client.Post(ctx, "/start", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Submit sends one of the in-game transition actions
func (g *GameClient) Submit(ctx context.Context, sessionID model.SessionID, action request.ActionType, payload request.SubmitPayload) (*response.GameResponse, error) {
	req := request.SubmitRequest{
		SessionID:  string(sessionID),
		ActionType: action,
		Payload:    payload,
	}
	var resp response.GameResponse
	if err := g.client.Post(ctx, "/submit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Results fetches the results resource for the session
func (g *GameClient) Results(ctx context.Context, sessionID model.SessionID) (*response.GameResponse, error) {
	var resp response.GameResponse
	if err := g.client.Get(ctx, fmt.Sprintf("/results/%s", sessionID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Restart tells the server to discard the session. The response content is
// not relied upon.
func (g *GameClient) Restart(ctx context.Context, sessionID model.SessionID) error {
	req := request.RestartRequest{SessionID: string(sessionID)}
	return g.client.Post(ctx, "/restart", req, nil)
}

// Health checks the game service
func (g *GameClient) Health(ctx context.Context) (*response.HealthResponse, error) {
	var resp response.HealthResponse
	if err := g.client.Get(ctx, "/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
