package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ekaraca/phishdrill/internal/api/request"
	"github.com/ekaraca/phishdrill/internal/api/response"
	"github.com/ekaraca/phishdrill/internal/dependencies/mocks"
	"github.com/ekaraca/phishdrill/internal/dependencies/random"
	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/ekaraca/phishdrill/internal/server/content"
	"github.com/ekaraca/phishdrill/internal/server/engine"
	"github.com/ekaraca/phishdrill/internal/storage/memory"
)

type RouterSuite struct {
	suite.Suite
	ts *httptest.Server
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	banks, err := content.Load()
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	eng := engine.NewEngine(store, banks, clk, random.New(), logger)

	s.ts = httptest.NewServer(NewRouter(RouterConfig{
		Logger:  logger,
		Engine:  eng,
		Storage: store,
		Clock:   clk,
	}))
}

func (s *RouterSuite) TearDownTest() {
	s.ts.Close()
}

func (s *RouterSuite) postJSON(path string, body any, out any) *http.Response {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	resp, err := http.Post(s.ts.URL+path, "application/json", bytes.NewReader(data))
	s.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *RouterSuite) getJSON(path string, out any) *http.Response {
	resp, err := http.Get(s.ts.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *RouterSuite) TestHealth() {
	var health response.HealthResponse
	resp := s.getJSON("/api/game/health", &health)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", health.Status)
}

func (s *RouterSuite) TestStartAndSelectMode() {
	var startResp response.GameResponse
	resp := s.postJSON("/api/game/start", request.StartRequest{
		UserName:  "Ada",
		SessionID: "session-1",
	}, &startResp)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("menu", startResp.GameState)
	s.Equal("Ada", startResp.UserName)

	var modeResp response.GameResponse
	resp = s.postJSON("/api/game/submit", request.SubmitRequest{
		SessionID:  "session-1",
		ActionType: request.ActionSelectGameMode,
		Payload:    request.SubmitPayload{GameMode: "PASSWORD_ONLY"},
	}, &modeResp)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("password", modeResp.GameState)
	s.Require().NotNil(modeResp.CurrentPasswordQuestion)
	s.Empty(modeResp.CurrentPasswordQuestion.CorrectAnswer)
	s.Require().NotNil(modeResp.Progress)
	s.Equal(0, modeResp.Progress.Current)
	s.Equal(11, modeResp.Progress.Total)
}

func (s *RouterSuite) TestStartEmptyName() {
	var errResp response.GameResponse
	resp := s.postJSON("/api/game/start", request.StartRequest{SessionID: "session-1"}, &errResp)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("error", errResp.GameState)
	s.NotEmpty(errResp.Message)
}

func (s *RouterSuite) TestSubmitAnswerAndAdvance() {
	s.postJSON("/api/game/start", request.StartRequest{UserName: "Ada", SessionID: "session-1"}, nil)
	s.postJSON("/api/game/submit", request.SubmitRequest{
		SessionID:  "session-1",
		ActionType: request.ActionSelectGameMode,
		Payload:    request.SubmitPayload{GameMode: "PHISHING_ONLY"},
	}, nil)

	var answerResp response.GameResponse
	resp := s.postJSON("/api/game/submit", request.SubmitRequest{
		SessionID:  "session-1",
		ActionType: request.ActionSubmitAnswer,
		Payload:    request.SubmitPayload{Answer: "Oltalama"},
	}, &answerResp)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Require().NotNil(answerResp.IsCorrect)
	s.NotEmpty(answerResp.Explanation)
	s.Require().NotNil(answerResp.Score)

	var nextResp response.GameResponse
	resp = s.postJSON("/api/game/submit", request.SubmitRequest{
		SessionID:  "session-1",
		ActionType: request.ActionNextQuestion,
	}, &nextResp)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("phishing", nextResp.GameState)
	s.Require().NotNil(nextResp.Progress)
	s.Equal(1, nextResp.Progress.Current)
}

func (s *RouterSuite) TestResultsUnknownSession() {
	var errResp response.GameResponse
	resp := s.getJSON("/api/game/results/nonexistent", &errResp)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("error", errResp.GameState)
}

func (s *RouterSuite) TestRestart() {
	s.postJSON("/api/game/start", request.StartRequest{UserName: "Ada", SessionID: "session-1"}, nil)

	var restartResp response.GameResponse
	resp := s.postJSON("/api/game/restart", request.RestartRequest{SessionID: "session-1"}, &restartResp)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("welcome", restartResp.GameState)
}

func (s *RouterSuite) TestRegisterSaveResultLeaderboard() {
	var regResp response.RegisterResponse
	resp := s.postJSON("/api/user/register", request.RegisterRequest{
		FullName:                 "Ada Lovelace",
		BirthDate:                "1990-01-01",
		EducationLevel:           "Lisans",
		Profession:               "Mühendis",
		HasCybersecurityTraining: true,
	}, &regResp)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(regResp.Success)
	s.Equal(int64(1), regResp.UserID)

	var saveResp response.SaveResultResponse
	resp = s.postJSON("/api/user/save-result", request.SaveResultRequest{
		UserID:         regResp.UserID,
		GameMode:       "MIXED",
		Score:          8,
		TotalQuestions: 10,
		CorrectAnswers: 8,
		Percentage:     80,
		Grade:          "A",
	}, &saveResp)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(saveResp.Success)

	var lbResp response.LeaderboardResponse
	resp = s.getJSON("/api/user/leaderboard", &lbResp)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(lbResp.Success)
	s.Require().Len(lbResp.Leaderboard, 1)
	s.Equal("Ada Lovelace", lbResp.Leaderboard[0].FullName)
	s.Equal(1, lbResp.Leaderboard[0].Rank)
	s.Equal(model.GameMode("MIXED"), lbResp.Leaderboard[0].GameMode)
}

func (s *RouterSuite) TestUserResults() {
	var regResp response.RegisterResponse
	s.postJSON("/api/user/register", request.RegisterRequest{
		FullName:       "Ada Lovelace",
		BirthDate:      "1990-01-01",
		EducationLevel: "Lisans",
		Profession:     "Mühendis",
	}, &regResp)

	for _, save := range []request.SaveResultRequest{
		{UserID: regResp.UserID, GameMode: "PHISHING_ONLY", Score: 7, TotalQuestions: 10, CorrectAnswers: 7, Percentage: 70, Grade: "B"},
		{UserID: regResp.UserID, GameMode: "MIXED", Score: 9, TotalQuestions: 10, CorrectAnswers: 9, Percentage: 90, Grade: "A+"},
	} {
		resp := s.postJSON("/api/user/save-result", save, nil)
		s.Equal(http.StatusOK, resp.StatusCode)
	}

	var resultsResp response.UserResultsResponse
	resp := s.getJSON("/api/user/results/1", &resultsResp)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(resultsResp.Success)
	s.Require().Len(resultsResp.Results, 2)
	s.Equal(model.GameMode("PHISHING_ONLY"), resultsResp.Results[0].GameMode)
	s.Equal(model.GameMode("MIXED"), resultsResp.Results[1].GameMode)
	s.Equal(90, resultsResp.Results[1].Percentage)
}

func (s *RouterSuite) TestUserResultsUnknownUser() {
	resp := s.getJSON("/api/user/results/99", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *RouterSuite) TestUserResultsBadID() {
	resp := s.getJSON("/api/user/results/abc", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *RouterSuite) TestRegisterMissingFields() {
	resp := s.postJSON("/api/user/register", request.RegisterRequest{FullName: "Ada"}, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *RouterSuite) TestSaveResultUnknownUser() {
	resp := s.postJSON("/api/user/save-result", request.SaveResultRequest{UserID: 99}, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
