package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ekaraca/phishdrill/internal/api/request"
	"github.com/ekaraca/phishdrill/internal/api/response"
	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/ekaraca/phishdrill/internal/server/engine"
)

// GameHandler serves the game endpoints backed by the quiz engine
type GameHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

// NewGameHandler creates a GameHandler
func NewGameHandler(engine *engine.Engine, logger *slog.Logger) *GameHandler {
	return &GameHandler{engine: engine, logger: logger}
}

// Start handles POST /start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.GameError(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	session, err := h.engine.StartSession(r.Context(), model.SessionID(req.SessionID), req.UserName)
	if err != nil {
		writeGameError(w, err)
		return
	}

	score := 0
	response.JSON(w, http.StatusOK, response.GameResponse{
		GameState: string(session.Phase),
		UserName:  session.UserName,
		Message:   "Hoş geldin " + session.UserName + "! Bir oyun modu seç.",
		Score:     &score,
	})
}

// Submit handles POST /submit, dispatching on the action type
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.GameError(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	id := model.SessionID(req.SessionID)

	switch req.ActionType {
	case request.ActionSelectGameMode:
		h.selectGameMode(w, r, id, model.GameMode(req.Payload.GameMode))
	case request.ActionSubmitAnswer:
		h.submitAnswer(w, r, id, req.Payload.Answer)
	case request.ActionNextQuestion:
		h.nextQuestion(w, r, id)
	case request.ActionSubmitPassword:
		h.submitPassword(w, r, id, req.Payload.Password)
	default:
		response.GameError(w, http.StatusBadRequest, "Bilinmeyen işlem türü")
	}
}

func (h *GameHandler) selectGameMode(w http.ResponseWriter, r *http.Request, id model.SessionID, mode model.GameMode) {
	step, err := h.engine.SelectMode(r.Context(), id, mode)
	if err != nil {
		writeGameError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stepResponse(step))
}

func (h *GameHandler) submitAnswer(w http.ResponseWriter, r *http.Request, id model.SessionID, answer string) {
	graded, err := h.engine.SubmitAnswer(r.Context(), id, answer)
	if err != nil {
		writeGameError(w, err)
		return
	}

	score := graded.Session.Score
	response.JSON(w, http.StatusOK, response.GameResponse{
		IsCorrect:   &graded.Correct,
		Explanation: graded.Explanation,
		Score:       &score,
	})
}

func (h *GameHandler) nextQuestion(w http.ResponseWriter, r *http.Request, id model.SessionID) {
	step, err := h.engine.NextQuestion(r.Context(), id)
	if err != nil {
		writeGameError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stepResponse(step))
}

func (h *GameHandler) submitPassword(w http.ResponseWriter, r *http.Request, id model.SessionID, password string) {
	step, err := h.engine.SubmitPassword(r.Context(), id, password)
	if err != nil {
		writeGameError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stepResponse(step))
}

// Results handles GET /results/{sessionId}
func (h *GameHandler) Results(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["sessionId"])

	report, err := h.engine.Results(r.Context(), id)
	if err != nil {
		writeGameError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponse{
		GameState:        string(model.PhaseResults),
		Results:          resultsPayload(report),
		PasswordAnalysis: report.PasswordAnalysis,
	})
}

// Restart handles POST /restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	var req request.RestartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.GameError(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	if err := h.engine.Restart(r.Context(), model.SessionID(req.SessionID)); err != nil {
		writeGameError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponse{
		GameState: string(model.PhaseWelcome),
		Message:   "Oyun sıfırlandı",
	})
}

// Health handles GET /health
func (h *GameHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}

// stepResponse renders a transition outcome in the union wire shape
func stepResponse(step *engine.Step) response.GameResponse {
	session := step.Session
	score := session.Score

	resp := response.GameResponse{
		GameState: string(session.Phase),
		GameMode:  string(session.GameMode),
		Score:     &score,
		Progress: &model.Progress{
			Current: session.Index,
			Total:   session.PlanLength(),
		},
	}

	switch {
	case step.Question != nil:
		resp.CurrentQuestion = step.Question
	case step.PasswordQuestion != nil:
		resp.CurrentPasswordQuestion = step.PasswordQuestion
	case step.AwaitingEntry:
		// The entry slot is signalled by the password phase with no
		// currentPasswordQuestion; nothing extra to set
	case step.Report != nil:
		resp.Results = resultsPayload(step.Report)
		resp.PasswordAnalysis = step.Report.PasswordAnalysis
		resp.Progress = nil
	}
	return resp
}

func resultsPayload(report *model.Report) *response.ResultsPayload {
	return &response.ResultsPayload{
		TotalQuestions:  report.TotalQuestions,
		CorrectAnswers:  report.CorrectAnswers,
		Percentage:      report.Percentage,
		Grade:           report.Grade,
		Feedback:        report.Feedback,
		Recommendations: report.Recommendations,
		PhishingStats:   report.PhishingStats,
		PasswordStats:   report.PasswordStats,
	}
}

// writeGameError maps engine errors onto wire errors
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		response.GameError(w, http.StatusNotFound, "Oturum bulunamadı")
	case errors.Is(err, model.ErrEmptyUserName):
		response.GameError(w, http.StatusBadRequest, "Kullanıcı adı boş olamaz")
	case errors.Is(err, model.ErrEmptyPassword):
		response.GameError(w, http.StatusBadRequest, "Şifre boş olamaz")
	case errors.Is(err, model.ErrInvalidGameMode):
		response.GameError(w, http.StatusBadRequest, "Geçersiz oyun modu")
	case errors.Is(err, model.ErrNoActiveQuestion),
		errors.Is(err, model.ErrInvalidAction),
		errors.Is(err, model.ErrNoMoreQuestions):
		response.GameError(w, http.StatusConflict, "Bu işlem şu anda geçerli değil")
	default:
		response.GameError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
	}
}
