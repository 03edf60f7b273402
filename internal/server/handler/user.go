package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/ekaraca/phishdrill/internal/api/request"
	"github.com/ekaraca/phishdrill/internal/api/response"
	"github.com/ekaraca/phishdrill/internal/dependencies/clock"
	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/ekaraca/phishdrill/internal/storage"
)

// Leaderboard size served to clients
const leaderboardLimit = 10

// UserHandler serves the user-service endpoints
type UserHandler struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewUserHandler creates a UserHandler
func NewUserHandler(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *UserHandler {
	return &UserHandler{storage: storage, clock: clock, logger: logger}
}

// Register handles POST /register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.UserError(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	profile := model.Profile{
		FullName:                 strings.TrimSpace(req.FullName),
		BirthDate:                strings.TrimSpace(req.BirthDate),
		EducationLevel:           strings.TrimSpace(req.EducationLevel),
		Profession:               strings.TrimSpace(req.Profession),
		HasCybersecurityTraining: req.HasCybersecurityTraining,
	}
	if profile.FullName == "" || profile.BirthDate == "" ||
		profile.EducationLevel == "" || profile.Profession == "" {
		response.UserError(w, http.StatusBadRequest, "Tüm alanların doldurulması zorunludur")
		return
	}

	user, err := h.storage.CreateUser(r.Context(), profile)
	if err != nil {
		h.logger.Error("failed to create user", slog.String("error", err.Error()))
		response.UserError(w, http.StatusInternalServerError, "Kayıt oluşturulamadı")
		return
	}

	h.logger.Info("user registered", slog.Int64("user_id", int64(user.ID)))
	response.JSON(w, http.StatusOK, response.RegisterResponse{
		Success: true,
		UserID:  int64(user.ID),
	})
}

// SaveResult handles POST /save-result
func (h *UserHandler) SaveResult(w http.ResponseWriter, r *http.Request) {
	var req request.SaveResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.UserError(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	if _, err := h.storage.GetUser(r.Context(), model.UserID(req.UserID)); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.UserError(w, http.StatusNotFound, "Kullanıcı bulunamadı")
			return
		}
		h.logger.Error("failed to look up user", slog.String("error", err.Error()))
		response.UserError(w, http.StatusInternalServerError, "Sonuç kaydedilemedi")
		return
	}

	result := &model.GameResult{
		UserID:         model.UserID(req.UserID),
		GameMode:       model.GameMode(req.GameMode),
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
		Percentage:     req.Percentage,
		Grade:          req.Grade,
		PlayedAt:       h.clock.Now(),
	}

	if err := h.storage.SaveGameResult(r.Context(), result); err != nil {
		h.logger.Error("failed to save result", slog.String("error", err.Error()))
		response.UserError(w, http.StatusInternalServerError, "Sonuç kaydedilemedi")
		return
	}

	response.JSON(w, http.StatusOK, response.SaveResultResponse{
		Success:  true,
		ResultID: result.ID,
	})
}

// Results handles GET /results/{userId}: the user's own play history,
// most recent game last
func (h *UserHandler) Results(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["userId"]
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		response.UserError(w, http.StatusBadRequest, "Geçersiz kullanıcı numarası")
		return
	}

	if _, err := h.storage.GetUser(r.Context(), model.UserID(id)); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.UserError(w, http.StatusNotFound, "Kullanıcı bulunamadı")
			return
		}
		h.logger.Error("failed to look up user", slog.String("error", err.Error()))
		response.UserError(w, http.StatusInternalServerError, "Sonuçlar yüklenemedi")
		return
	}

	results, err := h.storage.GetResultsForUser(r.Context(), model.UserID(id))
	if err != nil {
		h.logger.Error("failed to load user results",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()),
		)
		response.UserError(w, http.StatusInternalServerError, "Sonuçlar yüklenemedi")
		return
	}

	payload := make([]model.GameResult, 0, len(results))
	for _, result := range results {
		payload = append(payload, *result)
	}
	response.JSON(w, http.StatusOK, response.UserResultsResponse{
		Success: true,
		Results: payload,
	})
}

// Leaderboard handles GET /leaderboard
func (h *UserHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	results, err := h.storage.TopResults(r.Context(), leaderboardLimit)
	if err != nil {
		h.logger.Error("failed to load leaderboard", slog.String("error", err.Error()))
		response.UserError(w, http.StatusInternalServerError, "Skor tablosu yüklenemedi")
		return
	}

	entries := make([]model.LeaderboardEntry, 0, len(results))
	for i, result := range results {
		entry := model.LeaderboardEntry{
			Rank:       i + 1,
			Score:      result.Score,
			Percentage: result.Percentage,
			Grade:      result.Grade,
			GameMode:   result.GameMode,
			PlayedAt:   result.PlayedAt.Format(time.RFC3339),
		}
		if user, err := h.storage.GetUser(r.Context(), result.UserID); err == nil {
			entry.FullName = user.Profile.FullName
			entry.HasCybersecurityTraining = user.Profile.HasCybersecurityTraining
		}
		entries = append(entries, entry)
	}

	response.JSON(w, http.StatusOK, response.LeaderboardResponse{
		Success:     true,
		Leaderboard: entries,
	})
}
