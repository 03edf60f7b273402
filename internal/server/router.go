// Package server assembles the practice server: routing, middleware, and the
// HTTP server lifecycle.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ekaraca/phishdrill/internal/api/response"
	"github.com/ekaraca/phishdrill/internal/dependencies/clock"
	"github.com/ekaraca/phishdrill/internal/middleware"
	"github.com/ekaraca/phishdrill/internal/server/engine"
	"github.com/ekaraca/phishdrill/internal/server/handler"
	"github.com/ekaraca/phishdrill/internal/storage"
)

// RouterConfig holds the dependencies the router wires together
type RouterConfig struct {
	Logger  *slog.Logger
	Engine  *engine.Engine
	Storage storage.Storage
	Clock   clock.Clock
}

// NewRouter creates the API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.Engine, cfg.Logger)
	userHandler := handler.NewUserHandler(cfg.Storage, cfg.Clock, cfg.Logger)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, panicHandler)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	game := api.PathPrefix("/game").Subrouter()
	game.HandleFunc("/start", gameHandler.Start).Methods(http.MethodPost)
	game.HandleFunc("/submit", gameHandler.Submit).Methods(http.MethodPost)
	game.HandleFunc("/results/{sessionId}", gameHandler.Results).Methods(http.MethodGet)
	game.HandleFunc("/restart", gameHandler.Restart).Methods(http.MethodPost)
	game.HandleFunc("/health", gameHandler.Health).Methods(http.MethodGet)

	user := api.PathPrefix("/user").Subrouter()
	user.HandleFunc("/register", userHandler.Register).Methods(http.MethodPost)
	user.HandleFunc("/save-result", userHandler.SaveResult).Methods(http.MethodPost)
	user.HandleFunc("/results/{userId}", userHandler.Results).Methods(http.MethodGet)
	user.HandleFunc("/leaderboard", userHandler.Leaderboard).Methods(http.MethodGet)

	return r
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	response.GameError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
}
