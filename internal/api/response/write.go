package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// GameError writes a game-service error body. The protocol reports errors as
// a GameResponse whose gameState is "error" and whose message is human
// readable.
func GameError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, GameResponse{GameState: "error", Message: message})
}

// UserError writes a user-service error body ({success:false, message})
func UserError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{"success": false, "message": message})
}
