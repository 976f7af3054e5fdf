package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"draw-guess/internal/game"
)

func readJSON(body io.Reader, dest any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeGameError maps coordinator failures onto HTTP statuses: unknown
// codes are 404, transition rejections are 409 with the reason.
func writeGameError(w http.ResponseWriter, err error) {
	if errors.Is(err, game.ErrRoomNotFound) {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}
	if reason, ok := game.IsRejected(err); ok {
		writeError(w, http.StatusConflict, reason)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
