package server

import (
	"net/http"
	"strings"

	"draw-guess/internal/game"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "a display name is required")
		return
	}
	playerID := req.PlayerID
	if playerID == "" {
		playerID = uuid.NewString()
	}
	room, err := s.registry.CreateRoom(playerID, req.Name)
	if err != nil {
		s.log.Error().Err(err).Msg("create room failed")
		writeError(w, http.StatusServiceUnavailable, "could not allocate a room code, please retry")
		return
	}
	s.log.Info().Str("code", room.Code()).Str("player_id", playerID).Msg("room created")
	writeJSON(w, http.StatusCreated, map[string]any{
		"player_id": playerID,
		"room":      room.SnapshotFor(playerID),
	})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := s.lookupRoom(r)
	if err != nil {
		writeGameError(w, err)
		return
	}
	playerID := r.URL.Query().Get("player_id")
	writeJSON(w, http.StatusOK, room.SnapshotFor(playerID))
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	room, err := s.lookupRoom(r)
	if err != nil {
		writeGameError(w, err)
		return
	}
	var req joinRoomRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "a display name is required")
		return
	}
	playerID := req.PlayerID
	if playerID == "" {
		playerID = uuid.NewString()
	}
	snap, err := room.Join(playerID, req.Name)
	if err != nil {
		writeGameError(w, err)
		return
	}
	s.log.Info().Str("code", room.Code()).Str("player_id", playerID).Str("name", req.Name).Msg("player joined")
	writeJSON(w, http.StatusOK, map[string]any{
		"player_id": playerID,
		"room":      snap,
	})
}

func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request) {
	room, req, ok := s.roomAndPlayer(w, r)
	if !ok {
		return
	}
	if _, err := room.Leave(req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	s.log.Info().Str("code", room.Code()).Str("player_id", req.PlayerID).Msg("player left")
	s.reclaimIfEmpty(room)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	room, req, ok := s.roomAndPlayer(w, r)
	if !ok {
		return
	}
	snap, err := room.Start(req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	s.log.Info().Str("code", room.Code()).Int("round", snap.Round).Msg("game started")
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	room, err := s.lookupRoom(r)
	if err != nil {
		writeGameError(w, err)
		return
	}
	var req guessRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid guess")
		return
	}
	snap, err := room.Guess(req.PlayerID, req.Text)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	room, err := s.lookupRoom(r)
	if err != nil {
		writeGameError(w, err)
		return
	}
	var req chatRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid message")
		return
	}
	snap, err := room.Chat(req.PlayerID, req.Text)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	room, err := s.lookupRoom(r)
	if err != nil {
		writeGameError(w, err)
		return
	}
	var req drawRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil || len(req.Data) > maxDrawingBytes {
		writeError(w, http.StatusBadRequest, "invalid drawing event")
		return
	}
	_, accepted := room.Draw(req.PlayerID, game.DrawingKind(req.Kind), req.Data)
	writeJSON(w, http.StatusOK, map[string]bool{"accepted": accepted})
}

func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	room, req, ok := s.roomAndPlayer(w, r)
	if !ok {
		return
	}
	snap, err := room.SkipWord(req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleNextRound(w http.ResponseWriter, r *http.Request) {
	room, req, ok := s.roomAndPlayer(w, r)
	if !ok {
		return
	}
	snap, err := room.NextRound(req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	s.log.Info().Str("code", room.Code()).Int("round", snap.Round).Str("drawer", snap.CurrentDrawerID).Msg("next round")
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	room, req, ok := s.roomAndPlayer(w, r)
	if !ok {
		return
	}
	snap, err := room.End(req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	s.log.Info().Str("code", room.Code()).Msg("game ended")
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) lookupRoom(r *http.Request) (*game.Room, error) {
	return s.registry.GetRoom(mux.Vars(r)["code"])
}

// roomAndPlayer handles the shared lookup-and-bind prologue of the
// intent endpoints that only carry a player id.
func (s *Server) roomAndPlayer(w http.ResponseWriter, r *http.Request) (*game.Room, playerRequest, bool) {
	room, err := s.lookupRoom(r)
	if err != nil {
		writeGameError(w, err)
		return nil, playerRequest{}, false
	}
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, playerRequest{}, false
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, "a player id is required")
		return nil, playerRequest{}, false
	}
	return room, req, true
}

// reclaimIfEmpty destroys a room once its last connected member is gone.
func (s *Server) reclaimIfEmpty(room *game.Room) {
	if room.ConnectedCount() == 0 {
		s.registry.RemoveRoom(room.Code())
		s.ws.CloseRoom(room.Code())
		s.log.Info().Str("code", room.Code()).Msg("room reclaimed")
	}
}
