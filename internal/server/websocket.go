package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"draw-guess/internal/game"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// wsClient is one player's WebSocket session. The write mutex keeps
// broadcast fan-out and direct sends from interleaving frames.
type wsClient struct {
	conn     *websocket.Conn
	playerID string
	writeMu  sync.Mutex
}

func (c *wsClient) writeJSON(payload any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(payload)
}

type wsHub struct {
	mu    sync.Mutex
	rooms map[string]map[*wsClient]struct{}
}

func newWSHub() *wsHub {
	return &wsHub{
		rooms: make(map[string]map[*wsClient]struct{}),
	}
}

func (h *wsHub) Add(code string, client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.rooms[code]
	if group == nil {
		group = make(map[*wsClient]struct{})
		h.rooms[code] = group
	}
	group[client] = struct{}{}
}

func (h *wsHub) Remove(code string, client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.rooms[code]
	if group == nil {
		return
	}
	delete(group, client)
	_ = client.conn.Close()
	if len(group) == 0 {
		delete(h.rooms, code)
	}
}

func (h *wsHub) Members(code string) []*wsClient {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.rooms[code]
	members := make([]*wsClient, 0, len(group))
	for client := range group {
		members = append(members, client)
	}
	return members
}

// CloseRoom drops every session of a reclaimed room.
func (h *wsHub) CloseRoom(code string) {
	h.mu.Lock()
	group := h.rooms[code]
	delete(h.rooms, code)
	h.mu.Unlock()
	for client := range group {
		_ = client.conn.Close()
	}
}

// wsIntent is an inbound realtime intent frame.
type wsIntent struct {
	Type string          `json:"type"`
	Text string          `json:"text,omitempty"`
	Kind string          `json:"kind,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	room, err := s.registry.GetRoom(mux.Vars(r)["code"])
	if err != nil {
		writeGameError(w, err)
		return
	}
	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "a player id is required")
		return
	}
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &wsClient{conn: conn, playerID: playerID}
	s.ws.Add(room.Code(), client)
	s.log.Info().Str("code", room.Code()).Str("player_id", playerID).Str("remote", r.RemoteAddr).Msg("ws connected")
	_ = client.writeJSON(map[string]any{
		"type": "snapshot",
		"room": room.SnapshotFor(playerID),
	})
	go s.readWS(room, client)
}

func (s *Server) readWS(room *game.Room, client *wsClient) {
	defer func() {
		s.ws.Remove(room.Code(), client)
		if _, err := room.Leave(client.playerID); err == nil {
			s.reclaimIfEmpty(room)
		}
	}()
	limiter := rate.NewLimiter(rate.Limit(s.cfg.WSRateLimit), s.cfg.WSRateBurst)
	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			s.log.Debug().Str("code", room.Code()).Str("player_id", client.playerID).Err(err).Msg("ws disconnected")
			return
		}
		if !limiter.Allow() {
			continue
		}
		var intent wsIntent
		if err := json.Unmarshal(data, &intent); err != nil {
			continue
		}
		s.applyIntent(room, client.playerID, intent)
	}
}

// applyIntent forwards a realtime frame to the coordinator. Outcomes are
// not acknowledged frame-by-frame; the next snapshot broadcast carries
// whatever actually happened.
func (s *Server) applyIntent(room *game.Room, playerID string, intent wsIntent) {
	switch intent.Type {
	case "guess":
		text := intent.Text
		if text == "" || len(text) > maxGuessLength || !isSafeText(text) {
			return
		}
		_, _ = room.Guess(playerID, text)
	case "chat":
		text := intent.Text
		if text == "" || len(text) > maxChatLength || !isSafeText(text) {
			return
		}
		_, _ = room.Chat(playerID, text)
	case "draw":
		if len(intent.Data) > maxDrawingBytes {
			return
		}
		room.Draw(playerID, game.DrawingKind(intent.Kind), intent.Data)
	case "skip":
		_, _ = room.SkipWord(playerID)
	}
}

// broadcastRoom is the coordinator's notifier: after every accepted
// mutation it delivers each member their personalized snapshot.
func (s *Server) broadcastRoom(room *game.Room) {
	for _, client := range s.ws.Members(room.Code()) {
		payload := map[string]any{
			"type": "snapshot",
			"room": room.SnapshotFor(client.playerID),
		}
		if err := client.writeJSON(payload); err != nil {
			s.ws.Remove(room.Code(), client)
		}
	}
}
