package server

import (
	"net/http"

	"draw-guess/internal/config"
	"draw-guess/internal/game"
	"draw-guess/internal/words"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Server is the session gateway: it accepts intents over HTTP and
// WebSocket, hands them to the room coordinator, and pushes the resulting
// snapshots back to every connected member of the room.
type Server struct {
	cfg      config.Config
	registry *game.Registry
	ws       *wsHub
	log      zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *Server {
	bank := words.Default()
	rules := game.Rules{
		RoundSeconds:  cfg.RoundSeconds,
		GuesserPoints: cfg.GuesserPoints,
		DrawerPoints:  cfg.DrawerPoints,
	}
	s := &Server{
		cfg:      cfg,
		registry: game.NewRegistry(bank, rules),
		ws:       newWSHub(),
		log:      logger,
	}
	s.registry.SetNotifier(s.broadcastRoom)
	return s
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.corsMiddleware)

	r.HandleFunc("/api/rooms", s.handleCreateRoom).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{code}", s.handleGetRoom).Methods(http.MethodGet)
	r.HandleFunc("/api/rooms/{code}/join", s.handleJoin).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{code}/leave", s.handleLeave).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{code}/start", s.handleStart).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{code}/guess", s.handleGuess).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{code}/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{code}/draw", s.handleDraw).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{code}/skip", s.handleSkip).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{code}/next", s.handleNextRound).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{code}/end", s.handleEnd).Methods(http.MethodPost)
	r.HandleFunc("/ws/rooms/{code}", s.handleWebsocket).Methods(http.MethodGet)

	return r
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
