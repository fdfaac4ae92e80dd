package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"ataxx/communication"
	"ataxx/game"
	"ataxx/searcher/agent"
)

// Server hosts one game over HTTP: the remote side plays one color, the
// engine answers with the other. State is guarded by a single mutex; every
// applied move is broadcast to websocket subscribers.
type Server struct {
	mu          sync.Mutex
	board       *game.Board
	humanColor  game.PieceColor
	engineColor game.PieceColor
	engine      agent.Agent
	hub         *Hub
}

// New returns a server on a fresh board where the remote side plays Red
// and a moves first.
func New(a agent.Agent, board *game.Board) *Server {
	return &Server{
		board:       board,
		humanColor:  game.Red,
		engineColor: game.Blue,
		engine:      a,
		hub:         NewHub(),
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/state", s.handleState)
	r.Post("/move", s.handleMove)
	r.Get("/ws", s.hub.HandleWS)
	return r
}

func (s *Server) ListenAndServe(addr string) error {
	log.Info().Str("addr", addr).Msg("serving game")
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := communication.NewStateResponse(s.board)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req communication.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	move, err := game.ParseMove(req.Move)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, over := s.board.Winner(); over {
		http.Error(w, "game is over", http.StatusConflict)
		return
	}
	if s.board.WhoseMove() != s.humanColor {
		http.Error(w, "not your turn", http.StatusConflict)
		return
	}
	if err := s.board.MakeMove(move); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	log.Info().Str("player", s.humanColor.String()).Str("move", move.String()).Msg("move received")

	resp := communication.MoveResponse{Played: move.String()}
	if _, over := s.board.Winner(); !over && s.board.WhoseMove() == s.engineColor {
		reply, _ := s.engine.FindMove(s.board, s.engineColor)
		if err := s.board.MakeMove(reply); err != nil {
			log.Error().Err(err).Str("move", reply.String()).Msg("engine produced an illegal move")
			http.Error(w, "internal engine error", http.StatusInternalServerError)
			return
		}
		log.Info().Str("player", s.engineColor.String()).Str("move", reply.String()).Msg("engine replied")
		resp.Reply = reply.String()
	}

	resp.State = communication.NewStateResponse(s.board)
	s.hub.Broadcast(resp.State)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
