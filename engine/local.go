package engine

import (
	"ataxx/experiments/metrics"
	"ataxx/game"
	"ataxx/searcher/agent"

	"github.com/rs/zerolog/log"
)

// MaxTurns caps runaway games; with the jump limit in force a real game
// decides well before this.
const MaxTurns = 500

// Update describes one applied move: the move itself and a snapshot of the
// resulting position.
type Update struct {
	Move  game.Move
	Board *game.Board
}

// Engine drives a full local game between two agents.
type Engine struct {
	Board   *game.Board
	agents  map[game.PieceColor]agent.Agent
	updates []Update
}

// LocalEngine returns an engine for a fresh game with red and blue playing
// the matching colors.
func LocalEngine(red, blue agent.Agent) *Engine {
	return NewEngine(game.NewBoard(), red, blue)
}

// NewEngine returns an engine that continues from board.
func NewEngine(board *game.Board, red, blue agent.Agent) *Engine {
	return &Engine{
		Board: board,
		agents: map[game.PieceColor]agent.Agent{
			game.Red:  red,
			game.Blue: blue,
		},
	}
}

// Updates returns the moves applied so far with their position snapshots.
func (e *Engine) Updates() []Update {
	return e.updates
}

// Run executes the game loop until the position is decided (or the turn
// cap is hit, reported as a tie) and returns the winner with per-move
// records.
func (e *Engine) Run() (game.PieceColor, []metrics.MoveRecord) {
	log.Info().Str("player", e.Board.WhoseMove().String()).Msg("game started")

	var records []metrics.MoveRecord
	for turn := 1; ; turn++ {
		if winner, over := e.Board.Winner(); over {
			log.Info().Str("winner", winner.String()).Int("moves", turn-1).Msg("game over")
			return winner, records
		}
		if turn > MaxTurns {
			log.Warn().Int("turns", MaxTurns).Msg("turn cap reached, declaring a tie")
			return game.Empty, records
		}

		color := e.Board.WhoseMove()
		move, sm := e.agents[color].FindMove(e.Board, color)
		if err := e.Board.MakeMove(move); err != nil {
			// An agent returned a move its own position rejects; nothing
			// sensible to recover to.
			log.Panic().Err(err).Str("player", color.String()).Msg("agent played an illegal move")
		}
		e.updates = append(e.updates, Update{Move: move, Board: e.Board.Copy()})
		records = append(records, metrics.MoveRecord{
			Step:     turn,
			Player:   color.String(),
			Move:     move.String(),
			Depth:    sm.Depth,
			Nodes:    sm.Nodes,
			Leaves:   sm.Leaves,
			Cutoffs:  sm.Cutoffs,
			Duration: sm.Duration,
		})
		log.Debug().
			Int("turn", turn).
			Str("player", color.String()).
			Str("move", move.String()).
			Int64("nodes", sm.Nodes).
			Msg("move played")
	}
}
