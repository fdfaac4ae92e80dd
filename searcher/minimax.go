package searcher

import (
	"math"

	"ataxx/game"
)

const (
	// MaxDepth is the default search depth before falling back to static
	// evaluation.
	MaxDepth = 4
	// WinningValue is the magnitude of a decided win (positive for Red,
	// negative for Blue). The remaining depth is added on top so that wins
	// found closer to the root outscore wins found deeper.
	WinningValue = math.MaxInt32 - 20
	// Infinity exceeds any reachable position value.
	Infinity = math.MaxInt32
)

type Option func(*Minimax)

// WithDepth sets the fixed search depth.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithMetrics enables per-search metrics collection.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// Minimax chooses moves by depth-limited minimax search with alpha-beta
// pruning. One Minimax value serves one search at a time; each FindMove
// call fully overwrites the recorded-move slot before returning.
type Minimax struct {
	depth   int
	metrics MetricsCollector

	// lastFound is the move recorded by the innermost completed saveMove
	// node; only the root's final write is meaningful to callers.
	lastFound game.Move
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		depth:   MaxDepth,
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns a move for color on board. When color has no relocation
// move at all it passes immediately without searching; otherwise it
// searches a private copy of board to the configured depth and returns the
// recorded best move.
func (m *Minimax) FindMove(board *game.Board, color game.PieceColor) (game.Move, SearchMetric) {
	m.metrics.Start(m.depth)
	if !board.CanMove(color) {
		return game.Pass(), m.metrics.Complete()
	}
	b := board.Copy()
	m.lastFound = game.Pass()
	if color == game.Red {
		m.minMax(b, m.depth, true, 1, -Infinity, Infinity)
	} else {
		m.minMax(b, m.depth, true, -1, -Infinity, Infinity)
	}
	return m.lastFound, m.metrics.Complete()
}

// minMax returns the value of board searched to depth levels, seeking the
// maximum over Red's moves when sense is 1 and the minimum over Blue's
// moves when sense is -1, pruning once alpha >= beta. When saveMove is
// true the best move at this node is recorded in lastFound; saveMove is
// forwarded unchanged to every recursive call, so deeper nodes overwrite
// the slot and the root's write lands last. Searching at depth 0, or from
// an already decided position, returns a static estimate and records
// nothing.
func (m *Minimax) minMax(board *game.Board, depth int, saveMove bool, sense, alpha, beta int) int {
	if _, over := board.Winner(); depth == 0 || over {
		m.metrics.AddLeaf()
		// WinningValue + depth favors wins that happen sooner: depth is
		// larger the fewer moves have been made below the root.
		return staticScore(board, WinningValue+depth)
	}
	m.metrics.AddNode()
	best := game.Pass()
	hasBest := false
	var bestScore int
	if sense == 1 {
		bestScore = -Infinity
		for _, move := range PossibleMoves(game.Red, board) {
			if !board.LegalMove(move) {
				continue
			}
			child := board.Copy()
			child.MakeMove(move)
			childScore := m.minMax(child, depth-1, saveMove, -sense, alpha, beta)
			if childScore > bestScore {
				bestScore = childScore
				if alpha < bestScore {
					alpha = bestScore
				}
				best, hasBest = move, true
				if alpha >= beta {
					m.metrics.AddCutoff()
					return bestScore
				}
			}
		}
	} else {
		bestScore = Infinity
		for _, move := range PossibleMoves(game.Blue, board) {
			if !board.LegalMove(move) {
				continue
			}
			child := board.Copy()
			child.MakeMove(move)
			childScore := m.minMax(child, depth-1, saveMove, -sense, alpha, beta)
			if childScore < bestScore {
				bestScore = childScore
				if beta > bestScore {
					beta = bestScore
				}
				best, hasBest = move, true
				if alpha >= beta {
					m.metrics.AddCutoff()
					return bestScore
				}
			}
		}
	}
	if saveMove {
		if !hasBest {
			best = game.Pass()
		}
		m.lastFound = best
	}
	return bestScore
}

// staticScore returns a heuristic value for board, signed from Red's
// perspective: +-winningValue in decided positions (0 for a tie),
// otherwise the material difference.
func staticScore(board *game.Board, winningValue int) int {
	if winner, over := board.Winner(); over {
		switch winner {
		case game.Red:
			return winningValue
		case game.Blue:
			return -winningValue
		default:
			return 0
		}
	}
	return board.PieceCount(game.Red) - board.PieceCount(game.Blue)
}
