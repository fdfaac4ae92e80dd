package communication

import "ataxx/game"

// StateResponse is the wire form of a position.
type StateResponse struct {
	Board      []string `json:"board"` // row 7 first, one string per row, cells r/b/-/X
	NextPlayer string   `json:"next_player"`
	Winner     string   `json:"winner,omitempty"`
	Over       bool     `json:"over"`
	RedPieces  int      `json:"red_pieces"`
	BluePieces int      `json:"blue_pieces"`
	Jumps      int      `json:"jumps"`
}

// MoveRequest carries one move in its textual form ("a1b2" or "-").
type MoveRequest struct {
	Move string `json:"move"`
}

// MoveResponse reports the applied move, the engine's reply if it was the
// engine's turn afterwards, and the resulting position.
type MoveResponse struct {
	Played string        `json:"played"`
	Reply  string        `json:"reply,omitempty"`
	State  StateResponse `json:"state"`
}

// NewStateResponse snapshots board into its wire form.
func NewStateResponse(board *game.Board) StateResponse {
	rows := make([]string, 0, game.Side)
	for r := byte('7'); r >= '1'; r-- {
		row := make([]byte, 0, game.Side)
		for c := byte('a'); c <= 'g'; c++ {
			switch board.Get(game.Index(c, r)) {
			case game.Red:
				row = append(row, 'r')
			case game.Blue:
				row = append(row, 'b')
			case game.Blocked:
				row = append(row, 'X')
			default:
				row = append(row, '-')
			}
		}
		rows = append(rows, string(row))
	}
	winner, over := board.Winner()
	resp := StateResponse{
		Board:      rows,
		NextPlayer: board.WhoseMove().String(),
		Over:       over,
		RedPieces:  board.PieceCount(game.Red),
		BluePieces: board.PieceCount(game.Blue),
		Jumps:      board.Jumps(),
	}
	if over {
		resp.Winner = winner.String()
	}
	return resp
}

// ToBoard reconstructs a board from its wire form.
func (s StateResponse) ToBoard() *game.Board {
	board := game.NewEmptyBoard()
	for i, row := range s.Board {
		r := byte('7' - i)
		for j := 0; j < len(row) && j < game.Side; j++ {
			c := byte('a' + j)
			switch row[j] {
			case 'r':
				board.Put(c, r, game.Red)
			case 'b':
				board.Put(c, r, game.Blue)
			case 'X':
				board.Put(c, r, game.Blocked)
			}
		}
	}
	if s.NextPlayer == game.Blue.String() {
		board.SetWhoseMove(game.Blue)
	}
	board.SetJumps(s.Jumps)
	return board
}
