package player

import (
	"bufio"
	"fmt"
	"io"

	"ataxx/game"
	"ataxx/searcher"
)

// Human prompts for moves on a terminal. It satisfies the same agent
// contract as the searchers, so the engine can drive mixed human/AI games.
type Human struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// FindMove prints the board and reads moves until a legal one is entered.
// When color has no relocation move it announces and returns a pass.
func (h *Human) FindMove(board *game.Board, color game.PieceColor) (game.Move, searcher.SearchMetric) {
	fmt.Fprintf(h.out, "%s\n", board)
	if !board.CanMove(color) {
		fmt.Fprintf(h.out, "%s has no move, passing\n", color)
		return game.Pass(), searcher.SearchMetric{}
	}
	for {
		fmt.Fprintf(h.out, "%s> ", color)
		if !h.scanner.Scan() {
			// Input closed; treated as resignation to a pass. The engine
			// will reject it if a relocation move exists.
			return game.Pass(), searcher.SearchMetric{}
		}
		move, err := game.ParseMove(h.scanner.Text())
		if err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		if !board.LegalMove(move) {
			fmt.Fprintf(h.out, "illegal move %s\n", move)
			continue
		}
		return move, searcher.SearchMetric{}
	}
}
