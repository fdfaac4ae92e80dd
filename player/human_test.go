package player

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ataxx/game"
)

func TestHumanReadsLegalMove(t *testing.T) {
	in := strings.NewReader("garbage\nz9z8\na1a2\na7a6\n")
	var out bytes.Buffer
	h := NewHuman(in, &out)
	b := game.NewBoard()

	move, _ := h.FindMove(b, game.Red)

	require.Equal(t, "a7a6", move.String(), "keeps prompting until a legal move")
	require.Contains(t, out.String(), "illegal move a1a2")
}

func TestHumanPassesWhenNoMoves(t *testing.T) {
	b := game.NewEmptyBoard()
	for r := byte('1'); r <= '7'; r++ {
		for c := byte('a'); c <= 'g'; c++ {
			b.Put(c, r, game.Blocked)
		}
	}
	b.Put('a', '1', game.Red)
	b.Put('g', '7', game.Blue)

	var out bytes.Buffer
	h := NewHuman(strings.NewReader(""), &out)

	move, _ := h.FindMove(b, game.Red)

	require.True(t, move.IsPass())
	require.Contains(t, out.String(), "no move")
}
