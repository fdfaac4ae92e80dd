package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// noMoveBoard returns a position where neither lone piece can move: every
// cell is blocked except a1 (Red) and g7 (Blue).
func noMoveBoard() *Board {
	b := NewEmptyBoard()
	for r := byte('1'); r <= '7'; r++ {
		for c := byte('a'); c <= 'g'; c++ {
			b.Put(c, r, Blocked)
		}
	}
	b.Put('a', '1', Red)
	b.Put('g', '7', Blue)
	return b
}

func mustMove(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	require.NoError(t, err)
	return m
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, Red, b.WhoseMove())
	require.Equal(t, 2, b.PieceCount(Red))
	require.Equal(t, 2, b.PieceCount(Blue))
	require.Equal(t, Red, b.Get(Index('a', '7')))
	require.Equal(t, Red, b.Get(Index('g', '1')))
	require.Equal(t, Blue, b.Get(Index('a', '1')))
	require.Equal(t, Blue, b.Get(Index('g', '7')))
	require.Equal(t, Empty, b.Get(Index('d', '4')))
	require.Equal(t, 0, b.Jumps())

	_, over := b.Winner()
	require.False(t, over)
}

func TestGetOutOfRange(t *testing.T) {
	b := NewBoard()

	require.Equal(t, Blocked, b.Get(-1))
	require.Equal(t, Blocked, b.Get(ExtendedSide*ExtendedSide))
	// Border cells read as Blocked too
	require.Equal(t, Blocked, b.Get(Neighbor(Index('a', '1'), -1, -1)))
}

func TestExtendMove(t *testing.T) {
	b := NewBoard()

	require.NoError(t, b.MakeMove(mustMove(t, "a7a6")))

	require.Equal(t, Red, b.Get(Index('a', '7')), "extend keeps the source piece")
	require.Equal(t, Red, b.Get(Index('a', '6')))
	require.Equal(t, 3, b.PieceCount(Red))
	require.Equal(t, 0, b.Jumps())
	require.Equal(t, Blue, b.WhoseMove())
}

func TestJumpMove(t *testing.T) {
	b := NewBoard()

	require.NoError(t, b.MakeMove(mustMove(t, "a7c5")))

	require.Equal(t, Empty, b.Get(Index('a', '7')), "jump vacates the source")
	require.Equal(t, Red, b.Get(Index('c', '5')))
	require.Equal(t, 2, b.PieceCount(Red))
	require.Equal(t, 1, b.Jumps())

	require.NoError(t, b.MakeMove(mustMove(t, "a1c3")))
	require.Equal(t, 2, b.Jumps(), "consecutive jumps accumulate")

	require.NoError(t, b.MakeMove(mustMove(t, "c5c4")))
	require.Equal(t, 0, b.Jumps(), "an extend resets the jump count")
}

func TestConversion(t *testing.T) {
	b := NewEmptyBoard()
	b.Put('c', '3', Red)
	b.Put('d', '4', Blue)
	b.Put('d', '5', Blue)
	b.Put('g', '7', Blue)

	require.NoError(t, b.MakeMove(mustMove(t, "c3c4")))

	require.Equal(t, Red, b.Get(Index('d', '4')), "adjacent enemy converted")
	require.Equal(t, Red, b.Get(Index('d', '5')), "adjacent enemy converted")
	require.Equal(t, Blue, b.Get(Index('g', '7')), "distant enemy untouched")
	require.Equal(t, 4, b.PieceCount(Red))
	require.Equal(t, 1, b.PieceCount(Blue))
}

func TestLegalMove(t *testing.T) {
	b := NewBoard()

	require.True(t, b.LegalMove(mustMove(t, "a7a6")))
	require.True(t, b.LegalMove(mustMove(t, "a7c5")))
	require.False(t, b.LegalMove(mustMove(t, "a1a2")), "source is not the mover's piece")
	require.False(t, b.LegalMove(mustMove(t, "d4d5")), "source is empty")
	require.False(t, b.LegalMove(mustMove(t, "a7d4")), "distance exceeds a jump")
	require.False(t, b.LegalMove(NewMove('a', '7', 'a', '7')), "zero-distance move")
	require.False(t, b.LegalMove(NewMove('f', '8', 'f', '7')), "coordinates out of range")
	require.False(t, b.LegalMove(Pass()), "pass while relocation moves exist")

	err := b.MakeMove(mustMove(t, "a1a2"))
	require.Error(t, err)
	require.Equal(t, 2, b.PieceCount(Blue), "rejected move leaves the board unchanged")
	require.Equal(t, Red, b.WhoseMove())
}

func TestPassWhenNoMoves(t *testing.T) {
	b := noMoveBoard()

	require.False(t, b.CanMove(Red))
	require.False(t, b.CanMove(Blue))
	require.True(t, b.LegalMove(Pass()))

	require.NoError(t, b.MakeMove(Pass()))
	require.Equal(t, Blue, b.WhoseMove())
}

func TestWinner(t *testing.T) {
	t.Run("side with no pieces loses", func(t *testing.T) {
		b := NewEmptyBoard()
		b.Put('d', '4', Red)

		winner, over := b.Winner()
		require.True(t, over)
		require.Equal(t, Red, winner)
	})

	t.Run("neither side can move, majority wins", func(t *testing.T) {
		b := noMoveBoard()
		b.Put('b', '1', Red) // replaces a block with a second red piece

		// b1's window still has no empty cell
		require.False(t, b.CanMove(Red))
		winner, over := b.Winner()
		require.True(t, over)
		require.Equal(t, Red, winner)
	})

	t.Run("neither side can move, equal counts tie", func(t *testing.T) {
		b := noMoveBoard()

		winner, over := b.Winner()
		require.True(t, over)
		require.Equal(t, Empty, winner)
	})

	t.Run("jump limit ends the game", func(t *testing.T) {
		b := NewBoard()
		b.SetJumps(JumpLimit)

		winner, over := b.Winner()
		require.True(t, over)
		require.Equal(t, Empty, winner, "equal material ties at the jump limit")
	})

	t.Run("ongoing game has no winner", func(t *testing.T) {
		b := NewBoard()

		winner, over := b.Winner()
		require.False(t, over)
		require.Equal(t, Empty, winner)
	})
}

func TestSetBlock(t *testing.T) {
	b := NewBoard()

	require.NoError(t, b.SetBlock('c', '2'))

	for _, cell := range []string{"c2", "e2", "c6", "e6"} {
		require.Equal(t, Blocked, b.Get(Index(cell[0], cell[1])),
			"reflection %s should be blocked", cell)
	}

	require.Error(t, b.SetBlock('a', '1'), "cannot block an occupied cell")
	require.Error(t, b.SetBlock('h', '1'))
}

func TestCopyIsolation(t *testing.T) {
	b := NewBoard()
	c := b.Copy()

	require.NoError(t, c.MakeMove(mustMove(t, "a7a6")))

	require.Equal(t, 3, c.PieceCount(Red))
	require.Equal(t, 2, b.PieceCount(Red), "original unaffected by the copy's move")
	require.Equal(t, Empty, b.Get(Index('a', '6')))
	require.Equal(t, Red, b.WhoseMove())
}

func TestString(t *testing.T) {
	b := NewBoard()
	got := b.String()

	require.Contains(t, got, "r - - - - - b") // row 7
	require.Contains(t, got, "b - - - - - r") // row 1
}
