package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("empty 2x2 board offers every cell", func(t *testing.T) {
		s := NewGameState(1, emptyBoard(2))

		moves := s.LegalMoves()

		require.Len(t, moves, 4, "empty neighbors never block a placement")
		require.Contains(t, moves, Move{Player: 1, Row: 1, Col: 1})
		require.Contains(t, moves, Move{Player: 1, Row: 2, Col: 2})
	})

	t.Run("filling the last liberty of an own group is not offered", func(t *testing.T) {
		s := NewGameState(1, boardFromRows(
			"11",
			"10",
		))

		require.Empty(t, s.LegalMoves(), "(2,2) would strip the mover's own single-liberty group to zero")
	})

	t.Run("capturing an opponent group in atari is offered", func(t *testing.T) {
		s := NewGameState(1, boardFromRows(
			"12",
			"00",
		))

		moves := s.LegalMoves()

		require.Contains(t, moves, Move{Player: 1, Row: 2, Col: 2}, "(2,2) is the opponent group's last liberty")
	})

	t.Run("friendly group with spare liberties allows placement", func(t *testing.T) {
		s := NewGameState(1, boardFromRows(
			"100",
			"000",
			"000",
		))

		require.Contains(t, s.LegalMoves(), Move{Player: 1, Row: 1, Col: 2})
	})
}

func TestTerminalTest(t *testing.T) {
	t.Run("single live stone is not terminal", func(t *testing.T) {
		s := NewGameState(1, boardFromRows(
			"10",
			"00",
		))

		require.False(t, s.TerminalTest())
		require.Equal(t, drawNone, s.draw)
	})

	t.Run("zero-liberty group is terminal but not a draw", func(t *testing.T) {
		s := NewGameState(2, boardFromRows(
			"12",
			"21",
		))

		require.True(t, s.TerminalTest())
		require.Equal(t, drawNone, s.draw, "a capture must not be flagged as a draw")
	})

	t.Run("no legal move is a terminal draw", func(t *testing.T) {
		s := NewGameState(1, boardFromRows(
			"11",
			"10",
		))

		require.True(t, s.TerminalTest())
		require.Equal(t, drawFound, s.draw)
	})

	t.Run("repeated calls agree", func(t *testing.T) {
		s := NewGameState(1, boardFromRows(
			"11",
			"10",
		))

		first := s.TerminalTest()
		firstFlag := s.draw
		second := s.TerminalTest()

		require.Equal(t, first, second)
		require.Equal(t, firstFlag, s.draw)
	})
}

func TestPlay(t *testing.T) {
	t.Run("capture ends the game with a win for the capturer", func(t *testing.T) {
		// Player 2's stone has (2,2) as its only liberty.
		s := NewGameState(1, boardFromRows(
			"12",
			"00",
		))

		next, err := s.Play(Move{Player: 1, Row: 2, Col: 2})
		require.NoError(t, err)

		require.True(t, next.TerminalTest())
		require.Equal(t, 1.0, next.Utility(1))
		require.Equal(t, -1.0, next.Utility(2))
	})

	t.Run("turn passes to the opponent", func(t *testing.T) {
		s := NewGameState(1, emptyBoard(3))

		next, err := s.Play(Move{Player: 1, Row: 2, Col: 2})
		require.NoError(t, err)

		require.Equal(t, 2, next.ToMove())
		require.Equal(t, "Player2", next.Player())
		require.Equal(t, 1, s.ToMove(), "the source state keeps its turn marker")
	})

	t.Run("terminal cache resets on the successor", func(t *testing.T) {
		s := NewGameState(1, emptyBoard(3))
		require.False(t, s.TerminalTest())

		next, err := s.Play(Move{Player: 1, Row: 1, Col: 1})
		require.NoError(t, err)

		require.Equal(t, drawUnknown, next.draw)
	})

	t.Run("out-of-turn player is rejected", func(t *testing.T) {
		s := NewGameState(1, emptyBoard(3))

		_, err := s.Play(Move{Player: 2, Row: 1, Col: 1})

		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("out-of-bounds cell is rejected", func(t *testing.T) {
		s := NewGameState(1, emptyBoard(3))

		_, err := s.Play(Move{Player: 1, Row: 4, Col: 1})
		require.ErrorIs(t, err, ErrInvalidMove)

		_, err = s.Play(Move{Player: 1, Row: 0, Col: 2})
		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("occupied cell is rejected before any mutation", func(t *testing.T) {
		s := NewGameState(1, boardFromRows(
			"100",
			"000",
			"000",
		))
		before := s.Hash()

		_, err := s.Play(Move{Player: 1, Row: 1, Col: 1})

		require.ErrorIs(t, err, ErrInvalidMove)
		require.Equal(t, before, s.Hash())
	})
}
