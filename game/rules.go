package game

import (
	"errors"
	"fmt"
)

// ErrInvalidMove reports a move that names the wrong player or a cell
// that is not an empty, in-bounds point. The state is rejected before
// any mutation occurs.
var ErrInvalidMove = errors.New("invalid move")

// ToMove returns the player who moves next.
func (s *GameState) ToMove() int {
	return s.player
}

// Player returns the player to move in the form engine logs use.
func (s *GameState) Player() string {
	return fmt.Sprintf("Player%d", s.player)
}

// LegalMoves returns the valid moves for the player to move, in
// row-major order with 1-indexed coordinates. An empty cell qualifies
// as soon as any one of its in-bounds neighbors allows placement; the
// remaining neighbors are not checked.
func (s *GameState) LegalMoves() []Move {
	var moves []Move
	for row := 0; row < s.Size; row++ {
		for col := 0; col < s.Size; col++ {
			if s.groupBoard[row][col] != 0 {
				continue
			}
			if (row > 0 && s.allows(row-1, col)) ||
				(row+1 < s.Size && s.allows(row+1, col)) ||
				(col > 0 && s.allows(row, col-1)) ||
				(col+1 < s.Size && s.allows(row, col+1)) {
				moves = append(moves, Move{Player: s.player, Row: row + 1, Col: col + 1})
			}
		}
	}
	return moves
}

// allows reports whether the neighbor at (row, col) lets the player to
// move place next to it. An empty neighbor always does; a friendly
// group does unless the placement would strip it to zero liberties; an
// opponent group does only when the placement captures it. The check
// is local: it reads the neighbor group's current liberty count, not
// the count of the merged group the placement would produce.
func (s *GameState) allows(row, col int) bool {
	id := s.groupBoard[row][col]
	if id == 0 {
		return true
	}

	owner := OwnerOf(id)
	liberties := s.groups[owner-1].get(id).Liberties()

	if owner == s.player && liberties > 1 {
		return true
	}
	if owner != s.player && liberties == 1 {
		return true
	}
	return false
}

// TerminalTest reports whether the game is over: some group of either
// player has been reduced to zero liberties (a capture, which ends the
// game immediately; stones are never removed), or the player to move
// has no legal move, which is a draw. Capture takes priority over the
// draw. The draw flag is memoized on the state.
func (s *GameState) TerminalTest() bool {
	s.draw = drawNone

	for i := range s.groups {
		captured := false
		s.groups[i].each(func(_ int, g *Group) {
			if g.Liberties() == 0 {
				captured = true
			}
		})
		if captured {
			return true
		}
	}

	if len(s.LegalMoves()) == 0 {
		s.draw = drawFound
		return true
	}
	return false
}

// Play returns the state reached by making the move. The receiver is
// cloned first and left untouched, so a search tree can branch without
// corrupting sibling states.
func (s *GameState) Play(m Move) (*GameState, error) {
	if m.Player != s.player {
		return nil, fmt.Errorf("%w: player %d is not to move", ErrInvalidMove, m.Player)
	}
	row, col := m.Row-1, m.Col-1
	if row < 0 || row >= s.Size || col < 0 || col >= s.Size {
		return nil, fmt.Errorf("%w: (%d,%d) is off the board", ErrInvalidMove, m.Row, m.Col)
	}
	if s.board[row][col] != Empty {
		return nil, fmt.Errorf("%w: (%d,%d) is occupied", ErrInvalidMove, m.Row, m.Col)
	}

	next := s.Copy()
	next.applyMove(m.Player, row, col)
	return next, nil
}
