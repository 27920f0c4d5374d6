package game

// noGroups stands in for the minimum liberty count of a player with no
// groups on the board. Large but finite, so the differential stays
// well-defined when both players are absent.
const noGroups = 9999

// Utility scores the state for player in [-1, 1]: 0 for a draw, +1
// for a win (some opponent group at zero liberties), -1 for a loss,
// and otherwise the normalized liberty differential between the two
// players' weakest groups, a continuous heuristic in (-1, 1).
//
// When both players hold a zero-liberty group at once, the move that
// just happened captured the opponent: the player who is not about to
// move wins.
func (s *GameState) Utility(player int) float64 {
	if s.draw == drawUnknown {
		s.TerminalTest()
	}
	if s.draw == drawFound {
		return 0
	}

	ownMin, _ := s.libertyStats(player)
	otherMin, _ := s.libertyStats(Opponent(player))

	if ownMin == 0 && otherMin == 0 {
		if s.player != player {
			return 1
		}
		return -1
	}

	if otherMin == 0 {
		return 1
	}
	if ownMin == 0 {
		return -1
	}

	return normalize(float64(ownMin), float64(otherMin))
}

// libertyStats returns the minimum and total liberty counts across a
// player's groups.
func (s *GameState) libertyStats(player int) (minimum, total int) {
	minimum = noGroups
	s.groups[player-1].each(func(_ int, g *Group) {
		total += g.Liberties()
		if g.Liberties() < minimum {
			minimum = g.Liberties()
		}
	})
	return minimum, total
}

// normalize converts two values into a single score between -1 and 1.
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
