package game

// Cell is the content of one board point: Empty, or the number of the
// player whose stone sits there.
type Cell int8

const Empty Cell = 0

// Point is a 0-indexed board coordinate.
type Point struct {
	Row int
	Col int
}

// Opponent returns the other player. Players are 1 and 2.
func Opponent(player int) int {
	return 3 - player
}

// OwnerOf recovers a group's player from the id parity: odd ids belong
// to player 1, even ids to player 2. Id 0 means no group.
func OwnerOf(id int) int {
	if id%2 == 0 {
		return 2
	}
	return 1
}
