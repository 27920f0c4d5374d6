package game

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
)

type StateHash uint64

// drawFlag memoizes the outcome of the last terminal test on a state.
type drawFlag int8

const (
	drawUnknown drawFlag = iota - 1 // terminal test not yet run
	drawNone                        // evaluated, no draw
	drawFound                       // evaluated, terminal draw
)

// groupArena holds one player's live groups. Ids for a player advance
// by two, so group id n lives at slot (n-player)/2 and lookups are a
// single index. Slots of merged groups are set to nil instead of being
// compacted, so ids on the group grid stay valid.
type groupArena struct {
	player int
	slots  []*Group
}

func (a groupArena) get(id int) *Group {
	return a.slots[(id-a.player)/2]
}

func (a *groupArena) remove(id int) {
	a.slots[(id-a.player)/2] = nil
}

// each calls fn for every live group with its id.
func (a groupArena) each(fn func(id int, g *Group)) {
	for i, g := range a.slots {
		if g != nil {
			fn(a.player+2*i, g)
		}
	}
}

func (a groupArena) copy() groupArena {
	slots := make([]*Group, len(a.slots))
	for i, g := range a.slots {
		if g != nil {
			slots[i] = g.Copy()
		}
	}
	return groupArena{player: a.player, slots: slots}
}

// GameState is the full board state: the occupancy grid, a parallel
// grid mapping each stone to its group id (0 = no group), the live
// groups of both players, and the player to move. States get
// persistent semantics at the rules layer: Play copies first and only
// the fresh copy is mutated.
type GameState struct {
	Size int

	player     int
	board      [][]Cell
	groupBoard [][]int
	groups     [2]groupArena
	nextID     [2]int
	draw       drawFlag
}

// NewGameState builds a state from an initial square board and labels
// every connected component with exact liberty sets in one pass. The
// input board is copied, not retained.
func NewGameState(player int, board [][]Cell) *GameState {
	size := len(board)
	s := &GameState{
		Size:       size,
		player:     player,
		board:      make([][]Cell, size),
		groupBoard: make([][]int, size),
		groups:     [2]groupArena{{player: 1}, {player: 2}},
		nextID:     [2]int{1, 2},
		draw:       drawUnknown,
	}
	for i := range board {
		s.board[i] = make([]Cell, size)
		copy(s.board[i], board[i])
		s.groupBoard[i] = make([]int, size)
	}
	s.initializeGroups()
	return s
}

// initializeGroups scans the board in row-major order. Each occupied
// cell joins the group of its already-labeled top neighbor, then its
// left neighbor; when both exist and differ, the left group is merged
// into the top one and its cells relabeled; with neither, a fresh
// group is allocated. Every cell and neighbor check runs once, so
// labeling is linear in the board size.
func (s *GameState) initializeGroups() {
	for row := 0; row < s.Size; row++ {
		for col := 0; col < s.Size; col++ {
			cell := s.board[row][col]
			if cell == Empty {
				continue
			}
			player := int(cell)
			arena := &s.groups[player-1]

			if row > 0 {
				top := s.groupBoard[row-1][col]
				if top != 0 && s.board[row-1][col] == cell {
					s.groupBoard[row][col] = top
					arena.get(top).AddStone(Point{row, col})
				}
			}

			if col > 0 {
				left := s.groupBoard[row][col-1]
				if left != 0 && s.board[row][col-1] == cell {
					current := s.groupBoard[row][col]
					switch {
					case current != 0 && left != current:
						// The stone bridges the top and left groups.
						g := arena.get(current)
						absorbed := g.MergeFrom(arena.get(left))
						arena.remove(left)
						for _, p := range absorbed {
							s.groupBoard[p.Row][p.Col] = current
						}
					case current == 0:
						s.groupBoard[row][col] = left
						arena.get(left).AddStone(Point{row, col})
					}
				}
			}

			if s.groupBoard[row][col] == 0 {
				s.groupBoard[row][col] = s.allocate(player, Point{row, col})
			}

			arena.get(s.groupBoard[row][col]).ScanLiberties(Point{row, col}, s.board)
		}
	}
}

// allocate creates a singleton group for player and returns its id.
func (s *GameState) allocate(player int, p Point) int {
	id := s.nextID[player-1]
	s.nextID[player-1] += 2
	s.groups[player-1].slots = append(s.groups[player-1].slots, NewGroup(p))
	return id
}

func (s *GameState) neighborsOf(p Point) []Point {
	neighbors := make([]Point, 0, 4)
	if p.Row > 0 {
		neighbors = append(neighbors, Point{p.Row - 1, p.Col})
	}
	if p.Row+1 < s.Size {
		neighbors = append(neighbors, Point{p.Row + 1, p.Col})
	}
	if p.Col > 0 {
		neighbors = append(neighbors, Point{p.Row, p.Col - 1})
	}
	if p.Col+1 < s.Size {
		neighbors = append(neighbors, Point{p.Row, p.Col + 1})
	}
	return neighbors
}

// applyMove places a stone for player on the empty cell (row, col),
// 0-indexed, and incrementally restores every invariant: adjacent
// groups lose the point as a liberty, touching friendly groups merge
// into one, the turn passes, and the memoized terminal flag resets.
func (s *GameState) applyMove(player, row, col int) {
	p := Point{row, col}

	// Placing a stone removes the point from the liberties of every
	// adjacent group, friend or foe. Friendly ones are collected for
	// merging; two neighbors may name the same group.
	merge := make([]int, 0, 4)
	for _, n := range s.neighborsOf(p) {
		id := s.groupBoard[n.Row][n.Col]
		if id == 0 {
			continue
		}
		owner := OwnerOf(id)
		s.groups[owner-1].get(id).RemoveLiberty(p)
		if owner == player && !containsID(merge, id) {
			merge = append(merge, id)
		}
	}

	s.board[row][col] = Cell(player)

	if len(merge) == 0 {
		id := s.allocate(player, p)
		s.groupBoard[row][col] = id
		s.groups[player-1].get(id).ScanLiberties(p, s.board)
	} else {
		// Smallest id survives so merges are reproducible.
		sort.Ints(merge)
		id := merge[0]
		g := s.groups[player-1].get(id)
		g.AddStone(p)
		s.groupBoard[row][col] = id
		g.ScanLiberties(p, s.board)

		for _, absorbedID := range merge[1:] {
			absorbed := g.MergeFrom(s.groups[player-1].get(absorbedID))
			s.groups[player-1].remove(absorbedID)
			for _, q := range absorbed {
				s.groupBoard[q.Row][q.Col] = id
			}
		}
	}

	s.player = Opponent(player)
	s.draw = drawUnknown
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Copy returns a state sharing no mutable structure with the receiver:
// fresh grids and fresh Group values. A search frontier holds many
// states at once and mutates each independently, so any sharing here
// would corrupt sibling states.
func (s *GameState) Copy() *GameState {
	board := make([][]Cell, s.Size)
	groupBoard := make([][]int, s.Size)
	for i := 0; i < s.Size; i++ {
		board[i] = make([]Cell, s.Size)
		copy(board[i], s.board[i])
		groupBoard[i] = make([]int, s.Size)
		copy(groupBoard[i], s.groupBoard[i])
	}

	return &GameState{
		Size:       s.Size,
		player:     s.player,
		board:      board,
		groupBoard: groupBoard,
		groups:     [2]groupArena{s.groups[0].copy(), s.groups[1].copy()},
		nextID:     s.nextID,
		draw:       s.draw,
	}
}

// Hash returns an FNV-64a digest of the position and the player to
// move, for callers keeping transposition tables.
func (s *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.player))
	for _, row := range s.board {
		binary.Write(hasher, binary.LittleEndian, row)
	}

	return StateHash(hasher.Sum64())
}
