package game

// Group is one maximal 4-connected set of same-player stones together
// with its cached set of liberties (empty points orthogonally adjacent
// to at least one stone). The liberty count is maintained on every
// mutation rather than recomputed by scanning.
type Group struct {
	elements  []Point
	liberties map[Point]struct{}
	libCount  int
}

// NewGroup creates a singleton group containing one stone and no
// liberties yet; callers follow up with ScanLiberties.
func NewGroup(p Point) *Group {
	return &Group{
		elements:  []Point{p},
		liberties: make(map[Point]struct{}),
	}
}

// Copy returns a group sharing no storage with the receiver.
func (g *Group) Copy() *Group {
	elements := make([]Point, len(g.elements))
	copy(elements, g.elements)

	liberties := make(map[Point]struct{}, len(g.liberties))
	for p := range g.liberties {
		liberties[p] = struct{}{}
	}

	return &Group{
		elements:  elements,
		liberties: liberties,
		libCount:  g.libCount,
	}
}

// AddStone appends a stone to the group. The caller guarantees the
// point is not already an element.
func (g *Group) AddStone(p Point) {
	g.elements = append(g.elements, p)
}

// AddLiberty inserts a liberty, counting it only if it was not already
// present. The same empty point reached from two stones of the group
// must not count twice.
func (g *Group) AddLiberty(p Point) {
	if _, ok := g.liberties[p]; ok {
		return
	}
	g.liberties[p] = struct{}{}
	g.libCount++
}

// RemoveLiberty drops a liberty if present. Removing an absent liberty
// is a no-op: a neighbor direction may be shared between groups that
// never held it.
func (g *Group) RemoveLiberty(p Point) {
	if _, ok := g.liberties[p]; !ok {
		return
	}
	delete(g.liberties, p)
	g.libCount--
}

// ScanLiberties adds every empty in-bounds orthogonal neighbor of p as
// a liberty. It only ever adds: liberties lost to newly placed stones
// are removed by the board, via RemoveLiberty on the affected groups.
func (g *Group) ScanLiberties(p Point, board [][]Cell) {
	size := len(board)
	if p.Row > 0 && board[p.Row-1][p.Col] == Empty {
		g.AddLiberty(Point{p.Row - 1, p.Col})
	}
	if p.Row+1 < size && board[p.Row+1][p.Col] == Empty {
		g.AddLiberty(Point{p.Row + 1, p.Col})
	}
	if p.Col > 0 && board[p.Row][p.Col-1] == Empty {
		g.AddLiberty(Point{p.Row, p.Col - 1})
	}
	if p.Col+1 < size && board[p.Row][p.Col+1] == Empty {
		g.AddLiberty(Point{p.Row, p.Col + 1})
	}
}

// MergeFrom absorbs another group's stones and liberties. Liberties go
// through AddLiberty so shared ones are not double counted. It returns
// the absorbed stones so the caller can relabel them on the grid.
func (g *Group) MergeFrom(other *Group) []Point {
	g.elements = append(g.elements, other.elements...)
	for p := range other.liberties {
		g.AddLiberty(p)
	}
	return other.elements
}

// Liberties returns the cached liberty count.
func (g *Group) Liberties() int {
	return g.libCount
}

// Elements returns the group's stones. The slice is owned by the
// group and must not be modified.
func (g *Group) Elements() []Point {
	return g.elements
}

// HasLiberty reports whether p is currently a liberty of the group.
func (g *Group) HasLiberty(p Point) bool {
	_, ok := g.liberties[p]
	return ok
}
