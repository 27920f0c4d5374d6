package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupAddLiberty(t *testing.T) {
	t.Run("new liberty increments the count", func(t *testing.T) {
		g := NewGroup(Point{0, 0})

		g.AddLiberty(Point{0, 1})
		g.AddLiberty(Point{1, 0})

		require.Equal(t, 2, g.Liberties())
	})

	t.Run("repeated liberty does not double count", func(t *testing.T) {
		g := NewGroup(Point{0, 0})

		g.AddLiberty(Point{0, 1})
		g.AddLiberty(Point{0, 1})

		require.Equal(t, 1, g.Liberties(), "the same liberty reached twice must count once")
	})
}

func TestGroupRemoveLiberty(t *testing.T) {
	t.Run("present liberty is removed and uncounted", func(t *testing.T) {
		g := NewGroup(Point{0, 0})
		g.AddLiberty(Point{0, 1})

		g.RemoveLiberty(Point{0, 1})

		require.Equal(t, 0, g.Liberties())
		require.False(t, g.HasLiberty(Point{0, 1}))
	})

	t.Run("absent liberty is a silent no-op", func(t *testing.T) {
		g := NewGroup(Point{0, 0})
		g.AddLiberty(Point{0, 1})

		g.RemoveLiberty(Point{5, 5})

		require.Equal(t, 1, g.Liberties(), "removing a liberty the group never had must not change the count")
	})
}

func TestGroupScanLiberties(t *testing.T) {
	board := boardFromRows(
		"120",
		"000",
		"000",
	)

	t.Run("corner stone sees only in-bounds empty neighbors", func(t *testing.T) {
		g := NewGroup(Point{0, 0})

		g.ScanLiberties(Point{0, 0}, board)

		require.Equal(t, 1, g.Liberties(), "the occupied neighbor (0,1) is not a liberty")
		require.True(t, g.HasLiberty(Point{1, 0}))
	})

	t.Run("interior stone sees all four directions", func(t *testing.T) {
		g := NewGroup(Point{1, 1})

		g.ScanLiberties(Point{1, 1}, board)

		require.Equal(t, 3, g.Liberties(), "(0,1) is occupied; the other three neighbors are empty")
	})
}

func TestGroupMergeFrom(t *testing.T) {
	g := NewGroup(Point{0, 0})
	g.AddLiberty(Point{0, 1})
	g.AddLiberty(Point{1, 0})

	other := NewGroup(Point{2, 0})
	other.AddLiberty(Point{1, 0}) // shared with g
	other.AddLiberty(Point{2, 1})

	absorbed := g.MergeFrom(other)

	require.Equal(t, []Point{{2, 0}}, absorbed, "merge must hand back the absorbed stones for grid relabeling")
	require.ElementsMatch(t, []Point{{0, 0}, {2, 0}}, g.Elements())
	require.Equal(t, 3, g.Liberties(), "the shared liberty (1,0) must not be counted twice")
}
