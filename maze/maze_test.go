package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exact-cover/maze"
)

// openWalls counts carved walls across the grid.
func openWalls(m *maze.Maze) int {
	open := 0
	for _, c := range m.Cells {
		if !c.Right {
			open++
		}
		if !c.Down {
			open++
		}
	}

	return open
}

// walk follows path from the entrance, failing on any move through a
// standing wall or out of bounds, and returns the final cell.
func walk(t *testing.T, m *maze.Maze, path []maze.Direction) int {
	t.Helper()

	x, y := 0, 0
	for _, step := range path {
		cell := y*m.Width + x
		switch step {
		case maze.Right:
			require.False(t, m.Cells[cell].Right, "moved through right wall at %d", cell)
			x++
		case maze.Down:
			require.False(t, m.Cells[cell].Down, "moved through bottom wall at %d", cell)
			y++
		case maze.Left:
			require.False(t, m.Cells[cell-1].Right, "moved through left wall at %d", cell)
			x--
		case maze.Up:
			require.False(t, m.Cells[cell-m.Width].Down, "moved through top wall at %d", cell)
			y--
		}
		require.True(t, x >= 0 && x < m.Width && y >= 0 && y < m.Height, "walked out of bounds")
	}

	return y*m.Width + x
}

// TestGenerateValidation rejects degenerate dimensions.
func TestGenerateValidation(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		_, err := maze.Generate(dims[0], dims[1])
		require.ErrorIs(t, err, maze.ErrZeroDimension, "Generate(%d,%d)", dims[0], dims[1])
	}
}

// TestGenerateSpanningTree: a perfect maze opens exactly w·h−1 walls.
func TestGenerateSpanningTree(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 2}, {5, 4}, {12, 3}, {16, 16}} {
		m, err := maze.Generate(dims[0], dims[1])
		require.NoError(t, err)
		require.Len(t, m.Cells, dims[0]*dims[1])
		require.Equal(t, dims[0]*dims[1]-1, openWalls(m), "open walls of a spanning tree over %v", dims)
	}
}

// TestGenerateDeterministic: same seed, same maze; different seed,
// (practically always) a different maze.
func TestGenerateDeterministic(t *testing.T) {
	a, err := maze.Generate(16, 16, maze.WithSeed(7))
	require.NoError(t, err)
	b, err := maze.Generate(16, 16, maze.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a.Cells, b.Cells)

	// Seed 0 is the documented default.
	c, err := maze.Generate(16, 16)
	require.NoError(t, err)
	d, err := maze.Generate(16, 16, maze.WithSeed(0))
	require.NoError(t, err)
	require.Equal(t, c.Cells, d.Cells)
}

// TestSolvePath: the solution walks only open walls, stays in bounds
// and ends at the exit cell in the bottom row.
func TestSolvePath(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		for _, dims := range [][2]int{{1, 1}, {2, 2}, {8, 8}, {12, 3}} {
			m, err := maze.Generate(dims[0], dims[1], maze.WithSeed(seed))
			require.NoError(t, err)
			require.Equal(t, -1, m.Exit(), "exit unset before Solve")

			path := m.Solve()
			end := walk(t, m, path)
			require.Equal(t, m.Exit(), end, "path must end at the exit")
			require.Equal(t, m.Height-1, end/m.Width, "exit must be in the bottom row")
			require.False(t, m.Cells[end].Down, "exit wall must be opened")
		}
	}
}

// TestSolveCached: repeated calls return the same path without
// re-carving a second exit.
func TestSolveCached(t *testing.T) {
	m, err := maze.Generate(8, 8, maze.WithSeed(5))
	require.NoError(t, err)

	first := m.Solve()
	walls := openWalls(m)
	second := m.Solve()
	require.Equal(t, first, second)
	require.Equal(t, walls, openWalls(m), "second Solve must not open another wall")
}

// TestDirectionString covers the Stringer.
func TestDirectionString(t *testing.T) {
	require.Equal(t, "right", maze.Right.String())
	require.Equal(t, "down", maze.Down.String())
	require.Equal(t, "left", maze.Left.String())
	require.Equal(t, "up", maze.Up.String())
	require.Equal(t, "invalid", maze.Direction(42).String())
}
