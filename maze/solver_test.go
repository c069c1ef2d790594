package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidPath checks the structural properties every returned path
// must satisfy: endpoints, orthogonal steps, no repeats, no walls.
func assertValidPath(t *testing.T, g *Grid, path Path) {
	t.Helper()

	require.NotEmpty(t, path)
	assert.Equal(t, g.Start(), path[0])
	assert.Equal(t, g.End(), path[len(path)-1])

	seen := make(map[Position]struct{}, len(path))
	for i, pos := range path {
		_, repeated := seen[pos]
		assert.False(t, repeated, "position %v repeats", pos)
		seen[pos] = struct{}{}

		kind, err := g.KindAt(pos)
		require.NoError(t, err)
		assert.NotEqual(t, Wall, kind)

		if i > 0 {
			prev := path[i-1]
			distance := abs(pos.Row-prev.Row) + abs(pos.Col-prev.Col)
			assert.Equal(t, 1, distance, "steps %v -> %v not adjacent", prev, pos)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestSolve(t *testing.T) {
	t.Run("open 3x3 grid", func(t *testing.T) {
		g, err := Parse("A..\n...\n..B")
		require.NoError(t, err)

		path, ok := Solve(g)
		require.True(t, ok)
		assertValidPath(t, g, path)
		assert.GreaterOrEqual(t, len(path), 5)
	})

	t.Run("corridor with dead ends needs backtracking", func(t *testing.T) {
		g, err := Parse("A.#.B\n#...#\n#.#.#\n#...#\n#####")
		require.NoError(t, err)

		path, ok := Solve(g)
		require.True(t, ok)
		assertValidPath(t, g, path)
	})

	t.Run("separating wall means no path", func(t *testing.T) {
		g, err := Parse("A.#.B\n..#..\n..#..")
		require.NoError(t, err)

		path, ok := Solve(g)
		assert.False(t, ok)
		assert.Nil(t, path)
	})

	t.Run("cycle off the route terminates", func(t *testing.T) {
		// The 3x3 open block on the left is a loop; B is reachable
		// only through the corridor on the right.
		g, err := Parse("...##\nA....\n...#B\n###..")
		require.NoError(t, err)

		path, ok := Solve(g)
		require.True(t, ok)
		assertValidPath(t, g, path)
	})

	t.Run("start equals end yields single position", func(t *testing.T) {
		g := &Grid{
			width:  1,
			height: 1,
			cells:  [][]Kind{{Start}},
		}

		path, ok := Solve(g)
		require.True(t, ok)
		assert.Equal(t, Path{{Row: 0, Col: 0}}, path)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		g, err := Parse("A....\n.##..\n..#.#\n#...B")
		require.NoError(t, err)

		first, firstOK := Solve(g)
		second, secondOK := Solve(g)
		assert.Equal(t, firstOK, secondOK)
		assert.Equal(t, first, second)
	})
}

func TestPathDirections(t *testing.T) {
	g, err := Parse("A.\n.B")
	require.NoError(t, err)

	path, ok := Solve(g)
	require.True(t, ok)

	// North probes first but is out of bounds, east wins.
	assert.Equal(t, "ES", path.Directions())
}

func TestRenderWithPath(t *testing.T) {
	g, err := Parse("A..\n##.\n..B")
	require.NoError(t, err)

	path, ok := Solve(g)
	require.True(t, ok)

	// Only route: east, east, south, south.
	assert.Equal(t, "EESS", path.Directions())
	assert.Equal(t, "AES\n##S\n..B\n", g.RenderWithPath(path))
}
