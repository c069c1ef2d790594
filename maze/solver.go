package maze

import "strings"

// Path is an ordered sequence of positions from start to end. Consecutive
// positions differ by one step in one axis.
type Path []Position

// Directions returns the path as movement letters, one of N/E/S/W per
// step (e.g. "SSEEN"). A single-position path yields the empty string.
func (p Path) Directions() string {
	var b strings.Builder
	for i := 1; i < len(p); i++ {
		if letter, ok := stepLetter(p[i-1], p[i]); ok {
			b.WriteByte(letter)
		}
	}
	return b.String()
}

// stepLetter maps one orthogonal step to its movement letter.
func stepLetter(from, to Position) (byte, bool) {
	for _, d := range directions {
		if to.Row-from.Row == d.dRow && to.Col-from.Col == d.dCol {
			return d.letter, true
		}
	}
	return 0, false
}

// frame is one suspended level of the search: a position and the
// neighbors not yet tried from it.
type frame struct {
	neighbors []Position
	next      int
}

// Solve searches the grid depth-first from start to end. It returns the
// first path found in the fixed probe order, or (nil, false) when end is
// unreachable. An unreachable end is an expected outcome, not an error.
//
// Visited marks persist for the whole search, not just the current
// branch. That both terminates search on cyclic layouts and keeps dead
// subgraphs from being re-explored after backtracking.
//
// The search uses an explicit frame stack, so grid size bounds memory
// instead of call depth.
func Solve(g *Grid) (Path, bool) {
	start, end := g.Start(), g.End()
	if start == end {
		return Path{start}, true
	}

	visited := map[Position]struct{}{start: {}}
	path := Path{start}
	stack := []frame{{neighbors: g.Neighbors(start)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.neighbors) {
			// Dead end: abandon this cell and resume its parent.
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}

		neighbor := top.neighbors[top.next]
		top.next++
		if _, seen := visited[neighbor]; seen {
			continue
		}
		visited[neighbor] = struct{}{}
		path = append(path, neighbor)

		if neighbor == end {
			found := make(Path, len(path))
			copy(found, path)
			return found, true
		}
		stack = append(stack, frame{neighbors: g.Neighbors(neighbor)})
	}
	return nil, false
}
