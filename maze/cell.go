// Package maze holds the maze grid representation and the depth-first
// path solver.
package maze

// Kind classifies a single grid cell.
type Kind byte

const (
	Wall Kind = iota
	Open
	Start
	End
)

// symbolKinds maps input characters to cell kinds. Adding a new wall or
// floor style is a table change, not a logic change.
var symbolKinds = map[rune]Kind{
	'#': Wall,
	'*': Wall,
	' ': Open,
	'.': Open,
	'A': Start,
	'B': End,
}

// Symbol returns the canonical character for a kind, used when rendering
// a grid back to text.
func (k Kind) Symbol() rune {
	switch k {
	case Wall:
		return '#'
	case Open:
		return '.'
	case Start:
		return 'A'
	case End:
		return 'B'
	}
	return '?'
}

// Position identifies a cell by row and column.
type Position struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

// Cell is a single parsed grid position.
type Cell struct {
	Row  int
	Col  int
	Kind Kind
}

// direction is one orthogonal step with its movement letter.
type direction struct {
	letter byte
	dRow   int
	dCol   int
}

// directions is the fixed probe order: north, east, south, west. Search
// results are deterministic because this order never changes.
var directions = [4]direction{
	{'N', -1, 0},
	{'E', 0, 1},
	{'S', 1, 0},
	{'W', 0, -1},
}
