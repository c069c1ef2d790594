package maze

import (
	"fmt"
	"strings"
)

// StructuralError reports maze text that does not form a valid grid:
// ragged rows, unknown symbols, or a start/end count other than one each.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "invalid maze: " + e.Reason
}

// OutOfBoundsError reports a lookup outside the grid. Callers that stick
// to Neighbors never trigger it; seeing one means a broken caller.
type OutOfBoundsError struct {
	Pos Position
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) outside grid", e.Pos.Row, e.Pos.Col)
}

// Grid is a parsed rectangular maze. It is read-only after Parse.
type Grid struct {
	width  int
	height int
	cells  [][]Kind
	start  Position
	end    Position
}

// Parse converts maze text into a Grid. One line per row, one character
// per column; the grid must be rectangular and contain exactly one 'A'
// and one 'B'. Trailing blank lines are stripped so a final newline never
// fails validation.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, &StructuralError{Reason: "empty grid"}
	}

	g := &Grid{
		height: len(lines),
		width:  len([]rune(lines[0])),
		cells:  make([][]Kind, len(lines)),
	}
	if g.width == 0 {
		return nil, &StructuralError{Reason: "empty grid"}
	}

	var startCount, endCount int
	for r, line := range lines {
		symbols := []rune(line)
		if len(symbols) != g.width {
			return nil, &StructuralError{
				Reason: fmt.Sprintf("row %d has %d columns, want %d", r, len(symbols), g.width),
			}
		}

		row := make([]Kind, g.width)
		for c, symbol := range symbols {
			kind, ok := symbolKinds[symbol]
			if !ok {
				return nil, &StructuralError{
					Reason: fmt.Sprintf("unrecognized symbol %q at row %d col %d", symbol, r, c),
				}
			}
			row[c] = kind

			switch kind {
			case Start:
				g.start = Position{Row: r, Col: c}
				startCount++
			case End:
				g.end = Position{Row: r, Col: c}
				endCount++
			}
		}
		g.cells[r] = row
	}

	if startCount != 1 {
		return nil, &StructuralError{Reason: fmt.Sprintf("want exactly one start cell, got %d", startCount)}
	}
	if endCount != 1 {
		return nil, &StructuralError{Reason: fmt.Sprintf("want exactly one end cell, got %d", endCount)}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the position of the unique start cell.
func (g *Grid) Start() Position { return g.start }

// End returns the position of the unique end cell.
func (g *Grid) End() Position { return g.end }

func (g *Grid) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// KindAt returns the kind of the cell at pos.
func (g *Grid) KindAt(pos Position) (Kind, error) {
	if !g.inBounds(pos) {
		return 0, &OutOfBoundsError{Pos: pos}
	}
	return g.cells[pos.Row][pos.Col], nil
}

// CellAt returns the full cell at pos.
func (g *Grid) CellAt(pos Position) (Cell, error) {
	kind, err := g.KindAt(pos)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Row: pos.Row, Col: pos.Col, Kind: kind}, nil
}

// Neighbors returns the orthogonally adjacent positions of pos that are
// inside the grid and not walls, probed north, east, south, west.
func (g *Grid) Neighbors(pos Position) []Position {
	result := make([]Position, 0, len(directions))
	for _, d := range directions {
		neighbor := Position{Row: pos.Row + d.dRow, Col: pos.Col + d.dCol}
		if !g.inBounds(neighbor) {
			continue
		}
		if g.cells[neighbor.Row][neighbor.Col] == Wall {
			continue
		}
		result = append(result, neighbor)
	}
	return result
}

// String renders the grid back to text using canonical symbols.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, kind := range row {
			b.WriteRune(kind.Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderWithPath renders the grid with each intermediate path cell
// replaced by the letter of the move leaving it. Start and end keep
// their own symbols.
func (g *Grid) RenderWithPath(path Path) string {
	overlay := make(map[Position]byte, len(path))
	for i := 0; i+1 < len(path); i++ {
		if letter, ok := stepLetter(path[i], path[i+1]); ok && i > 0 {
			overlay[path[i]] = letter
		}
	}

	var b strings.Builder
	for r, row := range g.cells {
		for c, kind := range row {
			if letter, ok := overlay[Position{Row: r, Col: c}]; ok {
				b.WriteByte(letter)
				continue
			}
			b.WriteRune(kind.Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
