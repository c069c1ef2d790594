package solveapi

import (
	dmn "github.com/ukramer/maze-solver-dfs/domain"
	"github.com/ukramer/maze-solver-dfs/maze"
)

// SolveRequest carries the maze text to solve.
type SolveRequest struct {
	Maze string `json:"maze" binding:"required"`
}

// SolveResponse describes one solve outcome. Path, directions, and the
// rendered overlay are present only when the maze is solvable.
type SolveResponse struct {
	ID         string          `json:"id"`
	Solvable   bool            `json:"solvable"`
	Path       []maze.Position `json:"path,omitempty"`
	Directions string          `json:"directions,omitempty"`
	Rendered   string          `json:"rendered,omitempty"`
}

func newSolveResponse(solution *dmn.Solution) *SolveResponse {
	return &SolveResponse{
		ID:         solution.ID.String(),
		Solvable:   solution.Solvable,
		Path:       solution.Path,
		Directions: solution.Directions,
		Rendered:   solution.Rendered,
	}
}
