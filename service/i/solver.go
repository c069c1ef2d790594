package i

import (
	"context"

	"github.com/google/uuid"
	dmn "github.com/ukramer/maze-solver-dfs/domain"
)

// MazeSolver accepts maze text, runs the search, and returns the stored
// solve record. An unsolvable maze is a normal record, not an error.
type MazeSolver interface {
	// Solve parses and solves the maze text on behalf of a user.
	// Returns a structural error when the text is not a valid grid.
	Solve(ctx context.Context, mazeText string, requestedBy uuid.UUID) (*dmn.Solution, error)

	// SolutionByID retrieves a previously stored solve record.
	SolutionByID(id uuid.UUID) (*dmn.Solution, error)
}

// SolutionCache is a fast digest-keyed store of recent solve records.
type SolutionCache interface {
	// Get returns the cached record for a digest, or nil on a miss.
	Get(ctx context.Context, digest string) (*dmn.Solution, error)

	// Set stores a record under its digest.
	Set(ctx context.Context, solution *dmn.Solution) error
}

// SolveLocker serializes concurrent solves of the same maze digest so
// identical submissions do not race each other into the repository.
type SolveLocker interface {
	// Acquire takes the lock for a digest and returns its release func.
	Acquire(ctx context.Context, digest string) (func(), error)
}
