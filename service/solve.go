package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	dmn "github.com/ukramer/maze-solver-dfs/domain"
	"github.com/ukramer/maze-solver-dfs/maze"
	"github.com/ukramer/maze-solver-dfs/service/i"
)

// SolveService runs one maze submission end to end: cache lookup, solve
// lock, parse, depth-first search, persistence.
type SolveService struct {
	solutionRepo i.SolutionRepo
	userRepo     i.UserRepo
	cache        i.SolutionCache
	locker       i.SolveLocker
	logger       *log.Logger
}

// SolveConfig holds the dependencies of a SolveService.
type SolveConfig struct {
	SolutionRepo i.SolutionRepo
	UserRepo     i.UserRepo
	Cache        i.SolutionCache
	Locker       i.SolveLocker
	Logger       *log.Logger
}

// NewSolveService creates a SolveService from its dependencies.
func NewSolveService(c *SolveConfig) (*SolveService, error) {
	return &SolveService{
		solutionRepo: c.SolutionRepo,
		userRepo:     c.UserRepo,
		cache:        c.Cache,
		locker:       c.Locker,
		logger:       c.Logger,
	}, nil
}

// Solve resolves a maze submission. Identical maze text (same digest)
// is answered from the cache; concurrent submissions of the same maze
// are serialized behind a per-digest lock so the search runs once.
// A maze with no route from start to end produces a record with
// Solvable false, which is a normal outcome.
func (s *SolveService) Solve(ctx context.Context, mazeText string, requestedBy uuid.UUID) (*dmn.Solution, error) {
	digest := dmn.DigestMaze(mazeText)

	if solution := s.fromCache(ctx, digest); solution != nil {
		return solution, nil
	}

	release, err := s.locker.Acquire(ctx, digest)
	if err != nil {
		// Lock failure falls back to an unlocked solve.
		s.logger.Printf("error while acquiring solve lock for %s: %s", digest, err.Error())
	} else {
		defer release()
		// A concurrent holder may have finished while we waited.
		if solution := s.fromCache(ctx, digest); solution != nil {
			return solution, nil
		}
	}

	grid, err := maze.Parse(mazeText)
	if err != nil {
		return nil, err
	}

	solutionConfig := dmn.SolutionConfig{
		ID:          uuid.New(),
		MazeText:    mazeText,
		RequestedBy: requestedBy,
	}
	if path, ok := maze.Solve(grid); ok {
		solutionConfig.Solvable = true
		solutionConfig.Path = path
		solutionConfig.Directions = path.Directions()
		solutionConfig.Rendered = grid.RenderWithPath(path)
	}

	solution := dmn.NewSolution(solutionConfig)
	if err := s.solutionRepo.Save(solution); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, solution); err != nil {
		s.logger.Printf("error while caching solution %s: %s", solution.ID, err.Error())
	}
	s.recordSolve(requestedBy)

	return solution, nil
}

// SolutionByID retrieves a previously stored solve record.
func (s *SolveService) SolutionByID(id uuid.UUID) (*dmn.Solution, error) {
	return s.solutionRepo.ByID(id)
}

// recordSolve bumps the requesting user's solve counter. Losing the
// bump never fails the solve itself.
func (s *SolveService) recordSolve(requestedBy uuid.UUID) {
	user, err := s.userRepo.ByID(requestedBy)
	if err != nil {
		s.logger.Printf("error while loading user %s: %s", requestedBy, err.Error())
		return
	}
	user.SolveCount++
	if err := s.userRepo.Save(user); err != nil {
		s.logger.Printf("error while updating user %s: %s", requestedBy, err.Error())
	}
}

// fromCache returns the cached record for a digest, or nil. Cache errors
// are logged and treated as misses.
func (s *SolveService) fromCache(ctx context.Context, digest string) *dmn.Solution {
	solution, err := s.cache.Get(ctx, digest)
	if err != nil {
		s.logger.Printf("error while reading solution cache for %s: %s", digest, err.Error())
		return nil
	}
	return solution
}
