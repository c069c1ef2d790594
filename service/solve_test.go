package service

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmn "github.com/ukramer/maze-solver-dfs/domain"
	"github.com/ukramer/maze-solver-dfs/maze"
)

type fakeSolutionRepo struct {
	byID  map[uuid.UUID]*dmn.Solution
	saves int
}

func newFakeSolutionRepo() *fakeSolutionRepo {
	return &fakeSolutionRepo{byID: make(map[uuid.UUID]*dmn.Solution)}
}

func (r *fakeSolutionRepo) Save(solution *dmn.Solution) error {
	r.byID[solution.ID] = solution
	r.saves++
	return nil
}

func (r *fakeSolutionRepo) ByID(id uuid.UUID) (*dmn.Solution, error) {
	if solution, ok := r.byID[id]; ok {
		return solution, nil
	}
	return nil, errSolutionNotFound
}

func (r *fakeSolutionRepo) ByDigest(digest string) (*dmn.Solution, error) {
	for _, solution := range r.byID {
		if solution.MazeDigest == digest {
			return solution, nil
		}
	}
	return nil, errSolutionNotFound
}

var errSolutionNotFound = assert.AnError

type fakeUserRepo struct {
	users map[uuid.UUID]*dmn.User
}

func (r *fakeUserRepo) Save(user *dmn.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, assert.AnError
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, assert.AnError
}

type fakeCache struct {
	entries map[string]*dmn.Solution
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*dmn.Solution)}
}

func (c *fakeCache) Get(_ context.Context, digest string) (*dmn.Solution, error) {
	if solution, ok := c.entries[digest]; ok {
		c.hits++
		return solution, nil
	}
	return nil, nil
}

func (c *fakeCache) Set(_ context.Context, solution *dmn.Solution) error {
	c.entries[solution.MazeDigest] = solution
	return nil
}

type fakeLocker struct {
	acquired int
	released int
}

func (l *fakeLocker) Acquire(context.Context, string) (func(), error) {
	l.acquired++
	return func() { l.released++ }, nil
}

func newTestSolveService(t *testing.T) (*SolveService, *fakeSolutionRepo, *fakeUserRepo, *fakeCache, *fakeLocker) {
	t.Helper()

	solutionRepo := newFakeSolutionRepo()
	userRepo := &fakeUserRepo{users: make(map[uuid.UUID]*dmn.User)}
	solutionCache := newFakeCache()
	locker := &fakeLocker{}

	svc, err := NewSolveService(&SolveConfig{
		SolutionRepo: solutionRepo,
		UserRepo:     userRepo,
		Cache:        solutionCache,
		Locker:       locker,
		Logger:       log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	return svc, solutionRepo, userRepo, solutionCache, locker
}

func TestSolveService(t *testing.T) {
	requester := uuid.New()

	t.Run("solvable maze is solved, stored, and cached", func(t *testing.T) {
		svc, solutionRepo, userRepo, solutionCache, locker := newTestSolveService(t)
		userRepo.users[requester] = &dmn.User{ID: requester, Username: "solver"}

		solution, err := svc.Solve(context.Background(), "A..\n##.\n..B", requester)
		require.NoError(t, err)

		assert.True(t, solution.Solvable)
		assert.Equal(t, "EESS", solution.Directions)
		assert.Equal(t, maze.Position{Row: 0, Col: 0}, solution.Path[0])
		assert.Equal(t, maze.Position{Row: 2, Col: 2}, solution.Path[len(solution.Path)-1])
		assert.Equal(t, 1, solutionRepo.saves)
		assert.Equal(t, 1, locker.acquired)
		assert.Equal(t, 1, locker.released)
		assert.Equal(t, 1, userRepo.users[requester].SolveCount)
		assert.NotNil(t, solutionCache.entries[solution.MazeDigest])
	})

	t.Run("unsolvable maze is a normal outcome", func(t *testing.T) {
		svc, solutionRepo, _, _, _ := newTestSolveService(t)

		solution, err := svc.Solve(context.Background(), "A#B", requester)
		require.NoError(t, err)

		assert.False(t, solution.Solvable)
		assert.Empty(t, solution.Path)
		assert.Empty(t, solution.Directions)
		assert.Equal(t, 1, solutionRepo.saves)
	})

	t.Run("repeat submission answers from cache", func(t *testing.T) {
		svc, solutionRepo, _, solutionCache, _ := newTestSolveService(t)

		first, err := svc.Solve(context.Background(), "A.B", requester)
		require.NoError(t, err)
		second, err := svc.Solve(context.Background(), "A.B", requester)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, solutionRepo.saves)
		assert.Equal(t, 1, solutionCache.hits)
	})

	t.Run("equivalent line endings share a digest", func(t *testing.T) {
		svc, solutionRepo, _, _, _ := newTestSolveService(t)

		first, err := svc.Solve(context.Background(), "A.\n.B", requester)
		require.NoError(t, err)
		second, err := svc.Solve(context.Background(), "A.\r\n.B\r\n", requester)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, solutionRepo.saves)
	})

	t.Run("structural errors surface to the caller", func(t *testing.T) {
		svc, solutionRepo, _, _, _ := newTestSolveService(t)

		_, err := svc.Solve(context.Background(), "A..\n.B", requester)

		var structural *maze.StructuralError
		require.ErrorAs(t, err, &structural)
		assert.Zero(t, solutionRepo.saves)
	})

	t.Run("stored record is retrievable by id", func(t *testing.T) {
		svc, _, _, _, _ := newTestSolveService(t)

		solution, err := svc.Solve(context.Background(), "A.B", requester)
		require.NoError(t, err)

		got, err := svc.SolutionByID(solution.ID)
		require.NoError(t, err)
		assert.Equal(t, solution.ID, got.ID)
	})
}
