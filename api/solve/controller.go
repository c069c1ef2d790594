// Package solveapi exposes the maze solving endpoints.
package solveapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ukramer/maze-solver-dfs/api/identity"
	"github.com/ukramer/maze-solver-dfs/maze"
	"github.com/ukramer/maze-solver-dfs/service/i"
)

// SolveController manages maze solve requests.
type SolveController struct {
	solver i.MazeSolver
}

// NewSolveController initializes a SolveController.
func NewSolveController(solver i.MazeSolver) (*SolveController, error) {
	return &SolveController{
		solver: solver,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SolveController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (sc *SolveController) RegisterProtected(route *gin.RouterGroup) {
	solve := route.Group("/solve")
	{
		solve.POST("/", sc.solve)
		solve.GET("/:ID", sc.solutionInfo)
	}
}

// solve handles a maze submission. A maze with no route still answers
// 200 with solvable false; only malformed maze text is a client error.
func (sc *SolveController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requester, err := requesterID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	solution, err := sc.solver.Solve(ctx, request.Maze, requester)
	if err != nil {
		var structural *maze.StructuralError
		if errors.As(err, &structural) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": structural.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(solution))
}

// solutionInfo retrieves a stored solve record.
func (sc *SolveController) solutionInfo(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	solution, err := sc.solver.SolutionByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no solution"})
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(solution))
}

// requesterID extracts the authenticated user's ID from the claims the
// authorization middleware stored on the context.
func requesterID(ctx *gin.Context) (uuid.UUID, error) {
	claimsValue, ok := ctx.Get(identity.ContextUserClaims)
	if !ok {
		return uuid.Nil, errors.New("no claims in context")
	}
	claims, ok := claimsValue.(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("malformed claims")
	}
	userID, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, errors.New("no user id claim")
	}
	return uuid.Parse(userID)
}
