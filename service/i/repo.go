package i

import (
	"github.com/google/uuid"
	dmn "github.com/ukramer/maze-solver-dfs/domain"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// SolutionRepo defines the interface for solve-record persistence.
type SolutionRepo interface {
	// Save inserts a solve record.
	Save(solution *dmn.Solution) error

	// ByID retrieves a solve record by its unique ID.
	// Returns an error if the record is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Solution, error)

	// ByDigest retrieves the most recent solve record for a maze digest.
	// Returns an error if no record exists for the digest.
	ByDigest(digest string) (*dmn.Solution, error)
}
