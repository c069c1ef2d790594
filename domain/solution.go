package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ukramer/maze-solver-dfs/maze"
)

// Solution is one solve outcome for a submitted maze. Solvable false with
// an empty path is a valid outcome, not a failure.
type Solution struct {
	ID          uuid.UUID       `bson:"_id" json:"id"`
	MazeDigest  string          `bson:"mazeDigest" json:"maze_digest"`
	MazeText    string          `bson:"mazeText" json:"maze_text"`
	Solvable    bool            `bson:"solvable" json:"solvable"`
	Path        []maze.Position `bson:"path,omitempty" json:"path,omitempty"`
	Directions  string          `bson:"directions,omitempty" json:"directions,omitempty"`
	Rendered    string          `bson:"rendered,omitempty" json:"rendered,omitempty"`
	RequestedBy uuid.UUID       `bson:"requestedBy" json:"requested_by"`
	CreatedAt   time.Time       `bson:"createdAt" json:"created_at"`
}

// SolutionConfig holds parameters for recording a solve outcome.
type SolutionConfig struct {
	ID          uuid.UUID
	MazeText    string
	Solvable    bool
	Path        []maze.Position
	Directions  string
	Rendered    string
	RequestedBy uuid.UUID
}

// NewSolution creates a solve record, deriving the maze digest from the
// normalized maze text.
func NewSolution(config SolutionConfig) *Solution {
	return &Solution{
		ID:          config.ID,
		MazeDigest:  DigestMaze(config.MazeText),
		MazeText:    config.MazeText,
		Solvable:    config.Solvable,
		Path:        config.Path,
		Directions:  config.Directions,
		Rendered:    config.Rendered,
		RequestedBy: config.RequestedBy,
		CreatedAt:   time.Now().UTC(),
	}
}

// DigestMaze returns the cache/deduplication key for maze text: a SHA-256
// hex digest over the text with line endings and trailing newlines
// normalized, so equivalent submissions share one digest.
func DigestMaze(text string) string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.TrimRight(normalized, "\n")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
