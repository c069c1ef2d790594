package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	dmn "github.com/ukramer/maze-solver-dfs/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SolutionRepo handles the persistence of solve records.
type SolutionRepo struct {
	collection *mongo.Collection
}

// NewSolutionRepo creates a new SolutionRepo with the given MongoDB client, database name, and collection name.
func NewSolutionRepo(client *mongo.Client, dbName, collectionName string) *SolutionRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SolutionRepo{
		collection: collection,
	}
}

// Save inserts a solve record. Records are immutable once written.
func (s *SolutionRepo) Save(solution *dmn.Solution) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, solution); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a solve record by its ID.
// Returns an error if the record is not found or if an unexpected error occurs.
func (s *SolutionRepo) ByID(id uuid.UUID) (*dmn.Solution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var solution dmn.Solution
	if err := s.collection.FindOne(ctx, filter).Decode(&solution); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("solution not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &solution, nil
}

// ByDigest retrieves the most recent solve record for a maze digest.
// Returns an error if no record exists for the digest.
func (s *SolutionRepo) ByDigest(digest string) (*dmn.Solution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"mazeDigest": digest}
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})
	var solution dmn.Solution
	if err := s.collection.FindOne(ctx, filter, opts).Decode(&solution); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("solution not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &solution, nil
}
