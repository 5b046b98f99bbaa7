package telemetry

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines persistence operations for telemetry records.
type Repository interface {
	ListAll(ctx context.Context) ([]Record, error)
	Insert(ctx context.Context, record Record) (Record, error)
}

const collectionName = "events"

// MongoRepository implements Repository over a MongoDB collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository constructs a MongoDB-backed repository.
func NewRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(collectionName)}
}

// ListAll returns every stored record in store-native order. No filter or
// sort is applied.
func (r *MongoRepository) ListAll(ctx context.Context) ([]Record, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("telemetry: list: %w", err)
	}
	defer cursor.Close(ctx)

	var records []Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("telemetry: decode: %w", err)
	}
	return records, nil
}

// Insert persists a new record and returns it with its assigned identifier.
func (r *MongoRepository) Insert(ctx context.Context, record Record) (Record, error) {
	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return Record{}, fmt.Errorf("telemetry: insert: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = id
	}
	return record, nil
}

var _ Repository = (*MongoRepository)(nil)
