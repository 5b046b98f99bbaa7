package accounts

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsewatch/pulsewatch/internal/shared"
)

// Repository defines persistence operations for user accounts.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Insert(ctx context.Context, account Account) (*Account, error)
}

const collectionName = "users"

// MongoRepository implements Repository over a MongoDB collection. The
// unique index on email is what guarantees at most one account per address
// under concurrent registration.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository constructs a MongoDB-backed repository.
func NewRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(collectionName)}
}

// EnsureIndexes creates the unique email index. Must run before the first
// Insert.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("accounts: ensure indexes: %w", err)
	}
	return nil
}

// FindByEmail fetches an account by email. Absence is reported as
// shared.ErrNotFound, never as a driver error.
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	err := r.collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("accounts: find by email: %w", err)
	}
	return &account, nil
}

// Insert persists a new account. A duplicate-key violation on the email
// index maps to ErrUserExists.
func (r *MongoRepository) Insert(ctx context.Context, account Account) (*Account, error) {
	result, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("accounts: insert: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		account.ID = id
	}
	return &account, nil
}

var _ Repository = (*MongoRepository)(nil)
