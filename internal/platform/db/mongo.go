package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// New creates a MongoDB client and verifies connectivity before returning.
func New(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("platform/db: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("platform/db: ping: %w", err)
	}

	return client, nil
}

// URI assembles a MongoDB connection string from externally supplied parts.
func URI(host, user, password, database string) string {
	if user == "" {
		return fmt.Sprintf("mongodb://%s/%s", host, database)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s/%s?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(password), host, database)
}
