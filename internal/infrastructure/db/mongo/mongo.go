package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// connectTimeout bounds the initial dial and ping at startup.
const connectTimeout = 10 * time.Second

// defaultTimeout is the per-query bound applied by the repositories.
const defaultTimeout = 10 * time.Second

// Config carries the MongoDB connection settings from the environment.
type Config struct {
	URI      string
	Database string
}

// Connect dials MongoDB and pings the primary so that a bad MONGO_URI fails
// the process at startup instead of on the first request. The caller owns the
// returned client and must Disconnect it on shutdown; the users and products
// repositories share the returned database handle.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
