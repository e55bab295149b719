// Package mongodb provides the client and collection plumbing for the
// document store holding visit log documents.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/openvets/petclinic-visitlog/internal/config"
)

// Connect creates a MongoDB client from DocumentStoreConfig and pings the
// primary for fail-fast validation. The caller owns the returned client and
// must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg config.DocumentStoreConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return client, nil
}

// Collection returns the configured visit log collection.
func Collection(client *mongo.Client, cfg config.DocumentStoreConfig) *mongo.Collection {
	return client.Database(cfg.Database).Collection(cfg.Collection)
}
