package mongodb

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	maxPoolSize    = uint64(20)
	minPoolSize    = uint64(2)
	maxConnIdle    = 30 * time.Minute
	connectTimeout = 10 * time.Second
)

// Connect creates a MongoDB client and verifies connectivity with a ping.
// A failure here is fatal for the process: the caller is expected to log and
// exit rather than retry.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetMaxConnIdleTime(maxConnIdle).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	// Verify connectivity
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Info().
		Uint64("max_pool_size", maxPoolSize).
		Uint64("min_pool_size", minPoolSize).
		Msg("mongodb client connected")

	return client, nil
}
