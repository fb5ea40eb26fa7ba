package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DatabaseInfo describes one database in the deployment
type DatabaseInfo struct {
	Name       string `json:"name"`
	SizeOnDisk int64  `json:"sizeOnDisk"`
	Empty      bool   `json:"empty"`
}

// CollectionInfo describes one collection in a database
type CollectionInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// InsertResult is the outcome of a single-document insert
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult is the outcome of a single- or multi-document update
type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult is the outcome of a single- or multi-document delete
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Store is the database boundary the tool dispatcher operates against.
// Filters, updates, and documents arrive already normalized (identifier
// strings rewritten to ObjectIDs).
type Store interface {
	ListDatabases(ctx context.Context) ([]DatabaseInfo, error)
	ListCollections(ctx context.Context, database string) ([]CollectionInfo, error)
	Find(ctx context.Context, database, collection string, filter any, skip, limit int64) ([]bson.M, error)
	Count(ctx context.Context, database, collection string, filter any) (int64, error)
	InsertOne(ctx context.Context, database, collection string, document any) (*InsertResult, error)
	Update(ctx context.Context, database, collection string, filter, update any, many bool) (*UpdateResult, error)
	Delete(ctx context.Context, database, collection string, filter any, many bool) (*DeleteResult, error)
	DropCollection(ctx context.Context, database, collection string) error
}
