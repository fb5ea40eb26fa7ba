package mongodb

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type nopStore struct{}

func (nopStore) ListDatabases(ctx context.Context) ([]DatabaseInfo, error)  { return nil, nil }
func (nopStore) ListCollections(ctx context.Context, database string) ([]CollectionInfo, error) {
	return nil, nil
}
func (nopStore) Find(ctx context.Context, database, collection string, filter any, skip, limit int64) ([]bson.M, error) {
	return nil, nil
}
func (nopStore) Count(ctx context.Context, database, collection string, filter any) (int64, error) {
	return 0, nil
}
func (nopStore) InsertOne(ctx context.Context, database, collection string, document any) (*InsertResult, error) {
	return nil, nil
}
func (nopStore) Update(ctx context.Context, database, collection string, filter, update any, many bool) (*UpdateResult, error) {
	return nil, nil
}
func (nopStore) Delete(ctx context.Context, database, collection string, filter any, many bool) (*DeleteResult, error) {
	return nil, nil
}
func (nopStore) DropCollection(ctx context.Context, database, collection string) error { return nil }

func TestManager_StoreAfterClose(t *testing.T) {
	m := NewManagerWithStore(nopStore{})

	if _, err := m.Store(); err != nil {
		t.Fatalf("expected store before close, got %v", err)
	}

	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if _, err := m.Store(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("expected ErrNotConnected after close, got %v", err)
	}
}

func TestManager_CloseIdempotent(t *testing.T) {
	m := NewManagerWithStore(nopStore{})

	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}
