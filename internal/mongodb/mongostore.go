package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// mongoStore implements Store on a driver client
type mongoStore struct {
	client *mongo.Client
}

func (s *mongoStore) ListDatabases(ctx context.Context) ([]DatabaseInfo, error) {
	result, err := s.client.ListDatabases(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	infos := make([]DatabaseInfo, 0, len(result.Databases))
	for _, db := range result.Databases {
		infos = append(infos, DatabaseInfo{
			Name:       db.Name,
			SizeOnDisk: db.SizeOnDisk,
			Empty:      db.Empty,
		})
	}
	return infos, nil
}

func (s *mongoStore) ListCollections(ctx context.Context, database string) ([]CollectionInfo, error) {
	specs, err := s.client.Database(database).ListCollectionSpecifications(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	infos := make([]CollectionInfo, 0, len(specs))
	for _, spec := range specs {
		infos = append(infos, CollectionInfo{
			Name: spec.Name,
			Type: spec.Type,
		})
	}
	return infos, nil
}

func (s *mongoStore) Find(ctx context.Context, database, collection string, filter any, skip, limit int64) ([]bson.M, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := s.client.Database(database).Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *mongoStore) Count(ctx context.Context, database, collection string, filter any) (int64, error) {
	return s.client.Database(database).Collection(collection).CountDocuments(ctx, filter)
}

func (s *mongoStore) InsertOne(ctx context.Context, database, collection string, document any) (*InsertResult, error) {
	res, err := s.client.Database(database).Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return &InsertResult{
		Acknowledged: res.Acknowledged,
		InsertedID:   idString(res.InsertedID),
	}, nil
}

func (s *mongoStore) Update(ctx context.Context, database, collection string, filter, update any, many bool) (*UpdateResult, error) {
	coll := s.client.Database(database).Collection(collection)

	var res *mongo.UpdateResult
	var err error
	if many {
		res, err = coll.UpdateMany(ctx, filter, update)
	} else {
		res, err = coll.UpdateOne(ctx, filter, update)
	}
	if err != nil {
		return nil, err
	}

	out := &UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if res.UpsertedID != nil {
		out.UpsertedID = idString(res.UpsertedID)
	}
	return out, nil
}

func (s *mongoStore) Delete(ctx context.Context, database, collection string, filter any, many bool) (*DeleteResult, error) {
	coll := s.client.Database(database).Collection(collection)

	var res *mongo.DeleteResult
	var err error
	if many {
		res, err = coll.DeleteMany(ctx, filter)
	} else {
		res, err = coll.DeleteOne(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	return &DeleteResult{
		Acknowledged: res.Acknowledged,
		DeletedCount: res.DeletedCount,
	}, nil
}

func (s *mongoStore) DropCollection(ctx context.Context, database, collection string) error {
	return s.client.Database(database).Collection(collection).Drop(ctx)
}

// idString renders a driver-supplied _id value as its external string form
func idString(id any) string {
	if oid, ok := id.(bson.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
