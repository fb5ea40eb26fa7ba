package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/erauner12/mongobridge/internal/normalize"
)

// decodeParams unmarshals raw arguments into a params struct. Absent
// arguments decode into the zero value so validation reports the missing
// fields by name.
func decodeParams(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return NewToolError(ErrCodeInvalidParams, "Invalid parameters: "+err.Error())
	}
	return nil
}

// emptyFilter substitutes {} for absent document-shaped arguments
func emptyFilter(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func HandleListDatabases(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
	store, err := tc.Store()
	if err != nil {
		return nil, err
	}

	infos, err := store.ListDatabases(ctx)
	if err != nil {
		return nil, WrapStoreError(err)
	}
	return infos, nil
}

func HandleListCollections(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
	var params ListCollectionsParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, NewToolError(ErrCodeInvalidParams, err.Error())
	}

	store, err := tc.Store()
	if err != nil {
		return nil, err
	}

	infos, err := store.ListCollections(ctx, params.Database)
	if err != nil {
		return nil, WrapStoreError(err)
	}
	return infos, nil
}

func HandleFindDocuments(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
	var params FindDocumentsParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, NewToolError(ErrCodeInvalidParams, err.Error())
	}

	store, err := tc.Store()
	if err != nil {
		return nil, err
	}

	filter := normalize.Document(emptyFilter(params.Query))
	docs, err := store.Find(ctx, params.Database, params.Collection, filter, params.EffectiveSkip(), params.EffectiveLimit())
	if err != nil {
		return nil, WrapStoreError(err)
	}
	return docs, nil
}

func HandleCountDocuments(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
	var params CountDocumentsParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, NewToolError(ErrCodeInvalidParams, err.Error())
	}

	store, err := tc.Store()
	if err != nil {
		return nil, err
	}

	filter := normalize.Document(emptyFilter(params.Filter))
	count, err := store.Count(ctx, params.Database, params.Collection, filter)
	if err != nil {
		return nil, WrapStoreError(err)
	}
	return map[string]any{"count": count}, nil
}

func HandleInsertDocument(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
	var params InsertDocumentParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, NewToolError(ErrCodeInvalidParams, err.Error())
	}

	store, err := tc.Store()
	if err != nil {
		return nil, err
	}

	document := normalize.Document(params.Document)
	res, err := store.InsertOne(ctx, params.Database, params.Collection, document)
	if err != nil {
		return nil, WrapStoreError(err)
	}

	return map[string]any{
		"acknowledged": res.Acknowledged,
		"insertedId":   res.InsertedID,
		"message":      "Document inserted successfully",
	}, nil
}

func HandleUpdateDocuments(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
	var params UpdateDocumentsParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, NewToolError(ErrCodeInvalidParams, err.Error())
	}

	store, err := tc.Store()
	if err != nil {
		return nil, err
	}

	filter := normalize.Document(params.Filter)
	update := normalize.Document(params.Update)
	res, err := store.Update(ctx, params.Database, params.Collection, filter, update, params.UpdateMany)
	if err != nil {
		return nil, WrapStoreError(err)
	}
	return res, nil
}

func HandleDeleteDocuments(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
	var params DeleteDocumentsParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, NewToolError(ErrCodeInvalidParams, err.Error())
	}

	store, err := tc.Store()
	if err != nil {
		return nil, err
	}

	filter := normalize.Document(params.Filter)
	res, err := store.Delete(ctx, params.Database, params.Collection, filter, params.DeleteMany)
	if err != nil {
		return nil, WrapStoreError(err)
	}

	noun := "document"
	if res.DeletedCount != 1 {
		noun = "documents"
	}
	return map[string]any{
		"acknowledged": res.Acknowledged,
		"deletedCount": res.DeletedCount,
		"message":      fmt.Sprintf("Deleted %d %s", res.DeletedCount, noun),
	}, nil
}

func HandleDropCollection(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
	var params DropCollectionParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, NewToolError(ErrCodeInvalidParams, err.Error())
	}

	store, err := tc.Store()
	if err != nil {
		return nil, err
	}

	if err := store.DropCollection(ctx, params.Database, params.Collection); err != nil {
		return nil, WrapStoreError(err)
	}

	return map[string]any{
		"success": true,
		"message": fmt.Sprintf("Collection %s.%s dropped", params.Database, params.Collection),
	}, nil
}
