package normalize

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const validHex = "507f1f77bcf86cd799439011"

func TestDocument_ScalarsPassThrough(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"string", "hello"},
		{"valid hex outside id key", validHex},
		{"int", 42},
		{"float", 3.14},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Document(tt.in); got != tt.in {
				t.Errorf("Document(%v) = %v, want unchanged", tt.in, got)
			}
		})
	}
}

func TestDocument_ConvertsIDKey(t *testing.T) {
	in := map[string]any{"_id": validHex, "name": "Alice"}

	got, ok := Document(in).(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", Document(in))
	}

	oid, ok := got["_id"].(bson.ObjectID)
	if !ok {
		t.Fatalf("expected _id to be ObjectID, got %T", got["_id"])
	}
	if oid.Hex() != validHex {
		t.Errorf("round trip mismatch: got %s, want %s", oid.Hex(), validHex)
	}
	if got["name"] != "Alice" {
		t.Errorf("unrelated field modified: %v", got["name"])
	}

	// input must not be mutated
	if _, stillString := in["_id"].(string); !stillString {
		t.Error("input map was mutated")
	}
}

func TestDocument_SuffixHeuristic(t *testing.T) {
	in := map[string]any{
		"userId":  validHex, // converted: suffix match + valid hex
		"buildId": "abc",    // suffix match but not hex: unchanged
		"ref":     validHex, // no suffix match: unchanged
		"id":      validHex, // "id" does not end with "Id": unchanged
	}

	got := Document(in).(map[string]any)

	if _, ok := got["userId"].(bson.ObjectID); !ok {
		t.Errorf("expected userId converted, got %T", got["userId"])
	}
	if got["buildId"] != "abc" {
		t.Errorf("expected buildId unchanged, got %v", got["buildId"])
	}
	if got["ref"] != validHex {
		t.Errorf("expected ref unchanged, got %v", got["ref"])
	}
	if got["id"] != validHex {
		t.Errorf("expected id unchanged, got %v", got["id"])
	}
}

func TestDocument_RejectsNonConformingStrings(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"too short", "abc"},
		{"too long", validHex + "ff"},
		{"uppercase hex", "507F1F77BCF86CD799439011"},
		{"non hex chars", "507f1f77bcf86cd79943901z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := map[string]any{"userId": tt.value}
			got := Document(in).(map[string]any)
			if got["userId"] != tt.value {
				t.Errorf("expected %q unchanged, got %v", tt.value, got["userId"])
			}
		})
	}
}

func TestDocument_IDKeyWithNonStringValue(t *testing.T) {
	// a matched key holding an array or object is not descended into
	in := map[string]any{
		"userId":   []any{validHex},
		"parentId": map[string]any{"_id": validHex},
	}

	got := Document(in).(map[string]any)

	arr, ok := got["userId"].([]any)
	if !ok || arr[0] != validHex {
		t.Errorf("expected array under id key unchanged, got %v", got["userId"])
	}
	inner, ok := got["parentId"].(map[string]any)
	if !ok || inner["_id"] != validHex {
		t.Errorf("expected object under id key unchanged, got %v", got["parentId"])
	}
}

func TestDocument_RecursesNestedStructures(t *testing.T) {
	in := map[string]any{
		"query": map[string]any{
			"author": map[string]any{"_id": validHex},
		},
		"items": []any{
			map[string]any{"taskId": validHex},
			"plain string",
		},
	}

	got := Document(in).(map[string]any)

	author := got["query"].(map[string]any)["author"].(map[string]any)
	if _, ok := author["_id"].(bson.ObjectID); !ok {
		t.Errorf("expected nested _id converted, got %T", author["_id"])
	}

	items := got["items"].([]any)
	first := items[0].(map[string]any)
	if _, ok := first["taskId"].(bson.ObjectID); !ok {
		t.Errorf("expected taskId in array element converted, got %T", first["taskId"])
	}
	if items[1] != "plain string" {
		t.Errorf("expected array order and scalars preserved, got %v", items[1])
	}
}

func TestDocument_Idempotent(t *testing.T) {
	in := map[string]any{
		"_id":    validHex,
		"userId": "not hex",
		"nested": map[string]any{"refId": validHex},
		"list":   []any{map[string]any{"_id": validHex}},
	}

	once := Document(in)
	twice := Document(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Document is not idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}
