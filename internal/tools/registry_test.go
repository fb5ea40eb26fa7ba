package tools

import (
	"context"
	"encoding/json"
	"testing"
)

func TestRegistry_Call_MCPContentFormat(t *testing.T) {
	// Registry.Call wraps handler results in MCP content format
	registry := NewRegistry()

	registry.MustRegister(ToolDefinition{
		Name:        "test_echo",
		Description: "Echo test tool",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}, func(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
		return map[string]any{
			"message": "hello world",
			"count":   42,
		}, nil
	})

	result := registry.Call(context.Background(), nil, CallRequest{
		Name:      "test_echo",
		Arguments: json.RawMessage(`{}`),
	})

	if result.IsError {
		t.Fatal("expected IsError to be false")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(result.Content))
	}

	contentBlock := result.Content[0]
	if contentBlock.Type != "text" {
		t.Errorf("expected content type 'text', got '%s'", contentBlock.Type)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(contentBlock.Text), &decoded); err != nil {
		t.Fatalf("content text is not valid JSON: %v", err)
	}
	if decoded["message"] != "hello world" {
		t.Errorf("expected message 'hello world', got '%v'", decoded["message"])
	}
	if count, ok := decoded["count"].(float64); !ok || count != 42 {
		t.Errorf("expected count 42, got %v", decoded["count"])
	}
}

func TestRegistry_Call_UnknownTool(t *testing.T) {
	registry := NewRegistry()

	result := registry.Call(context.Background(), nil, CallRequest{
		Name:      "unknown_tool",
		Arguments: json.RawMessage(`{}`),
	})

	if !result.IsError {
		t.Fatal("expected IsError for unknown tool")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(result.Content))
	}
	if result.Content[0].Text != "Unknown tool: unknown_tool" {
		t.Errorf("expected 'Unknown tool: unknown_tool', got %q", result.Content[0].Text)
	}
}

func TestRegistry_Call_HandlerError(t *testing.T) {
	registry := NewRegistry()

	registry.MustRegister(ToolDefinition{
		Name:        "test_fail",
		Description: "Failing test tool",
		InputSchema: map[string]any{"type": "object"},
	}, func(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
		return nil, NewToolError(ErrCodeInvalidParams, "database is required and must be a non-empty string")
	})

	result := registry.Call(context.Background(), nil, CallRequest{
		Name:      "test_fail",
		Arguments: json.RawMessage(`{}`),
	})

	if !result.IsError {
		t.Fatal("expected IsError from failing handler")
	}
	if result.Content[0].Text != "database is required and must be a non-empty string" {
		t.Errorf("expected validation message in envelope, got %q", result.Content[0].Text)
	}
}

func TestRegistry_List_PreservesOrder(t *testing.T) {
	registry := NewRegistry()
	RegisterAllTools(registry)

	descriptors := registry.List()

	want := []string{
		"list_databases", "list_collections", "find_documents", "count_documents",
		"insert_document", "update_documents", "delete_documents", "drop_collection",
	}
	if len(descriptors) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(descriptors))
	}
	for i, name := range want {
		if descriptors[i].Name != name {
			t.Errorf("tool %d: expected %s, got %s", i, name, descriptors[i].Name)
		}
		if descriptors[i].Description == "" {
			t.Errorf("tool %s has no description", name)
		}
		if descriptors[i].InputSchema == nil {
			t.Errorf("tool %s has no input schema", name)
		}
	}
}

func TestRegistry_Register_DuplicateName(t *testing.T) {
	registry := NewRegistry()

	dummyHandler := func(ctx context.Context, tc *ToolContext, raw json.RawMessage) (any, error) {
		return nil, nil
	}

	err := registry.Register(ToolDefinition{
		Name:        "test_tool",
		Description: "Test tool",
		InputSchema: map[string]any{"type": "object"},
	}, dummyHandler)
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	err = registry.Register(ToolDefinition{
		Name:        "test_tool",
		Description: "Duplicate tool",
		InputSchema: map[string]any{"type": "object"},
	}, dummyHandler)
	if err == nil {
		t.Fatal("expected error for duplicate registration")
	}
}
