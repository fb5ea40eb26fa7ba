package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Registry holds the fixed tool catalog and dispatches tool calls
type Registry struct {
	mu       sync.RWMutex
	tools    map[string]*toolEntry
	ordering []string // Preserve registration order for consistent tools/list
}

type toolEntry struct {
	def     ToolDefinition
	handler Handler
}

// NewRegistry creates an empty tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*toolEntry),
	}
}

// Register adds a tool definition and handler to the registry
func (r *Registry) Register(def ToolDefinition, handler Handler) error {
	if def.Name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("tool %s already registered", def.Name)
	}

	r.tools[def.Name] = &toolEntry{
		def:     def,
		handler: handler,
	}
	r.ordering = append(r.ordering, def.Name)

	return nil
}

// MustRegister registers a tool or panics on error (for startup registration)
func (r *Registry) MustRegister(def ToolDefinition, handler Handler) {
	if err := r.Register(def, handler); err != nil {
		panic(err)
	}
}

// List returns all registered tool descriptors in registration order
func (r *Registry) List() []ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]ToolDescriptor, 0, len(r.ordering))
	for _, name := range r.ordering {
		entry := r.tools[name]
		descriptors = append(descriptors, ToolDescriptor{
			Name:        entry.def.Name,
			Description: entry.def.Description,
			InputSchema: entry.def.InputSchema,
		})
	}

	return descriptors
}

// Call executes a tool by name and always produces the response envelope.
// Unknown tools, invalid arguments, connection state, and database failures
// all surface as error envelopes; nothing escapes to the transport layer.
func (r *Registry) Call(ctx context.Context, tc *ToolContext, req CallRequest) CallResult {
	logger := log.Logger
	if tc != nil && tc.Logger != nil {
		logger = *tc.Logger
	}

	r.mu.RLock()
	entry, exists := r.tools[req.Name]
	r.mu.RUnlock()

	if !exists {
		logger.Warn().Str("tool", req.Name).Msg("call for unknown tool")
		return errorResult(fmt.Sprintf("Unknown tool: %s", req.Name))
	}

	result, err := entry.handler(ctx, tc, req.Arguments)
	if err != nil {
		evt := logger.Error().Str("tool", req.Name)
		var message string
		if toolErr, ok := err.(*ToolError); ok {
			evt = evt.Str("code", string(toolErr.Code))
			message = toolErr.Message
		} else {
			message = err.Error()
		}
		evt.Str("error", message).Msg("tool call failed")
		return errorResult(message)
	}

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error().Str("tool", req.Name).Err(err).Msg("failed to serialize tool result")
		return errorResult("Failed to serialize tool result: " + err.Error())
	}

	return CallResult{
		Content: []ContentBlock{
			{Type: "text", Text: string(text)},
		},
	}
}

// Get retrieves a tool definition by name (for testing)
func (r *Registry) Get(name string) (*ToolDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.tools[name]
	if !exists {
		return nil, false
	}

	return &entry.def, true
}

func errorResult(message string) CallResult {
	return CallResult{
		Content: []ContentBlock{
			{Type: "text", Text: message},
		},
		IsError: true,
	}
}
