package tools

import (
	"github.com/erauner12/mongobridge/internal/mongodb"
	"github.com/rs/zerolog"
)

// ToolContext provides shared resources for tool handlers. The connection
// manager is constructed once at startup and shared by every invocation.
type ToolContext struct {
	Logger          *zerolog.Logger
	Conn            *mongodb.Manager
	DefaultDatabase string
}

// NewToolContext creates the context handed to every handler
func NewToolContext(logger *zerolog.Logger, conn *mongodb.Manager, defaultDatabase string) *ToolContext {
	return &ToolContext{
		Logger:          logger,
		Conn:            conn,
		DefaultDatabase: defaultDatabase,
	}
}

// Store returns the active database store, failing fast with NOT_CONNECTED
// when no valid connection exists.
func (tc *ToolContext) Store() (mongodb.Store, error) {
	if tc == nil || tc.Conn == nil {
		return nil, NewToolError(ErrCodeNotConnected, mongodb.ErrNotConnected.Error())
	}
	store, err := tc.Conn.Store()
	if err != nil {
		return nil, WrapStoreError(err)
	}
	return store, nil
}
