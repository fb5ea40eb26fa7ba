package tools

import (
	"errors"
	"fmt"

	"github.com/erauner12/mongobridge/internal/mongodb"
)

// ToolError represents a structured error from tool execution
type ToolError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode categorizes tool errors
type ErrorCode string

const (
	ErrCodeInvalidParams  ErrorCode = "INVALID_PARAMS"
	ErrCodeNotConnected   ErrorCode = "NOT_CONNECTED"
	ErrCodeMethodNotFound ErrorCode = "METHOD_NOT_FOUND"
	ErrCodeOperation      ErrorCode = "OPERATION_FAILED"
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
)

// NewToolError creates a tool error
func NewToolError(code ErrorCode, message string) *ToolError {
	return &ToolError{
		Code:    code,
		Message: message,
	}
}

// WrapStoreError converts database-layer errors into ToolErrors. Connection
// state errors keep their own code; everything else surfaces as an operation
// failure carrying the driver's message.
func WrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongodb.ErrNotConnected) {
		return NewToolError(ErrCodeNotConnected, err.Error())
	}
	return NewToolError(ErrCodeOperation, err.Error())
}
