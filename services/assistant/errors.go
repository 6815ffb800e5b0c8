package assistant

import (
	"errors"
	"fmt"

	"concierge/models"
)

// Error codes. Every FlowError is turn-local and recoverable within the conversation.
const (
	CodeValidation  = "validation"
	CodeNotFound    = "notFound"
	CodeEmptyResult = "emptyResult"
	CodePersistence = "persistence"
	CodeCancelled   = "cancelled"
)

type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError flags a missing or invalid field; the controller re-prompts the
// same field.
func NewValidationError(format string, args ...interface{}) error {
	return &FlowError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &FlowError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewEmptyResultError(format string, args ...interface{}) error {
	return &FlowError{Code: CodeEmptyResult, Message: fmt.Sprintf(format, args...)}
}

func NewPersistenceError(format string, args ...interface{}) error {
	return &FlowError{Code: CodePersistence, Message: fmt.Sprintf(format, args...)}
}

func NewCancelledError(format string, args ...interface{}) error {
	return &FlowError{Code: CodeCancelled, Message: fmt.Sprintf(format, args...)}
}

// errorResult converts a flow error into an error envelope. FlowErrors carry their
// taxonomy code in the envelope data so callers can branch without parsing messages.
func errorResult(step string, err error) models.ToolResult {
	var fe *FlowError
	if errors.As(err, &fe) {
		res := models.Error(step, fe.Message)
		res.Data = map[string]interface{}{"code": fe.Code}
		return res
	}
	return models.Error(step, err.Error())
}
