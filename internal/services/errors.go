// File: internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

// ErrEmptyHistory is returned when response generation is invoked with
// nothing to respond to. An empty history at that point is a caller defect,
// so it is an error rather than a quiet empty reply.
var ErrEmptyHistory = errors.New("cannot generate a response from an empty message history")

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeGeneration ErrorType = "GENERATION"
)

type ChatError struct {
	Type      ErrorType
	Operation string
	Message   string
	ChatID    string
	Cause     error
}

func (e *ChatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Chat %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Chat %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ChatError) Unwrap() error {
	return e.Cause
}

func NewValidationError(operation, msg string) *ChatError {
	return &ChatError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewGenerationError(operation, msg string, chatID string, cause error) *ChatError {
	return &ChatError{Type: ErrTypeGeneration, Operation: operation, Message: msg, ChatID: chatID, Cause: cause}
}
