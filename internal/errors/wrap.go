package errors

import (
	"fmt"
)

// WrappedError carries an internal cause alongside a message safe to show
// in an API response.
type WrappedError struct {
	Module      string
	Operation   string
	Cause       error
	UserMessage string
}

func (e *WrappedError) Error() string {
	return fmt.Sprintf("[%s:%s] %s: %v", e.Module, e.Operation, e.UserMessage, e.Cause)
}

func (e *WrappedError) Unwrap() error {
	return e.Cause
}

// ErrorWrapper stamps errors with a fixed module and operation so call
// sites only supply the user-facing message.
type ErrorWrapper struct {
	module    string
	operation string
}

// NewWrapper creates an ErrorWrapper for the given module and operation.
func NewWrapper(module, operation string) *ErrorWrapper {
	return &ErrorWrapper{module: module, operation: operation}
}

// Wrap attaches the wrapper's context and a user message to err.
// A nil err passes through as nil.
func (w *ErrorWrapper) Wrap(err error, userMessage string) error {
	if err == nil {
		return nil
	}
	return &WrappedError{
		Module:      w.module,
		Operation:   w.operation,
		Cause:       err,
		UserMessage: userMessage,
	}
}

// Wrapf is Wrap with a formatted user message.
func (w *ErrorWrapper) Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return w.Wrap(err, fmt.Sprintf(format, args...))
}

// GetUserMessage extracts the user-facing message from a WrappedError,
// falling back to the error string for anything else.
func GetUserMessage(err error) string {
	if err == nil {
		return ""
	}
	if wrapped, ok := err.(*WrappedError); ok {
		return wrapped.UserMessage
	}
	return err.Error()
}
