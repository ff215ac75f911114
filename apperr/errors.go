package apperr

import "fmt"

// Error codes surfaced in error payloads.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "TASK_NOT_FOUND"
	CodeInternal   = "INTERNAL_SERVER_ERROR"
)

// DateFormatError reports a due date that could not be parsed.
// It keeps the original input so the boundary can echo it back.
type DateFormatError struct {
	Input string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("unable to parse %q", e.Input)
}

// ValidationError reports input that parsed but violates a business rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an operation addressed to a task that does not exist.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with ID %d not found", e.ID)
}

// InternalError wraps an unexpected failure from the storage layer.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
