package domain

import "errors"

// Domain errors represent failures the CLI translates into exit codes.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingQuery indicates no query argument was given.
	ErrMissingQuery = errors.New("no query")

	// ErrMissingFilename indicates no filename argument was given.
	ErrMissingFilename = errors.New("no filename")

	// ErrOperation wraps failures that happen while running a search,
	// such as the input file being unreadable.
	ErrOperation = errors.New("operation error")
)

// OperationError wraps a failure that happened while running a search,
// such as the input file being unreadable. It matches ErrOperation and
// its cause with errors.Is.
type OperationError struct {
	Err error
}

func (e *OperationError) Error() string {
	return ErrOperation.Error() + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() []error {
	return []error{ErrOperation, e.Err}
}
