package errors

import "fmt"

// BackendError wraps a failure from the storage collaborator. Backend
// failures are surfaced to the caller and never retried.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func Backend(op string, err error) *BackendError {
	return &BackendError{Op: op, Err: err}
}
