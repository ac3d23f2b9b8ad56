package services

import "fmt"

// ValidationError is user-correctable input trouble; handlers surface its
// message inline.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// SlotConflictError means the slot was taken between selection and submission.
type SlotConflictError struct {
	Coach string
	Date  string
	Time  string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s %s with %s is no longer available", e.Date, e.Time, e.Coach)
}

// StorageError wraps a store I/O failure. Handlers turn it into a generic
// try-again message; the underlying cause goes to the log only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
