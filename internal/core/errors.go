package core

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUnsupportedFileType = errors.New("only JPG, PNG, and PDF files are allowed")
)

// ModelUnavailableError is raised by the model gateway when a backend call
// fails. The gateway never retries; callers decide whether to propagate or
// fall back.
type ModelUnavailableError struct {
	Backend Backend
	Err     error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("%s model backend unavailable: %v", e.Backend, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Err
}

// UpstreamError marks a feature invocation that failed because its model
// backend call failed.
type UpstreamError struct {
	Feature Feature
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Feature, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// PersistenceError marks a failed store read or write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
