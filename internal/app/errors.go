// Package app wires plugins, editors and the host document together and
// runs editor startup.
package app

import (
	"errors"
	"fmt"
)

// Startup errors.
var (
	// ErrContainerRequired indicates options without a container.
	ErrContainerRequired = errors.New("container is required")

	// ErrContainerNotFound indicates a container that does not resolve to
	// an element.
	ErrContainerNotFound = errors.New("container not found")
)

// ContainerError reports a container reference that could not be resolved.
type ContainerError struct {
	// Ref is the reference as given, usually a selector.
	Ref any

	// Cause is the underlying resolution failure, if any.
	Cause error
}

func (e *ContainerError) Error() string {
	msg := fmt.Sprintf("%s: %v", ErrContainerNotFound, e.Ref)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes ErrContainerNotFound and the cause.
func (e *ContainerError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrContainerNotFound}
	}
	return []error{ErrContainerNotFound, e.Cause}
}

// InitError reports a fatal editor startup failure.
type InitError struct {
	Step string
	Err  error
}

func (e *InitError) Error() string {
	return "init " + e.Step + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
