package plugin

import (
	"errors"
	"fmt"
)

// Plugin system errors.
var (
	// ErrPluginNotFound is returned when a plugin reference resolves to
	// nothing.
	ErrPluginNotFound = errors.New("plugin not found")

	// ErrInvalidPlugin is returned when registering an empty id or a nil
	// function.
	ErrInvalidPlugin = errors.New("invalid plugin")
)

// PanicError reports a plugin that panicked while running.
type PanicError struct {
	Plugin string
	Value  any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("plugin %s panicked: %v", e.Plugin, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
