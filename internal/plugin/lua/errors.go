package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrNotPlugin is returned when a global exists but is neither a
	// function nor a table with a default function.
	ErrNotPlugin = errors.New("lua global is not a plugin")
)
