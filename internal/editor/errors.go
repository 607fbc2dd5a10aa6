package editor

import "errors"

var (
	// ErrNilModule is returned when adding a nil module.
	ErrNilModule = errors.New("module is nil")

	// ErrDuplicateModule is returned when adding a module whose name is
	// already taken.
	ErrDuplicateModule = errors.New("module already added")
)
