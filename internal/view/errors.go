package view

import "errors"

var (
	// ErrUnbound is returned when rendering a destroyed view.
	ErrUnbound = errors.New("view is not bound to a component")

	// ErrIncompatibleVariant is returned when a node already has a bound
	// view of a different variant.
	ErrIncompatibleVariant = errors.New("component already bound to a different view variant")
)
