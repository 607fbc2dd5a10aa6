package component

import "errors"

// Component model errors.
var (
	// ErrNilNode is returned when a nil node is passed to a tree operation.
	ErrNilNode = errors.New("nil component")

	// ErrTypeImmutable is returned when setting the type property.
	ErrTypeImmutable = errors.New("component type is immutable")

	// ErrIDImmutable is returned when setting the id property.
	ErrIDImmutable = errors.New("component id is immutable")

	// ErrChildrenNotAccepted is returned when appending to a node whose
	// type does not accept children.
	ErrChildrenNotAccepted = errors.New("component type does not accept children")

	// ErrCycle is returned when a node would become its own ancestor.
	ErrCycle = errors.New("component cannot contain itself")

	// ErrDuplicateID is returned when an attached subtree would introduce
	// an id already present in the target tree.
	ErrDuplicateID = errors.New("duplicate component id")

	// ErrNotChild is returned when removing a node that is not a child.
	ErrNotChild = errors.New("component is not a child")

	// ErrDestroyed is returned when operating on a destroyed node.
	ErrDestroyed = errors.New("component is destroyed")

	// ErrEmptyTypeName is returned when registering a type without a name.
	ErrEmptyTypeName = errors.New("component type name is empty")

	// ErrUnknownBase is returned when a definition extends an unknown type.
	ErrUnknownBase = errors.New("unknown base component type")
)
