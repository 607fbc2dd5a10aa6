// Package component implements the document model of the page builder:
// a tree of component nodes, each with a type, a property bag and an
// ordered list of children.
//
// Nodes notify observers synchronously through an embedded event.Emitter:
//
//	change:<key>      after a property changed (payload Change)
//	change            after any property change (payload []Change)
//	children:changed  after the child list changed (payload ChildrenChange)
//	destroy           when the node is destroyed (payload *Node)
//
// Type-specific behavior (does the node hold text, does it accept
// children, how is it serialized) is dispatched through the Type
// interface. Tree and event mechanics live on Node and are shared by
// every type.
//
// A Node is not safe for concurrent use. The model is single-threaded:
// mutations, notifications and the view updates they trigger all run on
// the caller's goroutine.
package component
