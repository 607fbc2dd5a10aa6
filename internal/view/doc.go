// Package view renders component trees into html.Node elements and keeps
// them in sync with the model.
//
// A View is bound to exactly one component node. It listens to the node's
// change, children:changed and destroy notifications and updates only its
// own element in response. Child views are reconciled by node identity:
// views of nodes that stayed are reused, views of nodes that left are
// destroyed, and elements are placed exactly in model order.
//
// Type-specific rendering is delegated to a Variant chosen per component
// type through a Registry. Reconciliation is shared by all variants.
package view
