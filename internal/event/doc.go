// Package event provides the synchronous notification mechanism used by
// component nodes, views and categories.
//
// An Emitter keeps listener lists keyed by event name. Emit calls every
// listener of that name, in subscription order, on the caller's goroutine,
// before returning. There is no queueing and no deferral: when Emit
// returns, every listener has observed the event.
//
// # Event Names
//
// Models use a small set of names:
//
//	change            - any property changed (payload describes which)
//	change:<key>      - the property <key> changed
//	children:changed  - the ordered child list changed
//	destroy           - the model is being destroyed
//
// # Listener Changes During Emit
//
// Emit works on a snapshot of the listener list. A listener added while an
// event is being delivered is not called for that event. A listener removed
// while an event is being delivered is not called afterwards, even if it
// was part of the snapshot.
package event
