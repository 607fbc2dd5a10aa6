package event

import "sync"

// Common event names.
const (
	// Change is emitted after any property change.
	Change = "change"

	// ChildrenChanged is emitted after the ordered child list changed.
	ChildrenChanged = "children:changed"

	// Destroy is emitted when a model is destroyed.
	Destroy = "destroy"
)

// ChangeOf returns the per-key change event name, e.g. "change:open".
func ChangeOf(key string) string {
	return Change + ":" + key
}

// Listener receives an event payload.
type Listener func(payload any)

// Subscription is the handle returned by On and Once.
type Subscription struct {
	name     string
	id       uint64
	listener Listener
	once     bool
	active   bool
	emitter  *Emitter
}

// Name returns the event name of the subscription.
func (s *Subscription) Name() string {
	return s.name
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.emitter != nil {
		s.emitter.Off(s)
	}
}

// Emitter manages listener lists keyed by event name.
// The zero value is ready to use.
type Emitter struct {
	mu        sync.Mutex
	listeners map[string][]*Subscription
	nextID    uint64
}

// On registers a listener for the named event.
func (e *Emitter) On(name string, fn Listener) *Subscription {
	return e.add(name, fn, false)
}

// Once registers a listener that is removed after its first call.
func (e *Emitter) Once(name string, fn Listener) *Subscription {
	return e.add(name, fn, true)
}

func (e *Emitter) add(name string, fn Listener, once bool) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listeners == nil {
		e.listeners = make(map[string][]*Subscription)
	}

	e.nextID++
	sub := &Subscription{
		name:     name,
		id:       e.nextID,
		listener: fn,
		once:     once,
		active:   true,
		emitter:  e,
	}
	e.listeners[name] = append(e.listeners[name], sub)
	return sub
}

// Off removes a subscription.
func (e *Emitter) Off(sub *Subscription) {
	if sub == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.removeLocked(sub)
}

func (e *Emitter) removeLocked(sub *Subscription) {
	if !sub.active {
		return
	}
	sub.active = false

	subs := e.listeners[sub.name]
	for i, s := range subs {
		if s == sub {
			e.listeners[sub.name] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(e.listeners[sub.name]) == 0 {
		delete(e.listeners, sub.name)
	}
}

// Emit synchronously delivers payload to every listener of name.
func (e *Emitter) Emit(name string, payload any) {
	e.mu.Lock()
	subs := e.listeners[name]
	if len(subs) == 0 {
		e.mu.Unlock()
		return
	}
	snapshot := make([]*Subscription, len(subs))
	copy(snapshot, subs)
	e.mu.Unlock()

	for _, sub := range snapshot {
		e.mu.Lock()
		if !sub.active {
			e.mu.Unlock()
			continue
		}
		if sub.once {
			e.removeLocked(sub)
		}
		e.mu.Unlock()

		sub.listener(payload)
	}
}

// Count returns the number of listeners registered for name.
func (e *Emitter) Count(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[name])
}

// Clear removes every listener.
func (e *Emitter) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, subs := range e.listeners {
		for _, sub := range subs {
			sub.active = false
		}
	}
	e.listeners = nil
}
