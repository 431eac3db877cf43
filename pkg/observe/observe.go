// Package observe provides the change-notification primitives used by the
// blanket state machine: a plain listener list and a value container that
// notifies only when its value actually changes.
//
// All types in this package are single-threaded. Like the rest of the kit,
// they must only be used from the host framework's UI scheduling context.
package observe

// Notifier maintains a list of listeners and notifies them in registration
// order. It is the explicit replacement for an observable-object pattern:
// state structs hold a Notifier and call Notify after mutating.
type Notifier struct {
	listeners map[int]func()
	order     []int
	nextID    int
}

// AddListener registers fn and returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.order = append(n.order, id)
	return func() {
		delete(n.listeners, id)
	}
}

// Notify calls every registered listener. Listeners added during
// notification are not called until the next Notify.
func (n *Notifier) Notify() {
	if len(n.listeners) == 0 {
		return
	}
	ids := make([]int, len(n.order))
	copy(ids, n.order)
	for _, id := range ids {
		if fn, ok := n.listeners[id]; ok {
			fn()
		}
	}
}

// HasListeners reports whether any listener is registered.
func (n *Notifier) HasListeners() bool {
	return len(n.listeners) > 0
}

// Value holds a single comparable value and notifies listeners when it
// changes. Assigning an equal value is a no-op, which keeps redundant
// updates from re-triggering renders or animations.
type Value[T comparable] struct {
	value     T
	listeners map[int]func(T)
	order     []int
	nextID    int
}

// NewValue creates a Value holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set stores value and notifies listeners if it differs from the current one.
func (v *Value[T]) Set(value T) {
	if v.value == value {
		return
	}
	v.value = value
	ids := make([]int, len(v.order))
	copy(ids, v.order)
	for _, id := range ids {
		if fn, ok := v.listeners[id]; ok {
			fn(value)
		}
	}
}

// AddListener registers fn and returns an unsubscribe function.
func (v *Value[T]) AddListener(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	if v.listeners == nil {
		v.listeners = make(map[int]func(T))
	}
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.order = append(v.order, id)
	return func() {
		delete(v.listeners, id)
	}
}
