package list

// Emitter is a synchronous listener registry for one notification kind.
// Listeners run inline, in registration order, on the caller's goroutine; a
// panic in a listener propagates to whoever called Emit.
type Emitter[T any] struct {
	listeners []func(T)
}

// On registers a listener. Nil listeners are ignored.
func (e *Emitter[T]) On(fn func(T)) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, fn)
}

// Has reports whether any listener is registered.
func (e *Emitter[T]) Has() bool {
	return len(e.listeners) > 0
}

// Emit delivers the event to every registered listener.
func (e *Emitter[T]) Emit(event T) {
	for _, fn := range e.listeners {
		fn(event)
	}
}
