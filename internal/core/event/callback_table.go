package event

import (
	"context"
	"sync"

	"Trellis/internal/shared/metrics"
)

// CallbackTable is the partial dispatch table a View owns. Unlike a Model's
// HandlerTable it starts empty, entries may be overwritten at any time, and
// firing an event nobody registered for resolves to a no-op rather than a
// failure: interaction wiring may legitimately be incomplete early in a
// View's lifecycle.
//
// The table is the View's level of indirection. A rendered UI node must
// never capture a callback value; it routes interactions back through the
// table by name, so a Bind issued after the render still wins.
type CallbackTable struct {
	mu        sync.RWMutex
	callbacks map[string]func(ctx context.Context, param any)
}

// NewCallbackTable creates an empty callback table.
func NewCallbackTable() *CallbackTable {
	return &CallbackTable{
		callbacks: make(map[string]func(ctx context.Context, param any)),
	}
}

// Bind registers fn as the callback for k. Each call fully overwrites the
// prior callback for that name; binding never fails and may happen before
// or after any render.
func Bind[P, R any](t *CallbackTable, k Key[P, R], fn func(ctx context.Context, param P)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.callbacks[k.Name()] = func(ctx context.Context, param any) {
		p, ok := param.(P)
		if !ok {
			// Colliding key declarations on the View side degrade to the
			// same no-op as an unregistered event.
			return
		}
		fn(ctx, p)
	}
}

// Fire resolves the callback currently bound for k and invokes it. The
// lookup happens here, at interaction time, so the latest Bind always wins
// over anything captured at render time. An unbound event is a no-op.
func Fire[P, R any](ctx context.Context, t *CallbackTable, k Key[P, R], param P) {
	t.mu.RLock()
	fn, ok := t.callbacks[k.Name()]
	t.mu.RUnlock()

	if !ok {
		metrics.ViewCallbacks.WithLabelValues(k.Name(), "unbound").Inc()
		return
	}

	metrics.ViewCallbacks.WithLabelValues(k.Name(), "bound").Inc()
	fn(ctx, param)
}

// Callback returns a stable function that resolves the current binding for
// k on every invocation. Rendered UI nodes can hold the returned value for
// their whole lifetime without pinning a stale registration.
func Callback[P, R any](t *CallbackTable, k Key[P, R]) func(ctx context.Context, param P) {
	return func(ctx context.Context, param P) {
		Fire(ctx, t, k, param)
	}
}
