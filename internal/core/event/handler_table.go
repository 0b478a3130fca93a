package event

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"Trellis/internal/shared/metrics"
)

// HandlerTable is the total dispatch table a Model owns. Every event name
// the Model answers to must have exactly one handler registered; dispatching
// a name with no handler is a hard failure.
//
// Registration normally happens once, in the Model's constructor. The table
// is still safe for concurrent use because hosts may fire interactions from
// their own goroutines.
type HandlerTable struct {
	mu       sync.RWMutex
	handlers map[string]func(ctx context.Context, param any) (any, error)
}

// NewHandlerTable creates an empty handler table.
func NewHandlerTable() *HandlerTable {
	return &HandlerTable{
		handlers: make(map[string]func(ctx context.Context, param any) (any, error)),
	}
}

// Names returns the registered event names in sorted order.
func (t *HandlerTable) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.handlers))
	for name := range t.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Handle registers fn as the handler for k, replacing any previous handler
// for the same name. The key's types flow into fn's signature, so a table
// can only ever hold handlers that match their declared events.
func Handle[P, R any](t *HandlerTable, k Key[P, R], fn func(ctx context.Context, param P) (R, error)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.handlers[k.Name()] = func(ctx context.Context, param any) (any, error) {
		p, ok := param.(P)
		if !ok {
			return nil, fmt.Errorf("%w: event %q expects %T, got %T", ErrSignatureMismatch, k.Name(), *new(P), param)
		}
		return fn(ctx, p)
	}
}

// Dispatch looks up the handler for k and invokes it with param, returning
// the handler's result unchanged.
//
// An unregistered name returns ErrNoHandler wrapped with the event name. A
// name collision between keys of different types returns
// ErrSignatureMismatch. Handler errors propagate unmodified.
func Dispatch[P, R any](ctx context.Context, t *HandlerTable, k Key[P, R], param P) (R, error) {
	var zero R

	t.mu.RLock()
	fn, ok := t.handlers[k.Name()]
	t.mu.RUnlock()

	if !ok {
		metrics.ModelDispatches.WithLabelValues(k.Name(), "no_handler").Inc()
		return zero, fmt.Errorf("%w: %q", ErrNoHandler, k.Name())
	}

	out, err := fn(ctx, param)
	if err != nil {
		metrics.ModelDispatches.WithLabelValues(k.Name(), "error").Inc()
		return zero, err
	}

	if out == nil {
		// Nil results of interface or pointer kind lose their type when
		// boxed; treat them as the zero R rather than a mismatch.
		metrics.ModelDispatches.WithLabelValues(k.Name(), "ok").Inc()
		return zero, nil
	}

	result, ok := out.(R)
	if !ok {
		// The handler under this name was registered through a key with a
		// different result type.
		metrics.ModelDispatches.WithLabelValues(k.Name(), "error").Inc()
		return zero, fmt.Errorf("%w: event %q produced %T", ErrSignatureMismatch, k.Name(), out)
	}

	metrics.ModelDispatches.WithLabelValues(k.Name(), "ok").Inc()
	return result, nil
}
