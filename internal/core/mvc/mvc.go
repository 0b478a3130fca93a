// Package mvc defines the three role contracts of the scaffolding — Model,
// View and Controller — together with embeddable base structs and the
// wiring helpers that connect a View's events to a Model's mutations and a
// Controller's re-render cycle.
package mvc

import (
	"context"

	"Trellis/internal/core/event"
)

// Model owns mutable application state of type D. State is mutated only by
// handlers dispatched through the event table; FetchData observes it.
type Model[D any] interface {
	// Events returns the Model's total handler table. Dispatching an event
	// name with no registered handler is a contract violation and fails.
	Events() *event.HandlerTable

	// FetchData returns the Model's current data snapshot. It never mutates
	// state as a side effect; the fetch strategy (in-memory, cache, remote)
	// belongs to the concrete implementation, as do any faults it raises.
	FetchData(ctx context.Context) (D, error)
}

// View turns data of type D into an opaque UI node of type N owned by a
// host toolkit. Render is pure construction; any interaction wiring inside
// the produced node must resolve callbacks through the View's table at
// interaction time, never capture them at render time.
type View[D, N any] interface {
	// Callbacks returns the View's partial callback table. Firing an event
	// nobody bound is a no-op, never a failure.
	Callbacks() *event.CallbackTable

	// Render constructs a UI node from data. Rendering the same data twice
	// produces structurally equivalent nodes. Faults propagate to the
	// caller unmodified.
	Render(data D) (N, error)
}

// Controller composes one Model and one View, referenced only through the
// role contracts, and exposes a single externally observable channel: "a
// new UI node is ready."
type Controller[N any] interface {
	// OnUpdate installs the sink that receives every subsequently produced
	// UI node. The last registration wins; past renders are not replayed.
	OnUpdate(sink func(node N))

	// Run performs the controller's startup sequence. A controller that is
	// to display anything must eventually render and push at least once.
	Run(ctx context.Context) error
}
