package mvc

import (
	"sync"

	"Trellis/internal/core/event"
	"Trellis/internal/shared/metrics"
)

// ModelBase carries a Model's handler table. Concrete Models embed it and
// register their handlers in the constructor.
type ModelBase struct {
	events *event.HandlerTable
}

// NewModelBase creates a ModelBase with an empty handler table.
func NewModelBase() ModelBase {
	return ModelBase{events: event.NewHandlerTable()}
}

// Events returns the handler table.
func (b *ModelBase) Events() *event.HandlerTable {
	return b.events
}

// ViewBase carries a View's callback table. Concrete Views embed it; hosts
// and controllers bind callbacks through it at any point in the View's
// lifecycle.
type ViewBase struct {
	callbacks *event.CallbackTable
}

// NewViewBase creates a ViewBase with an empty callback table.
func NewViewBase() ViewBase {
	return ViewBase{callbacks: event.NewCallbackTable()}
}

// Callbacks returns the callback table.
func (b *ViewBase) Callbacks() *event.CallbackTable {
	return b.callbacks
}

// ControllerBase carries a Controller's render sink and the barrier that
// serializes its mutate-fetch-render cycles. The sink defaults to a no-op
// until OnUpdate installs one.
type ControllerBase[N any] struct {
	sinkMu sync.RWMutex
	sink   func(N)

	// cycleMu serializes complete mutate-fetch-render-push cycles, so a
	// slow fetch cannot let a later interaction's render overtake an
	// earlier one. See DESIGN.md on render ordering.
	cycleMu sync.Mutex
}

// OnUpdate installs the sink invoked for every subsequently pushed UI node.
// Last registration wins; nodes pushed before registration are not
// replayed.
func (b *ControllerBase[N]) OnUpdate(sink func(node N)) {
	b.sinkMu.Lock()
	defer b.sinkMu.Unlock()
	b.sink = sink
}

// Push hands a freshly rendered UI node to the current sink. With no sink
// installed it is a no-op.
func (b *ControllerBase[N]) Push(node N) {
	b.sinkMu.RLock()
	sink := b.sink
	b.sinkMu.RUnlock()

	if sink == nil {
		return
	}
	metrics.RenderPushes.Inc()
	sink(node)
}
