package mvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"Trellis/internal/core/event"
	"Trellis/internal/shared/metrics"
)

// React binds a View callback for k that applies the idiomatic subscription
// pattern: dispatch the mutation to the Model synchronously, fetch the
// fresh snapshot, re-render the View and push the node through the
// Controller's sink.
//
// The whole cycle runs behind the Controller's cycle barrier, so mutations
// apply in the order their events fired and render pushes cannot reorder
// across overlapping fetches. A dispatch, fetch or render fault abandons
// that cycle's render; it is logged, counted and does not poison the
// controller.
func React[P, R, D, N any](b *ControllerBase[N], model Model[D], view View[D, N], k event.Key[P, R], log zerolog.Logger) {
	event.Bind(view.Callbacks(), k, func(ctx context.Context, param P) {
		b.cycleMu.Lock()
		defer b.cycleMu.Unlock()

		cycleLog := log.With().
			Str("event", k.Name()).
			Str("cycle_id", uuid.NewString()).
			Logger()

		if _, err := event.Dispatch(ctx, model.Events(), k, param); err != nil {
			cycleLog.Error().Err(err).Msg("Event dispatch failed")
			metrics.RenderFaults.Inc()
			return
		}

		if err := refresh(ctx, b, model, view); err != nil {
			cycleLog.Error().Err(err).Msg("Re-render failed")
			metrics.RenderFaults.Inc()
			return
		}

		cycleLog.Debug().Msg("Cycle complete")
	})
}

// Refresh fetches the Model's current snapshot, renders the View with it
// and pushes the node through the sink, behind the cycle barrier. Concrete
// controllers use it for their initial render in Run; fetch and render
// faults propagate to the caller.
func Refresh[D, N any](ctx context.Context, b *ControllerBase[N], model Model[D], view View[D, N]) error {
	b.cycleMu.Lock()
	defer b.cycleMu.Unlock()
	return refresh(ctx, b, model, view)
}

// refresh runs fetch-render-push. Callers hold cycleMu.
func refresh[D, N any](ctx context.Context, b *ControllerBase[N], model Model[D], view View[D, N]) error {
	data, err := model.FetchData(ctx)
	if err != nil {
		return err
	}

	node, err := view.Render(data)
	if err != nil {
		return err
	}

	b.Push(node)
	return nil
}
