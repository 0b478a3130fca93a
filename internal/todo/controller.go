package todo

import (
	"context"

	"github.com/rs/zerolog"

	"Trellis/internal/core/mvc"
)

// Controller wires a todo Model to a todo View. It is generic over the UI
// node type, so the same controller drives the console and Telegram
// frontends; it references both collaborators only through the role
// contracts.
type Controller[N any] struct {
	mvc.ControllerBase[N]
	model mvc.Model[[]Item]
	view  mvc.View[[]Item, N]
	log   zerolog.Logger
}

var _ mvc.Controller[struct{}] = (*Controller[struct{}])(nil)

// NewController creates the controller and installs its event wiring on the
// view: every todo event becomes a mutate-fetch-render-push cycle.
func NewController[N any](model mvc.Model[[]Item], view mvc.View[[]Item, N], baseLogger *zerolog.Logger) *Controller[N] {
	c := &Controller[N]{
		model: model,
		view:  view,
		log:   baseLogger.With().Str("component", "todo_controller").Logger(),
	}

	mvc.React(&c.ControllerBase, model, view, Add, c.log)
	mvc.React(&c.ControllerBase, model, view, Remove, c.log)
	mvc.React(&c.ControllerBase, model, view, Toggle, c.log)
	mvc.React(&c.ControllerBase, model, view, Clear, c.log)

	return c
}

// Run performs the startup sequence: fetch the current snapshot, render it
// and push the node through the sink. With a fresh in-memory Model that is
// the empty list; a persistent Model surfaces whatever it already holds.
func (c *Controller[N]) Run(ctx context.Context) error {
	c.log.Info().Strs("events", c.model.Events().Names()).Msg("Controller starting")
	return mvc.Refresh(ctx, &c.ControllerBase, c.model, c.view)
}
