// Package metrics exposes the process-wide prometheus instruments for the
// dispatch and render pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ModelDispatches counts Model handler dispatches by event name and
	// outcome ("ok", "error", "no_handler").
	ModelDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trellis_model_dispatches_total",
		Help: "Model handler dispatches by event name and outcome.",
	}, []string{"event", "outcome"})

	// ViewCallbacks counts View callback firings by event name and whether
	// a callback was bound at fire time.
	ViewCallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trellis_view_callbacks_total",
		Help: "View callback firings by event name and binding state.",
	}, []string{"event", "binding"})

	// RenderPushes counts UI nodes pushed through controller update sinks.
	RenderPushes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trellis_render_pushes_total",
		Help: "UI nodes pushed through controller update sinks.",
	})

	// RenderFaults counts mutate-fetch-render cycles abandoned because the
	// dispatch, fetch or render step failed.
	RenderFaults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trellis_render_faults_total",
		Help: "Re-render cycles abandoned due to a dispatch, fetch or render fault.",
	})
)

// Handler returns the HTTP handler serving the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
