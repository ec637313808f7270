package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	UpstreamCoach    = "coach"
	UpstreamChessCom = "chesscom"
	UpstreamLichess  = "lichess"

	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	// Registry holds every collector of this service; it is not the global
	// default registry so tests can build routers repeatedly.
	Registry = prometheus.NewRegistry()

	upstreamRequests = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "chesscoach_upstream_requests_total",
			Help: "Outbound requests to third-party APIs by upstream and outcome.",
		},
		[]string{"upstream", "outcome"},
	)

	scenariosServed = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "chesscoach_scenarios_served_total",
			Help: "Endgame scenarios served by resolved category.",
		},
		[]string{"type"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveUpstream records one outbound call.
func ObserveUpstream(upstream string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	upstreamRequests.WithLabelValues(upstream, outcome).Inc()
}

// ObserveScenario records one served scenario.
func ObserveScenario(category string) {
	scenariosServed.WithLabelValues(category).Inc()
}

// Handler exposes Registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
