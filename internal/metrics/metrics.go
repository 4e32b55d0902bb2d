// Package metrics exposes prometheus collectors for the bot.
//
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "framebot"

// Metrics holds the bot's collectors
type Metrics struct {
	connectionAttempts prometheus.Counter
	sessionFailures    prometheus.Counter
	inboundLines       *prometheus.CounterVec
	commands           *prometheus.CounterVec
	sessionState       *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		connectionAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connection_attempts_total",
			Help:      "Number of connection attempts to the chat gateway",
		}),
		sessionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_failures_total",
			Help:      "Number of sessions ended by a transport failure",
		}),
		inboundLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inbound_lines_total",
			Help:      "Inbound protocol lines by classification",
		}, []string{"kind"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Handled bot commands by verb and outcome",
		}, []string{"command", "outcome"}),
		sessionState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_state",
			Help:      "1 for the current connection state, 0 otherwise",
		}, []string{"state"}),
		gatherer: registry,
	}
	registry.MustRegister(
		m.connectionAttempts,
		m.sessionFailures,
		m.inboundLines,
		m.commands,
		m.sessionState,
	)
	return m
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.Gatherers{}
	}
	return m.gatherer
}

// ConnectionAttempt counts a dial to the gateway
func (m *Metrics) ConnectionAttempt() {
	if m == nil {
		return
	}
	m.connectionAttempts.Inc()
}

// SessionFailure counts a session torn down by a transport error
func (m *Metrics) SessionFailure() {
	if m == nil {
		return
	}
	m.sessionFailures.Inc()
}

// InboundLine counts an inbound line of the given classification
func (m *Metrics) InboundLine(kind string) {
	if m == nil {
		return
	}
	m.inboundLines.WithLabelValues(kind).Inc()
}

// ObserveCommand counts a handled command
func (m *Metrics) ObserveCommand(command, outcome string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command, outcome).Inc()
}

// SetState marks state as current among all known states
func (m *Metrics) SetState(state string, all []string) {
	if m == nil {
		return
	}
	for _, s := range all {
		value := 0.0
		if s == state {
			value = 1
		}
		m.sessionState.WithLabelValues(s).Set(value)
	}
}
