package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Claim outcomes
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Settlement directions
const (
	DirectionAward   = "award"
	DirectionPenalty = "penalty"
)

// Room lifecycle events
const (
	RoomCreated = "created"
	RoomJoined  = "joined"
	RoomDeleted = "deleted"
)

// Metrics holds the business metrics for the buzzer service on a private
// Prometheus registry. All record methods are safe on a nil receiver so
// callers never have to guard for a disabled collector.
type Metrics struct {
	registry *prometheus.Registry

	buzzClaims      *prometheus.CounterVec
	buzzSettlements *prometheus.CounterVec
	roomEvents      *prometheus.CounterVec
}

// New creates a Metrics collector with all counters registered
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		buzzClaims: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buzzroom_buzz_claims_total",
				Help: "Total buzzer claim attempts by outcome",
			},
			[]string{"outcome"},
		),
		buzzSettlements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buzzroom_buzz_settlements_total",
				Help: "Total settled buzzes by direction",
			},
			[]string{"direction"},
		),
		roomEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buzzroom_room_events_total",
				Help: "Total room lifecycle events by type",
			},
			[]string{"event"},
		),
	}

	registry.MustRegister(m.buzzClaims, m.buzzSettlements, m.roomEvents)

	return m
}

// Handler returns the scrape handler for the private registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordClaim counts one buzzer claim attempt
func (m *Metrics) RecordClaim(accepted bool) {
	if m == nil {
		return
	}
	outcome := OutcomeLost
	if accepted {
		outcome = OutcomeWon
	}
	m.buzzClaims.WithLabelValues(outcome).Inc()
}

// RecordSettlement counts one settled buzz
func (m *Metrics) RecordSettlement(direction string) {
	if m == nil {
		return
	}
	m.buzzSettlements.WithLabelValues(direction).Inc()
}

// RecordRoomEvent counts one room lifecycle event
func (m *Metrics) RecordRoomEvent(event string) {
	if m == nil {
		return
	}
	m.roomEvents.WithLabelValues(event).Inc()
}
