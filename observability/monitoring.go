// Package observability aggregates runtime counters for the telemetry
// worker. Counters are atomic; snapshots are cheap and lock-free.
package observability

import "sync/atomic"

type Stats struct {
	EventsDelivered uint64 `json:"events_delivered"`
	EventsDropped   uint64 `json:"events_dropped"`
	AlertsRaised    uint64 `json:"alerts_raised"`
	SessionsCreated uint64 `json:"sessions_created"`
	Reaped          uint64 `json:"reaped"`
}

type Monitor struct {
	eventsDelivered atomic.Uint64
	eventsDropped   atomic.Uint64
	alertsRaised    atomic.Uint64
	sessionsCreated atomic.Uint64
	reaped          atomic.Uint64
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) IncrDelivered() { m.eventsDelivered.Add(1) }

func (m *Monitor) IncrDropped() { m.eventsDropped.Add(1) }

func (m *Monitor) IncrAlertsRaised() { m.alertsRaised.Add(1) }

func (m *Monitor) IncrSessionsCreated() { m.sessionsCreated.Add(1) }

func (m *Monitor) AddReaped(n int) { m.reaped.Add(uint64(n)) }

func (m *Monitor) Snapshot() Stats {
	return Stats{
		EventsDelivered: m.eventsDelivered.Load(),
		EventsDropped:   m.eventsDropped.Load(),
		AlertsRaised:    m.alertsRaised.Load(),
		SessionsCreated: m.sessionsCreated.Load(),
		Reaped:          m.reaped.Load(),
	}
}
