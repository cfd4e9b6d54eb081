package goAccount

import "sync/atomic"

// MetricID defines a public type used by goAccount APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricSignupLinkIssued is an exported constant or variable used by the account engine.
	MetricSignupLinkIssued MetricID = iota
	// MetricAccountCreationSuccess is an exported constant or variable used by the account engine.
	MetricAccountCreationSuccess
	// MetricAccountCreationDuplicate is an exported constant or variable used by the account engine.
	MetricAccountCreationDuplicate
	// MetricAccountCreationDenied is an exported constant or variable used by the account engine.
	MetricAccountCreationDenied
	// MetricResetLinkIssued is an exported constant or variable used by the account engine.
	MetricResetLinkIssued
	// MetricResetConfirmSuccess is an exported constant or variable used by the account engine.
	MetricResetConfirmSuccess
	// MetricResetConfirmDenied is an exported constant or variable used by the account engine.
	MetricResetConfirmDenied
	// MetricAccountNotFound is an exported constant or variable used by the account engine.
	MetricAccountNotFound

	metricIDCount
)

// Metrics holds lock-free counters for engine flows.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]atomic.Uint64
}

// MetricsSnapshot is a point-in-time deep copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc describes the inc operation and its observable behavior.
//
// Inc does not mutate shared global state beyond its own counters and can be used concurrently.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// Get describes the get operation and its observable behavior.
//
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Get(id MetricID) uint64 {
	if m == nil || !m.enabled || id >= metricIDCount {
		return 0
	}
	return m.counters[id].Load()
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, metricIDCount),
	}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	return snap
}
