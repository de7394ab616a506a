// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the samples harness.
//
// A nil *Metrics is valid and records nothing, so components can be built
// without metrics in tests.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "ziqni_samples"

// Request outcomes recorded by ObserveRequest.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeTimeout  = "timeout"
	OutcomeCanceled = "canceled"
	OutcomeClosed   = "closed"
)

// Metrics is the set of collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	leaderboardPushes  prometheus.Counter
	leaderboardEntries *prometheus.CounterVec
	journalFailures    prometheus.Counter
	streamFrames       *prometheus.CounterVec
	streamRequests     *prometheus.CounterVec
	streamConnected    prometheus.Gauge

	connectionState atomic.Value
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a new registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		leaderboardPushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leaderboard",
			Name:      "pushes_total",
			Help:      "Non-empty leaderboard updates processed",
		}),
		leaderboardEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leaderboard",
			Name:      "entries_total",
			Help:      "Leaderboard entries compared against the previous snapshot, by result",
		}, []string{"result"}),
		journalFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leaderboard",
			Name:      "journal_failures_total",
			Help:      "Delta journal writes that failed",
		}),
		streamFrames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "frames_received_total",
			Help:      "Frames read from the streaming connection, by frame type",
		}, []string{"type"}),
		streamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "requests_total",
			Help:      "Stream requests issued, by outcome",
		}, []string{"outcome"}),
		streamConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "connected",
			Help:      "1 while the streaming connection is open",
		}),
	}
	m.connectionState.Store("idle")

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.leaderboardPushes,
		m.leaderboardEntries,
		m.journalFailures,
		m.streamFrames,
		m.streamRequests,
		m.streamConnected,
	)

	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveLeaderboardPush records one processed push with its changed and
// unchanged entry counts.
func (m *Metrics) ObserveLeaderboardPush(changed, unchanged int) {
	if m == nil {
		return
	}
	m.leaderboardPushes.Inc()
	m.leaderboardEntries.WithLabelValues("changed").Add(float64(changed))
	m.leaderboardEntries.WithLabelValues("unchanged").Add(float64(unchanged))
}

// ObserveJournalFailure records one failed journal write.
func (m *Metrics) ObserveJournalFailure() {
	if m == nil {
		return
	}
	m.journalFailures.Inc()
}

// ObserveFrame records one received frame.
func (m *Metrics) ObserveFrame(frameType string) {
	if m == nil {
		return
	}
	m.streamFrames.WithLabelValues(frameType).Inc()
}

// ObserveRequest records the outcome of one stream request.
func (m *Metrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.streamRequests.WithLabelValues(outcome).Inc()
}

// SetConnectionState records the latest streaming connection state.
func (m *Metrics) SetConnectionState(state string, connected bool) {
	if m == nil {
		return
	}
	m.connectionState.Store(state)
	if connected {
		m.streamConnected.Set(1)
	} else {
		m.streamConnected.Set(0)
	}
}

// ConnectionState returns the state last passed to SetConnectionState.
func (m *Metrics) ConnectionState() string {
	if m == nil {
		return "unknown"
	}
	return m.connectionState.Load().(string)
}
