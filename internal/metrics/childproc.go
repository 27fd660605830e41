// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package metrics exposes prometheus instrumentation for child process lifecycles.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SpawnTotal counts process creation attempts by result (ok, error).
	SpawnTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "childproc_spawn_total",
		Help: "Total number of child process creation attempts",
	}, []string{"result"})

	// ReapTotal counts reaped children by the call that observed the exit
	// (wait, try_wait) and by outcome (success, failure).
	ReapTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "childproc_reap_total",
		Help: "Total number of reaped child processes",
	}, []string{"path", "outcome"})

	// KillTotal counts termination requests by result (ok, error).
	KillTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "childproc_kill_total",
		Help: "Total number of child process termination requests",
	}, []string{"result"})

	// LiveHandles tracks handle pairs that are held and not yet released.
	LiveHandles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "childproc_live_handles",
		Help: "Number of child processes whose OS handles have not been released",
	})
)

// IncSpawn records a process creation attempt.
func IncSpawn(result string) {
	SpawnTotal.WithLabelValues(result).Inc()
}

// IncReap records a reaped child.
func IncReap(path, outcome string) {
	ReapTotal.WithLabelValues(path, outcome).Inc()
}

// IncKill records a termination request.
func IncKill(result string) {
	KillTotal.WithLabelValues(result).Inc()
}

func IncLiveHandles() { LiveHandles.Inc() }

func DecLiveHandles() { LiveHandles.Dec() }
