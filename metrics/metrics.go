// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	NameSpace = "choria"
	Subsystem = "upm"

	// CommandRunCount counts commands handled by the execution engine by outcome
	CommandRunCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "command_run_count"),
		Help: "How many commands were handled by the execution engine",
	}, []string{"program", "mode", "outcome"})

	// CommandRunTime is a summary of the time spawned commands took to complete
	CommandRunTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "command_run_duration_seconds"),
		Help: "Time taken by spawned package manager commands",
	}, []string{"program", "mode"})

	// OperationCount counts dispatched operations per backend
	OperationCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "operation_count"),
		Help: "How many operations were dispatched to a backend",
	}, []string{"backend", "operation"})

	// OperationErrorCount counts operations that failed
	OperationErrorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "operation_error_count"),
		Help: "How many operations failed",
	}, []string{"backend", "operation"})

	registry = prometheus.NewRegistry()
	regOnce  sync.Once
)

// Outcomes recorded against CommandRunCount
const (
	OutcomeSuccess   = "success"
	OutcomeFailed    = "failed"
	OutcomeError     = "error"
	OutcomeCancelled = "cancelled"
	OutcomePreview   = "preview"
)

// RegisterMetrics registers all metrics with the package registry, it is safe to call multiple times
func RegisterMetrics() {
	regOnce.Do(func() {
		registry.MustRegister(CommandRunCount)
		registry.MustRegister(CommandRunTime)
		registry.MustRegister(OperationCount)
		registry.MustRegister(OperationErrorCount)
	})
}

// Gatherer gives access to the registered metrics
func Gatherer() prometheus.Gatherer {
	return registry
}

// WriteTextfile writes all registered metrics to path in the node exporter textfile format
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}

	RegisterMetrics()

	err := prometheus.WriteToTextfile(path, registry)
	if err != nil {
		return fmt.Errorf("could not write metrics to %s: %w", path, err)
	}

	return nil
}
