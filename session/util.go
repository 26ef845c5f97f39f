// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/choria-io/upm/metrics"
	"github.com/choria-io/upm/model"
)

func updateMetrics(event *model.OperationEvent) {
	op := event.Operation.String()

	metrics.OperationCount.WithLabelValues(event.Backend, op).Inc()

	switch event.Outcome {
	case model.OutcomeFailed, model.OutcomeError:
		metrics.OperationErrorCount.WithLabelValues(event.Backend, op).Inc()
	}
}

// FilterEvents returns events for operation op, all events when op is empty
func FilterEvents(events []*model.OperationEvent, op model.Operation) []*model.OperationEvent {
	if op == "" {
		return events
	}

	var filtered []*model.OperationEvent
	for _, event := range events {
		if event.Operation == op {
			filtered = append(filtered, event)
		}
	}

	return filtered
}

func eventEnv(event *model.OperationEvent) map[string]any {
	return map[string]any{
		"run_id":    event.RunID,
		"backend":   event.Backend,
		"operation": event.Operation.String(),
		"keywords":  event.Keywords,
		"flags":     event.Flags,
		"dry_run":   event.DryRun,
		"outcome":   event.Outcome,
		"exit_code": event.ExitCode,
		"error":     event.Error,
		"duration":  event.Duration.Seconds(),
	}
}

// SelectEvents returns the events for which the boolean expression where is true, all events when where is empty
func SelectEvents(events []*model.OperationEvent, where string) ([]*model.OperationEvent, error) {
	if where == "" {
		return events, nil
	}

	program, err := expr.Compile(where, expr.Env(eventEnv(&model.OperationEvent{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("expr compile error for '%s': %w", where, err)
	}

	var selected []*model.OperationEvent
	for _, event := range events {
		res, err := expr.Run(program, eventEnv(event))
		if err != nil {
			return nil, fmt.Errorf("expr evaluation failed for event %s: %w", event.EventID, err)
		}

		if res.(bool) {
			selected = append(selected, event)
		}
	}

	return selected, nil
}
