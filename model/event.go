// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
	"time"

	"github.com/segmentio/ksuid"
)

const OperationEventProtocol = "io.choria.upm.v1.operation"

// Outcomes of an operation
const (
	OutcomeSuccess   = "success"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// OperationEvent records the result of one dispatched operation
type OperationEvent struct {
	Protocol  string        `json:"protocol"`
	EventID   string        `json:"event_id"`
	TimeStamp time.Time     `json:"timestamp"`
	RunID     string        `json:"run_id"`
	Backend   string        `json:"backend"`
	Operation Operation     `json:"operation"`
	Keywords  []string      `json:"keywords,omitempty"`
	Flags     []string      `json:"flags,omitempty"`
	DryRun    bool          `json:"dry_run"`
	Outcome   string        `json:"outcome"`
	ExitCode  int           `json:"exit_code,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// NewOperationEvent creates an event for op with a new unique sortable id
func NewOperationEvent(runID string, backend string, op Operation, kws []string, flags []string) *OperationEvent {
	return &OperationEvent{
		Protocol:  OperationEventProtocol,
		EventID:   ksuid.New().String(),
		TimeStamp: time.Now().UTC(),
		RunID:     runID,
		Backend:   backend,
		Operation: op,
		Keywords:  kws,
		Flags:     flags,
		Outcome:   OutcomeSuccess,
	}
}

// Complete sets the outcome of the event based on err
func (e *OperationEvent) Complete(err error) {
	e.Duration = time.Since(e.TimeStamp)

	var cerr *CommandError

	switch {
	case err == nil:
		e.Outcome = OutcomeSuccess
	case errors.Is(err, ErrCancelled):
		e.Outcome = OutcomeCancelled
	case errors.As(err, &cerr):
		e.Outcome = OutcomeFailed
		e.ExitCode = cerr.ExitCode
		e.Error = err.Error()
	default:
		e.Outcome = OutcomeError
		e.Error = err.Error()
	}
}

// SessionStore keeps a journal of operation events
type SessionStore interface {
	RecordEvent(event *OperationEvent) error
	AllEvents() ([]*OperationEvent, error)
}

// SessionSummary summarizes a set of operation events
type SessionSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
	Errored   int `json:"errored"`
}

// BuildSessionSummary counts events by outcome
func BuildSessionSummary(events []*OperationEvent) *SessionSummary {
	s := &SessionSummary{Total: len(events)}

	for _, e := range events {
		switch e.Outcome {
		case OutcomeSuccess:
			s.Succeeded++
		case OutcomeFailed:
			s.Failed++
		case OutcomeCancelled:
			s.Cancelled++
		default:
			s.Errored++
		}
	}

	return s
}
