// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"sync"

	"github.com/choria-io/upm/model"
)

// MemorySessionStore stores operation events in memory for the life of the process
type MemorySessionStore struct {
	events []*model.OperationEvent
	log    model.Logger
	mu     sync.Mutex
}

var _ model.SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates a new in-memory session store
func NewMemorySessionStore(logger model.Logger) (*MemorySessionStore, error) {
	logger.Debug("Creating new session store")

	return &MemorySessionStore{
		log:    logger,
		events: make([]*model.OperationEvent, 0),
	}, nil
}

// RecordEvent adds an operation event to the session
func (s *MemorySessionStore) RecordEvent(event *model.OperationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updateMetrics(event)

	s.events = append(s.events, event)

	return nil
}

// AllEvents returns all events in the session in time order
func (s *MemorySessionStore) AllEvents() ([]*model.OperationEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eventsCopy := make([]*model.OperationEvent, len(s.events))
	copy(eventsCopy, s.events)

	return eventsCopy, nil
}
