// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/segmentio/ksuid"

	iu "github.com/choria-io/upm/internal/util"
	"github.com/choria-io/upm/model"
)

// DirectorySessionStore stores operation events in a directory of files
type DirectorySessionStore struct {
	directory string
	log       model.Logger
	mu        sync.Mutex
}

var _ model.SessionStore = (*DirectorySessionStore)(nil)

// NewDirectorySessionStore creates a new directory of files based session store, the directory is created when needed
func NewDirectorySessionStore(directory string, logger model.Logger) (*DirectorySessionStore, error) {
	if directory == "" {
		return nil, fmt.Errorf("session directory path cannot be empty")
	}

	absDir, err := filepath.Abs(filepath.Clean(directory))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	logger.Debug("Creating new session store", "directory", absDir)

	return &DirectorySessionStore{
		log:       logger,
		directory: absDir,
	}, nil
}

// RecordEvent writes event to <event id>.event in the session directory
func (s *DirectorySessionStore) RecordEvent(event *model.OperationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updateMetrics(event)

	// ksuids are base62 so they are safe to use as file names
	_, err := ksuid.Parse(event.EventID)
	if err != nil {
		return fmt.Errorf("invalid event ID: %w", err)
	}

	if !iu.IsDirectory(s.directory) {
		err = os.MkdirAll(s.directory, 0755)
		if err != nil {
			return fmt.Errorf("could not create session store %s: %w", s.directory, err)
		}
	}

	data, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return err
	}

	filename := filepath.Join(s.directory, event.EventID+".event")
	s.log.Debug("Recording event", "filename", filename)

	return os.WriteFile(filename, data, 0644)
}

// AllEvents returns all events in the session sorted by time order (oldest first)
func (s *DirectorySessionStore) AllEvents() ([]*model.OperationEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []*model.OperationEvent

	entries, err := os.ReadDir(s.directory)
	if err != nil {
		if os.IsNotExist(err) {
			return events, nil
		}
		return nil, fmt.Errorf("failed to read session directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".event") {
			continue
		}

		filename := filepath.Join(s.directory, entry.Name())
		data, err := os.ReadFile(filename)
		if err != nil {
			s.log.Error("Failed to read event file", "filename", filename, "error", err)
			continue
		}

		var event model.OperationEvent
		err = json.Unmarshal(data, &event)
		if err != nil {
			s.log.Error("Failed to parse event", "filename", filename, "error", err)
			continue
		}

		if event.Protocol != model.OperationEventProtocol {
			s.log.Warn("Unknown event protocol", "filename", filename, "protocol", event.Protocol)
			continue
		}

		events = append(events, &event)
	}

	// ksuids are k-sortable so this gives us time order
	sort.Slice(events, func(i, j int) bool {
		return events[i].EventID < events[j].EventID
	})

	return events, nil
}
