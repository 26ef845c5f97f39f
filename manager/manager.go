// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/segmentio/ksuid"

	"github.com/choria-io/upm/backends"
	"github.com/choria-io/upm/internal/cmdrunner"
	"github.com/choria-io/upm/internal/engine"
	"github.com/choria-io/upm/internal/prompt"
	"github.com/choria-io/upm/internal/registry"
	"github.com/choria-io/upm/metrics"
	"github.com/choria-io/upm/model"
	"github.com/choria-io/upm/session"
)

// UPM selects a backend and runs operations on it
type UPM struct {
	cfg        model.Config
	runID      string
	log        model.Logger
	userLogger model.Logger
	runner     model.CommandRunner
	confirm    model.Confirmer
	session    model.SessionStore
	backend    model.Backend

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	mu sync.Mutex
}

// NewManager creates a new UPM instance with the provided loggers
func NewManager(log model.Logger, userLogger model.Logger, opts ...Option) (*UPM, error) {
	metrics.RegisterMetrics()

	runID := ksuid.New().String()

	mgr := &UPM{
		runID:      runID,
		log:        log.With("run", runID),
		userLogger: userLogger,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	for _, opt := range opts {
		err := opt(mgr)
		if err != nil {
			return nil, err
		}
	}

	var err error

	if mgr.runner == nil {
		mgr.runner, err = cmdrunner.NewCommandRunner(mgr.log.With("component", "runner"))
		if err != nil {
			return nil, err
		}
	}

	if mgr.confirm == nil {
		mgr.confirm = prompt.New(mgr.stdin, mgr.stdout)
	}

	if mgr.session == nil {
		sessionLog := mgr.log.With("component", "session")

		if mgr.cfg.SessionDirectory != "" {
			mgr.session, err = session.NewDirectorySessionStore(mgr.cfg.SessionDirectory, sessionLog)
		} else {
			mgr.session, err = session.NewMemorySessionStore(sessionLog)
		}
		if err != nil {
			return nil, err
		}
	}

	return mgr, nil
}

// RunID is the unique id of this manager, it is logged with every message and recorded with every event
func (m *UPM) RunID() string {
	return m.runID
}

// Config is the configuration backends are created with
func (m *UPM) Config() model.Config {
	return m.cfg
}

// Logger creates a new logger with the provided key-value pairs added to the context
func (m *UPM) Logger(args ...any) (model.Logger, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("invalid logger arguments, must be key value pairs")
	}

	return m.log.With(args...), nil
}

// Backend selects and creates the backend on first use
func (m *UPM) Backend() (model.Backend, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend, nil
	}

	eng := engine.New(m.runner, m.confirm, m.log.With("component", "engine"), m.userLogger, engine.WithTerminal(m.stdin, m.stdout, m.stderr))

	b, err := registry.FindSuitableBackend(m.cfg.Backend, model.BackendOptions{
		Config:     m.cfg,
		Executor:   eng,
		Stdout:     m.stdout,
		Logger:     m.log.With("component", "backend"),
		UserLogger: m.userLogger,
	})
	if err != nil {
		return nil, err
	}

	m.log.Debug("Using backend", "backend", b.Name())
	m.backend = b

	return b, nil
}

// Run runs op on the selected backend and records the outcome in the session store
func (m *UPM) Run(ctx context.Context, op model.Operation, kws []string, flags []string) error {
	b, err := m.Backend()
	if err != nil {
		return err
	}

	event := model.NewOperationEvent(m.runID, b.Name(), op, kws, flags)
	event.DryRun = m.cfg.DryRun

	m.log.Debug("Running operation", "operation", op.String(), "backend", b.Name(), "keywords", kws)

	err = backends.Invoke(ctx, b, op, kws, flags)
	event.Complete(err)

	if rerr := m.session.RecordEvent(event); rerr != nil {
		m.log.Warn("Could not record operation", "operation", op.String(), "error", rerr)
	}

	if werr := metrics.WriteTextfile(m.cfg.MetricsFile); werr != nil {
		m.log.Warn("Could not write metrics", "error", werr)
	}

	return err
}

// History returns recorded operation events, oldest first
func (m *UPM) History() ([]*model.OperationEvent, error) {
	return m.session.AllEvents()
}
