// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"fmt"
	"io"

	"github.com/choria-io/upm/model"
)

// Option is a functional option for configuring UPM
type Option func(*UPM) error

// WithConfig sets the configuration backends are created with
func WithConfig(cfg model.Config) Option {
	return func(m *UPM) error {
		m.cfg = cfg
		return nil
	}
}

// WithRunner sets the runner used to spawn package manager commands
func WithRunner(runner model.CommandRunner) Option {
	return func(m *UPM) error {
		if runner == nil {
			return fmt.Errorf("runner is required")
		}

		m.runner = runner

		return nil
	}
}

// WithConfirmer sets how destructive commands are confirmed
func WithConfirmer(confirm model.Confirmer) Option {
	return func(m *UPM) error {
		if confirm == nil {
			return fmt.Errorf("confirmer is required")
		}

		m.confirm = confirm

		return nil
	}
}

// WithOutput sets the streams connected to the user
func WithOutput(stdin io.Reader, stdout io.Writer, stderr io.Writer) Option {
	return func(m *UPM) error {
		if stdin == nil || stdout == nil || stderr == nil {
			return fmt.Errorf("all of stdin, stdout and stderr are required")
		}

		m.stdin = stdin
		m.stdout = stdout
		m.stderr = stderr

		return nil
	}
}

// WithSessionStore sets the store operations are recorded in
func WithSessionStore(store model.SessionStore) Option {
	return func(m *UPM) error {
		m.session = store
		return nil
	}
}
