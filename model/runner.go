// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"io"
	"time"
)

type ExtendedExecOptions struct {
	Command     string
	Args        []string
	Cwd         string
	Environment []string
	Path        string
	Timeout     time.Duration

	// InheritEnvironment passes the caller environment to the command before Environment
	InheritEnvironment bool
	// Stdin is attached to the command when set
	Stdin io.Reader
	// Stdout receives output as it is produced, when set stdout is not buffered
	Stdout io.Writer
	// Stderr receives errors as they are produced, stderr is always buffered as well
	Stderr io.Writer
}

type CommandRunner interface {
	Execute(ctx context.Context, cmd string, args ...string) (stdout []byte, stderr []byte, exitCode int, err error)
	ExecuteWithOptions(ctx context.Context, opts ExtendedExecOptions) ([]byte, []byte, int, error)
}

// Confirmer asks the user a yes or no question
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}
