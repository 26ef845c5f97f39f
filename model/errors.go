// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
	"fmt"

	"github.com/kballard/go-shellquote"
)

var (
	ErrCommandFailed            = errors.New("command failed")
	ErrTextDecode               = errors.New("output is not valid text")
	ErrRequiredComponentMissing = errors.New("required optional component missing")
	ErrInvalidFilterPattern     = errors.New("invalid filter pattern")
	ErrCancelled                = errors.New("cancelled by user")
	ErrUnknownOperation         = errors.New("unknown operation")
	ErrBackendNotFound          = errors.New("backend not found")
	ErrBackendNotManageable     = errors.New("backend is not manageable")
	ErrNoSuitableBackend        = errors.New("no suitable backend found")
	ErrDuplicateBackend         = errors.New("backend already exists")
)

// CommandError is returned when a process exits with a nonzero status, ExitCode is -1 when it was terminated by a signal
type CommandError struct {
	Program  string
	Args     []string
	ExitCode int
}

func (e *CommandError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s: %s was terminated", ErrCommandFailed, shellquote.Join(append([]string{e.Program}, e.Args...)...))
	}

	return fmt.Sprintf("%s: %s exited %d", ErrCommandFailed, shellquote.Join(append([]string{e.Program}, e.Args...)...), e.ExitCode)
}

func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}
