// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package engine runs mapped package manager commands under an execution mode
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/choria-io/upm/metrics"
	"github.com/choria-io/upm/model"
)

const confirmQuestion = "Proceed with the previous command?"

// Engine executes commands uniformly for all backends
type Engine struct {
	runner  model.CommandRunner
	confirm model.Confirmer
	log     model.Logger
	out     model.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ model.Executor = (*Engine)(nil)

// InputSource is implemented by confirmers that may read ahead of their answers
type InputSource interface {
	Input() io.Reader
}

// Option configures an Engine
type Option func(*Engine)

// WithTerminal sets the streams connected to spawned commands in CheckErr mode
func WithTerminal(stdin io.Reader, stdout io.Writer, stderr io.Writer) Option {
	return func(e *Engine) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// New creates an engine, out receives the command echo and other user facing messages
func New(runner model.CommandRunner, confirm model.Confirmer, log model.Logger, out model.Logger, opts ...Option) *Engine {
	e := &Engine{
		runner:  runner,
		confirm: confirm,
		log:     log,
		out:     out,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Execute runs cmd under mode. In Prompt mode a declined confirmation returns model.ErrCancelled
// without spawning anything. A nonzero exit returns a *model.CommandError together with the
// result so captured stderr can still be inspected.
func (e *Engine) Execute(ctx context.Context, cmd model.Command, mode model.ExecutionMode) (*model.CommandResult, error) {
	if mode == model.DryRun {
		e.out.Info(fmt.Sprintf("Pending: %s", cmd))
		metrics.CommandRunCount.WithLabelValues(cmd.Program, mode.String(), metrics.OutcomePreview).Inc()
		return &model.CommandResult{}, nil
	}

	e.out.Info(fmt.Sprintf("Running: %s", cmd))

	if mode == model.Prompt {
		ok, err := e.confirm.Confirm(ctx, confirmQuestion)
		if err != nil {
			metrics.CommandRunCount.WithLabelValues(cmd.Program, mode.String(), metrics.OutcomeError).Inc()
			return nil, fmt.Errorf("could not confirm command: %w", err)
		}

		if !ok {
			e.log.Debug("Command declined by user", "command", cmd.String())
			metrics.CommandRunCount.WithLabelValues(cmd.Program, mode.String(), metrics.OutcomeCancelled).Inc()
			return nil, model.ErrCancelled
		}
	}

	opts := model.ExtendedExecOptions{
		Command:            cmd.Program,
		Args:               cmd.Args(),
		InheritEnvironment: true,
	}

	if mode != model.Mute {
		opts.Stdin = e.input()
		opts.Stdout = e.stdout
		opts.Stderr = e.stderr
	}

	start := time.Now()
	stdout, stderr, exitCode, err := e.runner.ExecuteWithOptions(ctx, opts)
	metrics.CommandRunTime.WithLabelValues(cmd.Program, mode.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CommandRunCount.WithLabelValues(cmd.Program, mode.String(), metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("could not run %s: %w", cmd.Program, err)
	}

	res := &model.CommandResult{Stderr: stderr, ExitCode: exitCode}
	if mode == model.Mute {
		res.Stdout = stdout
	}

	if exitCode != 0 {
		metrics.CommandRunCount.WithLabelValues(cmd.Program, mode.String(), metrics.OutcomeFailed).Inc()

		// captured stderr is otherwise never shown
		if mode == model.Mute {
			if reason := strings.TrimSpace(string(stderr)); reason != "" {
				e.out.Warn(reason)
			}
		}

		return res, &model.CommandError{Program: cmd.Program, Args: cmd.Args(), ExitCode: exitCode}
	}

	metrics.CommandRunCount.WithLabelValues(cmd.Program, mode.String(), metrics.OutcomeSuccess).Inc()

	return res, nil
}

func (e *Engine) input() io.Reader {
	src, ok := e.confirm.(InputSource)
	if !ok {
		return e.stdin
	}

	in := src.Input()
	if in == nil {
		return e.stdin
	}

	return in
}

// DecodeText converts captured output to text, invalid UTF-8 is an error rather than being replaced
func DecodeText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", model.ErrTextDecode
	}

	return string(b), nil
}

// IsCancelled determines if err is a declined confirmation
func IsCancelled(err error) bool {
	return errors.Is(err, model.ErrCancelled)
}
