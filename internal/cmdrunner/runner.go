// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmdrunner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/choria-io/upm/model"
)

var defaultEnvironment = []string{
	"PATH=/usr/bin:/bin:/usr/sbin:/sbin:/usr/local/bin:/usr/local/sbin",
	"LANG=C",
	"LC_ALL=C",
}

// CommandRunner executes system commands and captures their output
type CommandRunner struct {
	logger model.Logger
}

// NewCommandRunner creates a new CommandRunner instance with the provided logger
func NewCommandRunner(log model.Logger) (*CommandRunner, error) {
	return &CommandRunner{logger: log}, nil
}

// ExecuteWithOptions runs a command to completion, a nonzero exit or termination by a signal is reported in the exit code and not as an error
func (c *CommandRunner) ExecuteWithOptions(ctx context.Context, opts model.ExtendedExecOptions) ([]byte, []byte, int, error) {
	if opts.Command == "" {
		return nil, nil, 0, errors.New("command not specified")
	}

	logOpts := []any{
		"command", opts.Command, "args", opts.Args,
	}
	if opts.Cwd != "" {
		logOpts = append(logOpts, "cwd", opts.Cwd)
	}

	c.logger.Debug("Running command", logOpts...)

	toCtx := ctx
	var cancel context.CancelFunc
	if opts.Timeout > 0 {
		toCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(toCtx, opts.Command, opts.Args...)
	if cancel != nil {
		cmd.Cancel = func() error { cancel(); return nil }
	}

	if opts.InheritEnvironment {
		cmd.Env = os.Environ()
	} else {
		cmd.Env = append([]string{}, defaultEnvironment...)
	}
	cmd.Env = append(cmd.Env, opts.Environment...)

	switch {
	case opts.Cwd != "":
		cmd.Dir = opts.Cwd
	case !opts.InheritEnvironment:
		cmd.Dir = "/"
	}

	if opts.Path != "" {
		cmd.Path = opts.Path
	}

	stdout := bytes.NewBuffer([]byte{})
	stderr := bytes.NewBuffer([]byte{})

	cmd.Stdin = opts.Stdin

	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	} else {
		cmd.Stdout = stdout
	}

	if opts.Stderr != nil {
		cmd.Stderr = io.MultiWriter(stderr, opts.Stderr)
	} else {
		cmd.Stderr = stderr
	}

	err := cmd.Run()
	exitCode := cmd.ProcessState.ExitCode()

	c.logger.Debug("Command finished", "command", opts.Command, "exitcode", exitCode)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// the process ran, so a failure is reported in the exit code, -1 when it was terminated by a signal
		if exitCode < 0 {
			c.logger.Debug("Command terminated", "command", opts.Command, "state", exitErr.String())
		}

		return stdout.Bytes(), stderr.Bytes(), exitCode, nil
	}

	if err != nil {
		return stdout.Bytes(), stderr.Bytes(), exitCode, err
	}

	return stdout.Bytes(), stderr.Bytes(), exitCode, nil
}

// Execute runs a command with the given arguments and returns stdout, stderr, exit code, and any error
func (c *CommandRunner) Execute(ctx context.Context, command string, args ...string) ([]byte, []byte, int, error) {
	return c.ExecuteWithOptions(ctx, model.ExtendedExecOptions{Command: command, Args: args})
}
