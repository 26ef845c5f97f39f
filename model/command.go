// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"github.com/kballard/go-shellquote"
)

// Command is a fully mapped invocation of an underlying package manager
type Command struct {
	Program    string
	Subcommand []string
	Keywords   []string
	Flags      []string
}

// NewCommand creates a command for program with the given subcommand words
func NewCommand(program string, subcommand ...string) Command {
	return Command{Program: program, Subcommand: subcommand}
}

// WithKeywords returns a copy of the command with keywords set
func (c Command) WithKeywords(kws []string) Command {
	c.Keywords = kws
	return c
}

// WithFlags returns a copy of the command with passthrough flags set
func (c Command) WithFlags(flags []string) Command {
	c.Flags = flags
	return c
}

// Args assembles the arguments passed to the program, subcommand then keywords then flags
func (c Command) Args() []string {
	args := make([]string, 0, len(c.Subcommand)+len(c.Keywords)+len(c.Flags))
	args = append(args, c.Subcommand...)
	args = append(args, c.Keywords...)
	args = append(args, c.Flags...)

	return args
}

// String renders the command as a shell quoted line
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Program}, c.Args()...)...)
}

// CommandResult is the outcome of a command that ran
type CommandResult struct {
	// Stdout is only populated in Mute mode
	Stdout []byte
	// Stderr is captured whenever a process was spawned
	Stderr   []byte
	ExitCode int
}
