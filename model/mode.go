// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

// ExecutionMode determines the side effects of running a single command
type ExecutionMode int

const (
	// DryRun prints the command without running it
	DryRun ExecutionMode = iota
	// Prompt asks for confirmation and then behaves like CheckErr
	Prompt
	// CheckErr streams output to the user and fails on a nonzero exit
	CheckErr
	// Mute captures output without showing it and fails on a nonzero exit
	Mute
)

func (m ExecutionMode) String() string {
	switch m {
	case DryRun:
		return "dryrun"
	case Prompt:
		return "prompt"
	case CheckErr:
		return "checkerr"
	case Mute:
		return "mute"
	default:
		return "unknown"
	}
}

// OperationClass describes how mutating an operation is, it drives mode selection
type OperationClass int

const (
	// InfoClass operations only display information or are safe to run once intended
	InfoClass OperationClass = iota
	// PromptedClass operations are destructive and require confirmation unless told otherwise
	PromptedClass
	// CaptureClass operations capture a listing for local processing
	CaptureClass
)

// ResolveMode determines the execution mode for an operation class under a configuration
func ResolveMode(cfg Config, class OperationClass) ExecutionMode {
	if cfg.DryRun {
		return DryRun
	}

	switch class {
	case PromptedClass:
		if cfg.NoConfirm {
			return CheckErr
		}
		return Prompt
	case CaptureClass:
		return Mute
	default:
		return CheckErr
	}
}
