// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

// Config is the set of options recognized when constructing a backend
type Config struct {
	// DryRun previews commands and never executes them
	DryRun bool `json:"dry_run" yaml:"dry_run"`
	// NoConfirm skips interactive confirmation and fails on nonzero exits instead
	NoConfirm bool `json:"no_confirm" yaml:"no_confirm"`
	// Needed prefers install-if-absent over force-reinstall
	Needed bool `json:"needed" yaml:"needed"`
	// NoCache purges the cache after any operation that populates it
	NoCache bool `json:"no_cache" yaml:"no_cache"`

	// Backend is the preferred backend, empty selects one automatically
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	// MetricsFile receives execution metrics in textfile format after each run
	MetricsFile string `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty"`
	// SessionDirectory keeps a journal of operations when set
	SessionDirectory string `json:"session_directory,omitempty" yaml:"session_directory,omitempty"`
}
