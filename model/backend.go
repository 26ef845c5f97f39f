// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"io"
)

// Backend maps every abstract operation onto one package manager
type Backend interface {
	Name() string

	// Query lists installed packages, with keywords it searches them
	Query(ctx context.Context, kws []string, flags []string) error
	// QueryChangelog shows the changelog of a package
	QueryChangelog(ctx context.Context, kws []string, flags []string) error
	// QueryInfo shows local package information
	QueryInfo(ctx context.Context, kws []string, flags []string) error
	// QueryFiles lists files provided by local packages
	QueryFiles(ctx context.Context, kws []string, flags []string) error
	// QuerySearch searches installed packages matching all keywords
	QuerySearch(ctx context.Context, kws []string, flags []string) error
	// QueryUpdates lists packages with an update available
	QueryUpdates(ctx context.Context, kws []string, flags []string) error
	// Remove removes packages leaving their dependencies installed
	Remove(ctx context.Context, kws []string, flags []string) error
	// RemoveWithDeps removes packages and dependencies no longer required
	RemoveWithDeps(ctx context.Context, kws []string, flags []string) error
	// SyncInstall installs packages
	SyncInstall(ctx context.Context, kws []string, flags []string) error
	// SyncClean removes cached packages no longer installed
	SyncClean(ctx context.Context, kws []string, flags []string) error
	// SyncCleanAll removes all files from the cache
	SyncCleanAll(ctx context.Context, kws []string, flags []string) error
	// SyncInfo shows remote package information
	SyncInfo(ctx context.Context, kws []string, flags []string) error
	// SyncReverseDeps shows packages that require the given packages
	SyncReverseDeps(ctx context.Context, kws []string, flags []string) error
	// SyncSearch searches remote packages
	SyncSearch(ctx context.Context, kws []string, flags []string) error
	// SyncUpdate upgrades outdated packages
	SyncUpdate(ctx context.Context, kws []string, flags []string) error
	// SyncUpdateRefresh refreshes the package database then upgrades
	SyncUpdateRefresh(ctx context.Context, kws []string, flags []string) error
	// SyncDownload fetches packages without installing them
	SyncDownload(ctx context.Context, kws []string, flags []string) error
	// SyncRefresh refreshes the package database
	SyncRefresh(ctx context.Context, kws []string, flags []string) error
}

// Executor runs mapped commands under an execution mode
type Executor interface {
	Execute(ctx context.Context, cmd Command, mode ExecutionMode) (*CommandResult, error)
}

// BackendOptions is what a backend needs to be constructed
type BackendOptions struct {
	Config     Config
	Executor   Executor
	Stdout     io.Writer
	Logger     Logger
	UserLogger Logger
}

type BackendFactory interface {
	Name() string
	// IsManageable reports if the backend can be used on this node and its priority, lower is preferred
	IsManageable() (bool, int, error)
	New(opts BackendOptions) (Backend, error)
}
